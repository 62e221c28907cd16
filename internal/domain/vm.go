package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// VMStatus is the lifecycle status of the hypervisor-side Vm aggregate.
type VMStatus string

const (
	VMProvisioning VMStatus = "PROVISIONING"
	VMProvisioned  VMStatus = "PROVISIONED"
	VMFailed       VMStatus = "FAILED"
)

// VM is the hypervisor-side aggregate. It back-references the request by id
// only; reconciliation between the two happens in the orchestrator.
type VM struct {
	ID           VMID
	TenantID     TenantID
	RequestID    RequestID
	Name         string
	Size         VMSize
	VmwareVMID   string
	IPAddress    string
	Hostname     string
	PowerState   string
	GuestOS      string
	Stage        Stage
	FailReason   string
	LastSyncedAt time.Time
	Status       VMStatus
	Version      int64
}

// EmptyVM is the initial zero state.
func EmptyVM() VM { return VM{} }

// Created reports whether the aggregate exists.
func (v VM) Created() bool { return v.Version > 0 }

// Apply folds one event into the state.
func (v VM) Apply(e Event) VM {
	next := v
	next.Version = e.Version
	switch p := e.Payload.(type) {
	case VmProvisioningStarted:
		next.ID = VMID(e.AggregateID)
		next.TenantID = e.Meta.TenantID
		next.RequestID = p.RequestID
		next.Name = p.Name
		next.Size = p.Size
		next.Status = VMProvisioning
	case VmProvisioningProgressUpdated:
		next.Stage = p.Stage
	case VmProvisioned:
		next.Status = VMProvisioned
		next.VmwareVMID = p.VmwareVMID
		next.IPAddress = p.IPAddress
		next.Hostname = p.Hostname
		next.PowerState = p.PowerState
		next.GuestOS = p.GuestOS
		next.Stage = StageReady
	case VmProvisioningFailed:
		next.Status = VMFailed
		next.FailReason = p.Reason
	case VmStatusSynced:
		next.PowerState = p.PowerState
		if p.IPAddress != "" {
			next.IPAddress = p.IPAddress
		}
		if p.Hostname != "" {
			next.Hostname = p.Hostname
		}
		if p.GuestOS != "" {
			next.GuestOS = p.GuestOS
		}
		next.LastSyncedAt = p.ObservedAt
	}
	return next
}

// ReplayVM folds an ordered event sequence from the zero state.
func ReplayVM(events []Event) VM {
	state := EmptyVM()
	for _, e := range events {
		state = state.Apply(e)
	}
	return state
}

// DecideStartProvisioning creates the aggregate.
func (v VM) DecideStartProvisioning(requestID RequestID, name string, size VMSize) ([]Payload, error) {
	if v.Created() {
		return nil, apperrors.InvalidState(string(v.Status), "vm already exists")
	}
	if requestID.IsZero() {
		return nil, apperrors.Validation("request_id", "request id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name", "vm name is required")
	}
	if !size.Valid() {
		return nil, apperrors.Validation("size", fmt.Sprintf("unknown vm size %q", size))
	}
	return []Payload{VmProvisioningStarted{RequestID: requestID, Name: name, Size: size}}, nil
}

// DecideProgress records a stage transition while provisioning.
func (v VM) DecideProgress(stage Stage) ([]Payload, error) {
	if !v.Created() {
		return nil, apperrors.NotFound(apperrors.CodeVMNotFound, "vm not found")
	}
	if v.Status != VMProvisioning {
		return nil, apperrors.InvalidState(string(v.Status),
			fmt.Sprintf("progress is only valid while provisioning (current: %s)", v.Status))
	}
	return []Payload{VmProvisioningProgressUpdated{Stage: stage}}, nil
}

// DecideCompleteProvisioning finishes provisioning successfully.
func (v VM) DecideCompleteProvisioning(vmwareVMID, ip, hostname, powerState, guestOS, warning string) ([]Payload, error) {
	if !v.Created() {
		return nil, apperrors.NotFound(apperrors.CodeVMNotFound, "vm not found")
	}
	if v.Status != VMProvisioning {
		return nil, apperrors.InvalidState(string(v.Status),
			fmt.Sprintf("only provisioning vms can complete (current: %s)", v.Status))
	}
	if strings.TrimSpace(vmwareVMID) == "" {
		return nil, apperrors.Validation("vmware_vm_id", "vmware vm id is required")
	}
	return []Payload{VmProvisioned{
		VmwareVMID: vmwareVMID,
		IPAddress:  ip,
		Hostname:   hostname,
		PowerState: powerState,
		GuestOS:    guestOS,
		Warning:    warning,
	}}, nil
}

// DecideFailProvisioning fails provisioning.
func (v VM) DecideFailProvisioning(reason string) ([]Payload, error) {
	if !v.Created() {
		return nil, apperrors.NotFound(apperrors.CodeVMNotFound, "vm not found")
	}
	if v.Status != VMProvisioning {
		return nil, apperrors.InvalidState(string(v.Status),
			fmt.Sprintf("only provisioning vms can fail (current: %s)", v.Status))
	}
	if strings.TrimSpace(reason) == "" {
		reason = "provisioning failed"
	}
	return []Payload{VmProvisioningFailed{Reason: reason}}, nil
}

// DecideSyncStatus records a runtime observation. Only valid once
// provisioned.
func (v VM) DecideSyncStatus(powerState, ip, hostname, guestOS string, observedAt time.Time) ([]Payload, error) {
	if !v.Created() {
		return nil, apperrors.NotFound(apperrors.CodeVMNotFound, "vm not found")
	}
	if v.Status != VMProvisioned {
		return nil, apperrors.InvalidState(string(v.Status),
			fmt.Sprintf("status sync is only valid for provisioned vms (current: %s)", v.Status))
	}
	if strings.TrimSpace(powerState) == "" {
		return nil, apperrors.Validation("power_state", "power state is required")
	}
	return []Payload{VmStatusSynced{
		PowerState: powerState,
		IPAddress:  ip,
		Hostname:   hostname,
		GuestOS:    guestOS,
		ObservedAt: observedAt,
	}}, nil
}
