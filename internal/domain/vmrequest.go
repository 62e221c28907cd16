package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// RequestStatus is the lifecycle status of a VmRequest.
type RequestStatus string

const (
	RequestPending      RequestStatus = "PENDING"
	RequestApproved     RequestStatus = "APPROVED"
	RequestRejected     RequestStatus = "REJECTED"
	RequestCancelled    RequestStatus = "CANCELLED"
	RequestProvisioning RequestStatus = "PROVISIONING"
	RequestReady        RequestStatus = "READY"
	RequestFailed       RequestStatus = "FAILED"
)

// Terminal reports whether no further transitions are possible.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestRejected, RequestCancelled, RequestReady, RequestFailed:
		return true
	}
	return false
}

// VmRequest is the user-facing request aggregate. Values are transient:
// reconstructed by replay, discarded after append.
type VmRequest struct {
	ID              RequestID
	TenantID        TenantID
	ProjectID       ProjectID
	ProjectName     string
	RequesterID     UserID
	RequesterName   string
	RequesterEmail  string
	VMName          string
	Size            VMSize
	Justification   string
	Status          RequestStatus
	DecidedBy       UserID
	DecidedAt       time.Time
	CancelledAt     time.Time
	RejectionReason string
	VMID            VMID
	VmwareVMID      string
	IPAddress       string
	Hostname        string
	CreatedAt       time.Time
	Version         int64
}

// EmptyVmRequest is the initial zero state.
func EmptyVmRequest() VmRequest { return VmRequest{} }

// Created reports whether the aggregate exists (has at least one event).
func (r VmRequest) Created() bool { return r.Version > 0 }

// Apply folds one event into the state. Pure: the same event sequence always
// produces the same state.
func (r VmRequest) Apply(e Event) VmRequest {
	next := r
	next.Version = e.Version
	switch p := e.Payload.(type) {
	case VmRequestCreated:
		next.ID = RequestID(e.AggregateID)
		next.TenantID = e.Meta.TenantID
		next.ProjectID = p.ProjectID
		next.ProjectName = p.ProjectName
		next.RequesterID = p.RequesterID
		next.RequesterName = p.RequesterName
		next.RequesterEmail = p.RequesterEmail
		next.VMName = p.VMName
		next.Size = p.Size
		next.Justification = p.Justification
		next.Status = RequestPending
		next.CreatedAt = e.Meta.OccurredAt
	case VmRequestApproved:
		next.Status = RequestApproved
		next.DecidedBy = p.ApprovedBy
		next.DecidedAt = e.Meta.OccurredAt
	case VmRequestRejected:
		next.Status = RequestRejected
		next.DecidedBy = p.RejectedBy
		next.DecidedAt = e.Meta.OccurredAt
		next.RejectionReason = p.Reason
	case VmRequestCancelled:
		next.Status = RequestCancelled
		next.CancelledAt = e.Meta.OccurredAt
	case VmRequestProvisioningStarted:
		next.Status = RequestProvisioning
		if !p.VMID.IsZero() {
			next.VMID = p.VMID
		}
	case VmRequestReady:
		next.Status = RequestReady
		next.VmwareVMID = p.VmwareVMID
		next.IPAddress = p.IPAddress
		next.Hostname = p.Hostname
	case VmRequestFailed:
		next.Status = RequestFailed
	}
	return next
}

// ReplayVmRequest folds an ordered event sequence from the zero state.
func ReplayVmRequest(events []Event) VmRequest {
	state := EmptyVmRequest()
	for _, e := range events {
		state = state.Apply(e)
	}
	return state
}

// CreateVmRequest is the command opening a new request.
type CreateVmRequest struct {
	ProjectID      ProjectID
	ProjectName    string
	RequesterID    UserID
	RequesterName  string
	RequesterEmail string
	VMName         string
	Size           string
	Justification  string
}

// vmNamePattern: lowercase alphanumerics and hyphens, starting and ending
// alphanumeric. Consecutive hyphens are checked separately.
var vmNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateVMName enforces the VM naming rules: length 3..63, lowercase
// alphanumerics and hyphens, alphanumeric at both ends, no consecutive
// hyphens.
func ValidateVMName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return apperrors.Validation("vm_name", "vm name must be between 3 and 63 characters")
	}
	if !vmNamePattern.MatchString(name) {
		return apperrors.Validation("vm_name",
			"vm name must contain only lowercase letters, digits and hyphens, starting and ending with a letter or digit")
	}
	if strings.Contains(name, "--") {
		return apperrors.Validation("vm_name", "vm name must not contain consecutive hyphens")
	}
	return nil
}

// DecideCreate validates the create command against the (empty) state.
func (r VmRequest) DecideCreate(cmd CreateVmRequest) ([]Payload, error) {
	if r.Created() {
		return nil, apperrors.InvalidState(string(r.Status), "request already exists")
	}
	if err := ValidateVMName(cmd.VMName); err != nil {
		return nil, err
	}
	size, err := ParseSize(cmd.Size)
	if err != nil {
		return nil, apperrors.Validation("size", err.Error())
	}
	if len(strings.TrimSpace(cmd.Justification)) < 10 {
		return nil, apperrors.Validation("justification", "justification must be at least 10 characters")
	}
	if cmd.RequesterID.IsZero() {
		return nil, apperrors.Validation("requester_id", "requester id is required")
	}
	return []Payload{VmRequestCreated{
		ProjectID:      cmd.ProjectID,
		ProjectName:    cmd.ProjectName,
		RequesterID:    cmd.RequesterID,
		RequesterName:  cmd.RequesterName,
		RequesterEmail: cmd.RequesterEmail,
		VMName:         cmd.VMName,
		Size:           size,
		Justification:  cmd.Justification,
	}}, nil
}

// DecideApprove validates an admin approval. Self-approval is forbidden.
func (r VmRequest) DecideApprove(actor UserID, actorName string) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestPending {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only pending requests can be approved (current: %s)", r.Status))
	}
	if actor == r.RequesterID {
		return nil, apperrors.Forbidden(apperrors.CodeSelfApproval, "requesters cannot approve their own request")
	}
	return []Payload{VmRequestApproved{ApprovedBy: actor, ApproverName: actorName}}, nil
}

// DecideReject validates an admin rejection. Reason length is 10..500 and
// self-rejection is forbidden.
func (r VmRequest) DecideReject(actor UserID, actorName, reason string) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestPending {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only pending requests can be rejected (current: %s)", r.Status))
	}
	if actor == r.RequesterID {
		return nil, apperrors.Forbidden(apperrors.CodeSelfApproval, "requesters cannot reject their own request")
	}
	trimmed := strings.TrimSpace(reason)
	if len(trimmed) < 10 || len(trimmed) > 500 {
		return nil, apperrors.Validation("reason", "rejection reason must be between 10 and 500 characters")
	}
	return []Payload{VmRequestRejected{RejectedBy: actor, RejecterName: actorName, Reason: trimmed}}, nil
}

// DecideCancel validates a requester cancellation. Only the requester may
// cancel, and only while pending.
func (r VmRequest) DecideCancel(actor UserID) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestPending {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only pending requests can be cancelled (current: %s)", r.Status))
	}
	if actor != r.RequesterID {
		return nil, apperrors.Forbidden(apperrors.CodeNotRequester, "only the requester can cancel a request")
	}
	return []Payload{VmRequestCancelled{CancelledBy: actor}}, nil
}

// DecideMarkProvisioning transitions an approved request into PROVISIONING.
func (r VmRequest) DecideMarkProvisioning(vmID VMID) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestApproved {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only approved requests can start provisioning (current: %s)", r.Status))
	}
	return []Payload{VmRequestProvisioningStarted{VMID: vmID}}, nil
}

// DecideMarkReady completes provisioning on the request side.
func (r VmRequest) DecideMarkReady(vmwareVMID, ip, hostname string) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestProvisioning {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only provisioning requests can become ready (current: %s)", r.Status))
	}
	if strings.TrimSpace(vmwareVMID) == "" {
		return nil, apperrors.Validation("vmware_vm_id", "vmware vm id is required")
	}
	return []Payload{VmRequestReady{VmwareVMID: vmwareVMID, IPAddress: ip, Hostname: hostname}}, nil
}

// DecideMarkFailed fails the request from APPROVED or PROVISIONING.
func (r VmRequest) DecideMarkFailed(reason string) ([]Payload, error) {
	if !r.Created() {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	if r.Status != RequestApproved && r.Status != RequestProvisioning {
		return nil, apperrors.InvalidState(string(r.Status),
			fmt.Sprintf("only approved or provisioning requests can fail (current: %s)", r.Status))
	}
	if strings.TrimSpace(reason) == "" {
		reason = "provisioning failed"
	}
	return []Payload{VmRequestFailed{Reason: reason}}, nil
}

// EffectiveVMName computes the hypervisor-side name: the first 4 characters
// of the project name, uppercased with non-alphanumerics stripped, a hyphen,
// then the requested vm name.
func EffectiveVMName(projectName, vmName string) string {
	prefix := ProjectPrefix(projectName)
	if prefix == "" {
		return vmName
	}
	return prefix + "-" + vmName
}

// ProjectPrefix strips non-alphanumerics from the project name, uppercases
// it and keeps the first 4 characters.
func ProjectPrefix(projectName string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(projectName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 4 {
			break
		}
	}
	return b.String()
}
