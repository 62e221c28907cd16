package domain

import "time"

// Event payloads. Decoders tolerate unknown fields; removing fields from a
// payload that has shipped is forbidden.

// VmRequestCreated records a submitted VM request. Requester and project
// display names are captured at request time so projections never join back
// to an identity store.
type VmRequestCreated struct {
	ProjectID      ProjectID `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	RequesterID    UserID    `json:"requester_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	VMName         string    `json:"vm_name"`
	Size           VMSize    `json:"size"`
	Justification  string    `json:"justification"`
}

func (VmRequestCreated) EventType() EventType { return EventVmRequestCreated }

// VmRequestApproved records an admin approval.
type VmRequestApproved struct {
	ApprovedBy   UserID `json:"approved_by"`
	ApproverName string `json:"approver_name"`
}

func (VmRequestApproved) EventType() EventType { return EventVmRequestApproved }

// VmRequestRejected records an admin rejection with reason.
type VmRequestRejected struct {
	RejectedBy   UserID `json:"rejected_by"`
	RejecterName string `json:"rejecter_name"`
	Reason       string `json:"reason"`
}

func (VmRequestRejected) EventType() EventType { return EventVmRequestRejected }

// VmRequestCancelled records a requester cancellation.
type VmRequestCancelled struct {
	CancelledBy UserID `json:"cancelled_by"`
}

func (VmRequestCancelled) EventType() EventType { return EventVmRequestCancelled }

// VmRequestProvisioningStarted marks that the orchestrator picked the
// approved request up. The Vm aggregate id is recorded once known.
type VmRequestProvisioningStarted struct {
	VMID VMID `json:"vm_id,omitempty"`
}

func (VmRequestProvisioningStarted) EventType() EventType {
	return EventVmRequestProvisioningStarted
}

// VmRequestReady records successful provisioning on the request side.
type VmRequestReady struct {
	VmwareVMID string `json:"vmware_vm_id"`
	IPAddress  string `json:"ip_address,omitempty"`
	Hostname   string `json:"hostname"`
}

func (VmRequestReady) EventType() EventType { return EventVmRequestReady }

// VmRequestFailed records provisioning failure on the request side.
type VmRequestFailed struct {
	Reason string `json:"reason"`
}

func (VmRequestFailed) EventType() EventType { return EventVmRequestFailed }

// VmProvisioningStarted creates the Vm aggregate. Name is the effective VM
// name (project prefix applied).
type VmProvisioningStarted struct {
	RequestID RequestID `json:"request_id"`
	Name      string    `json:"name"`
	Size      VMSize    `json:"size"`
}

func (VmProvisioningStarted) EventType() EventType { return EventVmProvisioningStarted }

// VmProvisioningProgressUpdated records a stage transition reported by the
// hypervisor.
type VmProvisioningProgressUpdated struct {
	Stage Stage `json:"stage"`
}

func (VmProvisioningProgressUpdated) EventType() EventType {
	return EventVmProvisioningProgressUpdated
}

// VmProvisioned records successful provisioning on the VM side.
type VmProvisioned struct {
	VmwareVMID string `json:"vmware_vm_id"`
	IPAddress  string `json:"ip_address,omitempty"`
	Hostname   string `json:"hostname"`
	PowerState string `json:"power_state"`
	GuestOS    string `json:"guest_os,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

func (VmProvisioned) EventType() EventType { return EventVmProvisioned }

// VmProvisioningFailed records provisioning failure on the VM side.
type VmProvisioningFailed struct {
	Reason string `json:"reason"`
}

func (VmProvisioningFailed) EventType() EventType { return EventVmProvisioningFailed }

// VmStatusSynced records a runtime observation from the hypervisor for an
// already provisioned VM.
type VmStatusSynced struct {
	PowerState string    `json:"power_state"`
	IPAddress  string    `json:"ip_address,omitempty"`
	Hostname   string    `json:"hostname,omitempty"`
	GuestOS    string    `json:"guest_os,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

func (VmStatusSynced) EventType() EventType { return EventVmStatusSynced }
