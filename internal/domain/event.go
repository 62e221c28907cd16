package domain

import "time"

// AggregateType names the two aggregate kinds in the store.
const (
	AggregateVmRequest = "VmRequest"
	AggregateVm        = "Vm"
)

// EventType identifies a domain event on the wire.
type EventType string

const (
	// VmRequest lifecycle events.
	EventVmRequestCreated             EventType = "VM_REQUEST_CREATED"
	EventVmRequestApproved            EventType = "VM_REQUEST_APPROVED"
	EventVmRequestRejected            EventType = "VM_REQUEST_REJECTED"
	EventVmRequestCancelled           EventType = "VM_REQUEST_CANCELLED"
	EventVmRequestProvisioningStarted EventType = "VM_REQUEST_PROVISIONING_STARTED"
	EventVmRequestReady               EventType = "VM_REQUEST_READY"
	EventVmRequestFailed              EventType = "VM_REQUEST_FAILED"

	// Vm lifecycle events.
	EventVmProvisioningStarted         EventType = "VM_PROVISIONING_STARTED"
	EventVmProvisioningProgressUpdated EventType = "VM_PROVISIONING_PROGRESS_UPDATED"
	EventVmProvisioned                 EventType = "VM_PROVISIONED"
	EventVmProvisioningFailed          EventType = "VM_PROVISIONING_FAILED"
	EventVmStatusSynced                EventType = "VM_STATUS_SYNCED"
)

// Stage is a coarse phase of the provisioning workflow reported by the
// hypervisor, in order.
type Stage string

const (
	StageCloning           Stage = "CLONING"
	StageConfiguring       Stage = "CONFIGURING"
	StagePoweringOn        Stage = "POWERING_ON"
	StageWaitingForNetwork Stage = "WAITING_FOR_NETWORK"
	StageReady             Stage = "READY"
)

// Stages lists all provisioning stages in workflow order.
var Stages = []Stage{StageCloning, StageConfiguring, StagePoweringOn, StageWaitingForNetwork, StageReady}

// stageCostSeconds is the fixed per-stage cost table used to estimate
// remaining provisioning time.
var stageCostSeconds = map[Stage]int{
	StageCloning:           80,
	StageConfiguring:       65,
	StagePoweringOn:        45,
	StageWaitingForNetwork: 25,
	StageReady:             0,
}

// EstimatedRemainingSeconds returns the sum of the costs of all stages after
// the given one. Unknown stages estimate the full pipeline.
func EstimatedRemainingSeconds(current Stage) int {
	total := 0
	seen := false
	for _, s := range Stages {
		if seen {
			total += stageCostSeconds[s]
		}
		if s == current {
			seen = true
		}
	}
	if !seen {
		for _, s := range Stages {
			total += stageCostSeconds[s]
		}
	}
	return total
}

// Metadata travels with every event.
type Metadata struct {
	TenantID      TenantID      `json:"tenant_id"`
	ActorID       UserID        `json:"actor_id"`
	CorrelationID CorrelationID `json:"correlation_id"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// Payload is implemented by every event payload type.
type Payload interface {
	EventType() EventType
}

// Event is a decoded domain event. Version and GlobalSequence are assigned by
// the event store on append; ordering uses Version within an aggregate and
// GlobalSequence across aggregates.
type Event struct {
	EventID        string
	AggregateType  string
	AggregateID    string
	Version        int64
	Type           EventType
	Payload        Payload
	Meta           Metadata
	GlobalSequence int64
}

// NewEvent builds an unversioned event ready for append.
func NewEvent(aggregateType, aggregateID string, payload Payload, meta Metadata) Event {
	return Event{
		EventID:       NewEventID(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          payload.EventType(),
		Payload:       payload,
		Meta:          meta,
	}
}
