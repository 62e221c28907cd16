package projection

import (
	"context"
	"time"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/readmodel"
)

// SubscriberRequests is the durable cursor name of the request projector.
const SubscriberRequests = "vm_requests"

// RequestProjector maintains the denormalized request list/detail rows. It
// replays the aggregate on every delivery and writes the full row, so a
// re-delivered or out-of-order event converges on the same state.
type RequestProjector struct {
	events eventstore.Store
}

// NewRequestProjector creates the projector.
func NewRequestProjector(events eventstore.Store) *RequestProjector {
	return &RequestProjector{events: events}
}

// Name implements Subscriber.
func (p *RequestProjector) Name() string { return SubscriberRequests }

// Handle implements Subscriber.
func (p *RequestProjector) Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error {
	if e.AggregateType != domain.AggregateVmRequest {
		return nil
	}
	history, err := p.events.Load(ctx, e.AggregateID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		// Aggregate invisible in this tenant scope; nothing to project.
		return nil
	}
	row := buildRequestRow(history)
	return tx.UpsertRequest(ctx, row)
}

// buildRequestRow folds the full history into one projection row. Decider
// names live only in the decision payloads, so they are captured during the
// fold rather than read off the final state.
func buildRequestRow(history []domain.Event) readmodel.RequestRow {
	state := domain.ReplayVmRequest(history)

	var (
		deciderName string
		updatedAt   time.Time
	)
	for _, e := range history {
		updatedAt = e.Meta.OccurredAt
		switch p := e.Payload.(type) {
		case domain.VmRequestApproved:
			deciderName = p.ApproverName
		case domain.VmRequestRejected:
			deciderName = p.RejecterName
		}
	}

	spec := state.Size.Spec()
	return readmodel.RequestRow{
		ID:              state.ID,
		TenantID:        state.TenantID,
		ProjectID:       state.ProjectID,
		ProjectName:     state.ProjectName,
		RequesterID:     state.RequesterID,
		RequesterName:   state.RequesterName,
		RequesterEmail:  state.RequesterEmail,
		VMName:          state.VMName,
		Size:            state.Size,
		CPUCores:        spec.CPUCores,
		MemoryGB:        spec.MemoryGB,
		DiskGB:          spec.DiskGB,
		Justification:   state.Justification,
		Status:          state.Status,
		DeciderName:     deciderName,
		DecidedAt:       state.DecidedAt,
		RejectionReason: state.RejectionReason,
		VMID:            state.VMID,
		VmwareVMID:      state.VmwareVMID,
		IPAddress:       state.IPAddress,
		Hostname:        state.Hostname,
		CreatedAt:       state.CreatedAt,
		UpdatedAt:       updatedAt,
		Version:         state.Version,
	}
}
