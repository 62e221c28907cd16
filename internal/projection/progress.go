package projection

import (
	"context"
	"time"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/readmodel"
)

// SubscriberProgress is the durable cursor name of the progress projector.
const SubscriberProgress = "provisioning_progress"

// ProgressProjector maintains the single mutable progress row per in-flight
// provisioning request. Stage history is rebuilt from the Vm aggregate's
// events on every delivery; the row disappears once the VM reaches a
// terminal state.
type ProgressProjector struct {
	events eventstore.Store
}

// NewProgressProjector creates the projector.
func NewProgressProjector(events eventstore.Store) *ProgressProjector {
	return &ProgressProjector{events: events}
}

// Name implements Subscriber.
func (p *ProgressProjector) Name() string { return SubscriberProgress }

// Handle implements Subscriber.
func (p *ProgressProjector) Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error {
	if e.AggregateType != domain.AggregateVm {
		return nil
	}

	history, err := p.events.Load(ctx, e.AggregateID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}
	state := domain.ReplayVM(history)
	if state.RequestID.IsZero() {
		return nil
	}

	if state.Status != domain.VMProvisioning {
		return tx.DeleteProgress(ctx, state.RequestID)
	}

	stamps := make(map[domain.Stage]time.Time)
	updatedAt := history[0].Meta.OccurredAt
	for _, past := range history {
		switch payload := past.Payload.(type) {
		case domain.VmProvisioningStarted:
			stamps[domain.StageCloning] = past.Meta.OccurredAt
		case domain.VmProvisioningProgressUpdated:
			stamps[payload.Stage] = past.Meta.OccurredAt
		}
		updatedAt = past.Meta.OccurredAt
	}

	stage := state.Stage
	if stage == "" {
		stage = domain.StageCloning
	}

	return tx.UpsertProgress(ctx, readmodel.ProgressRow{
		RequestID:                 state.RequestID,
		TenantID:                  state.TenantID,
		Stage:                     stage,
		StageTimestamps:           stamps,
		EstimatedRemainingSeconds: domain.EstimatedRemainingSeconds(stage),
		UpdatedAt:                 updatedAt,
	})
}
