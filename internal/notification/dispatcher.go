package notification

import (
	"context"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
)

// SubscriberName is the dispatcher's durable cursor name.
const SubscriberName = "notifications"

// Dispatcher is the projection subscriber that writes inbox entries for
// request lifecycle events and hands the rendered notification to the
// sender. Recipient is always the requester; the aggregate is replayed
// because terminal events do not carry requester or VM facts.
type Dispatcher struct {
	events    eventstore.Store
	templates *Templates
	sender    Sender
}

// NewDispatcher creates the dispatcher. A nil sender keeps notifications
// inbox-only.
func NewDispatcher(events eventstore.Store, templates *Templates, sender Sender) *Dispatcher {
	return &Dispatcher{events: events, templates: templates, sender: sender}
}

// Name implements projection.Subscriber.
func (d *Dispatcher) Name() string { return SubscriberName }

// Handle implements projection.Subscriber.
func (d *Dispatcher) Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error {
	if e.AggregateType != domain.AggregateVmRequest {
		return nil
	}

	var notifType string
	switch e.Payload.(type) {
	case domain.VmRequestCreated:
		notifType = TypeRequestSubmitted
	case domain.VmRequestApproved:
		notifType = TypeRequestApproved
	case domain.VmRequestRejected:
		notifType = TypeRequestRejected
	case domain.VmRequestReady:
		notifType = TypeVMReady
	case domain.VmRequestFailed:
		notifType = TypeProvisioningFailed
	default:
		return nil
	}

	history, err := d.events.Load(ctx, e.AggregateID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}
	state := domain.ReplayVmRequest(history)

	data := TemplateData{
		VMName:      state.VMName,
		ProjectName: state.ProjectName,
		Requester:   state.RequesterName,
		Size:        string(state.Size),
		IPAddress:   state.IPAddress,
		Reason:      state.RejectionReason,
	}
	switch p := e.Payload.(type) {
	case domain.VmRequestApproved:
		data.Decider = p.ApproverName
	case domain.VmRequestRejected:
		data.Decider = p.RejecterName
		data.Reason = p.Reason
	case domain.VmRequestFailed:
		data.Reason = p.Reason
	}

	title, message, err := d.templates.Render(notifType, data)
	if err != nil {
		// A broken template must not wedge the subscriber; drop with a log.
		logger.Error("notification template render failed",
			zap.String("type", notifType),
			zap.String("request_id", e.AggregateID),
			zap.Error(err),
		)
		return nil
	}

	// Event id as row id: re-delivery inserts the same row, which the
	// unique constraint turns into a no-op.
	if err := tx.InsertNotification(ctx, readmodel.NotificationRow{
		ID:           e.EventID,
		TenantID:     e.Meta.TenantID,
		RecipientID:  state.RequesterID,
		Type:         notifType,
		Title:        title,
		Message:      message,
		ResourceType: "vm_request",
		ResourceID:   e.AggregateID,
		CreatedAt:    e.Meta.OccurredAt,
	}); err != nil {
		return err
	}

	if d.sender != nil {
		out := Outbound{
			TenantID:  e.Meta.TenantID,
			Recipient: state.RequesterEmail,
			Type:      notifType,
			Title:     title,
			Message:   message,
		}
		// Best effort: a dead mail relay must not wedge the subscriber.
		if err := d.sender.Send(ctx, out); err != nil {
			logger.Warn("notification send failed",
				zap.String("type", notifType),
				zap.String("recipient", out.Recipient),
				zap.String("request_id", e.AggregateID),
				zap.Error(err),
			)
		}
	}
	return nil
}
