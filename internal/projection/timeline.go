package projection

import (
	"context"
	"fmt"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/readmodel"
)

// SubscriberTimeline is the durable cursor name of the timeline projector.
const SubscriberTimeline = "timeline"

// TimelineProjector appends one human-readable audit entry per request
// lifecycle event. Entries derive entirely from the event, and the unique
// index on (request_id, event_type, occurred_at) absorbs re-delivery.
type TimelineProjector struct{}

// NewTimelineProjector creates the projector.
func NewTimelineProjector() *TimelineProjector { return &TimelineProjector{} }

// Name implements Subscriber.
func (p *TimelineProjector) Name() string { return SubscriberTimeline }

// Handle implements Subscriber.
func (p *TimelineProjector) Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error {
	if e.AggregateType != domain.AggregateVmRequest {
		return nil
	}

	row := readmodel.TimelineRow{
		RequestID:  domain.RequestID(e.AggregateID),
		TenantID:   e.Meta.TenantID,
		OccurredAt: e.Meta.OccurredAt,
	}

	switch payload := e.Payload.(type) {
	case domain.VmRequestCreated:
		row.EventType = readmodel.TimelineCreated
		row.ActorName = payload.RequesterName
		row.Details = fmt.Sprintf("Requested %s VM %q for project %s",
			payload.Size, payload.VMName, payload.ProjectName)
	case domain.VmRequestApproved:
		row.EventType = readmodel.TimelineApproved
		row.ActorName = payload.ApproverName
	case domain.VmRequestRejected:
		row.EventType = readmodel.TimelineRejected
		row.ActorName = payload.RejecterName
		row.Details = payload.Reason
	case domain.VmRequestCancelled:
		row.EventType = readmodel.TimelineCancelled
		row.Details = "Cancelled by the requester"
	case domain.VmRequestProvisioningStarted:
		row.EventType = readmodel.TimelineProvisioningStarted
	case domain.VmRequestReady:
		row.EventType = readmodel.TimelineVMReady
		row.Details = fmt.Sprintf("VM %s (%s) online", payload.Hostname, payload.VmwareVMID)
		if payload.IPAddress != "" {
			row.Details += " at " + payload.IPAddress
		}
	case domain.VmRequestFailed:
		row.EventType = readmodel.TimelineProvisioningFailed
		row.Details = payload.Reason
	default:
		return nil
	}

	return tx.AppendTimeline(ctx, row)
}
