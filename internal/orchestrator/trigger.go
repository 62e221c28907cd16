package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/aggregate"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
)

// SubscriberName is the trigger's durable cursor name.
const SubscriberName = "orchestrator"

// Enqueuer hands provisioning work to the job queue. Implemented on River in
// production and by a recorder in tests.
type Enqueuer interface {
	EnqueueProvision(ctx context.Context, tenantID domain.TenantID, requestID domain.RequestID, vmID domain.VMID) error
}

// Trigger is the projection subscriber that converts approvals into
// provisioning work: Approved moves the request to PROVISIONING and assigns
// a VM id; ProvisioningStarted opens the Vm aggregate and enqueues the job.
// Both steps tolerate re-delivery.
type Trigger struct {
	requests *aggregate.Runtime[domain.VmRequest]
	vms      *aggregate.Runtime[domain.VM]
	enqueuer Enqueuer
}

// NewTrigger creates the trigger subscriber.
func NewTrigger(events eventstore.Store, enqueuer Enqueuer) *Trigger {
	return &Trigger{
		requests: aggregate.NewRuntime(events, domain.AggregateVmRequest, domain.EmptyVmRequest),
		vms:      aggregate.NewRuntime(events, domain.AggregateVm, domain.EmptyVM),
		enqueuer: enqueuer,
	}
}

// Name implements projection.Subscriber.
func (t *Trigger) Name() string { return SubscriberName }

// Handle implements projection.Subscriber.
func (t *Trigger) Handle(ctx context.Context, _ readmodel.Tx, e domain.Event) error {
	if e.AggregateType != domain.AggregateVmRequest {
		return nil
	}
	switch e.Payload.(type) {
	case domain.VmRequestApproved:
		return t.onApproved(ctx, domain.RequestID(e.AggregateID), e.Meta)
	case domain.VmRequestProvisioningStarted:
		return t.onProvisioningStarted(ctx, domain.RequestID(e.AggregateID), e.Meta)
	}
	return nil
}

// onApproved assigns a VM id and moves the request into PROVISIONING.
func (t *Trigger) onApproved(ctx context.Context, requestID domain.RequestID, eventMeta domain.Metadata) error {
	vmID := domain.NewVMID()
	_, _, err := t.requests.Execute(ctx, requestID.String(), t.meta(eventMeta), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideMarkProvisioning(vmID)
	})
	if apperrors.IsKind(err, apperrors.KindInvalidState) {
		// Re-delivery: the request already moved on.
		return nil
	}
	return err
}

// onProvisioningStarted opens the Vm aggregate and enqueues the provisioning
// job. The job is unique per (tenant, request, vm), so re-delivery cannot
// double-provision.
func (t *Trigger) onProvisioningStarted(ctx context.Context, requestID domain.RequestID, eventMeta domain.Metadata) error {
	request, _, err := t.requests.Load(ctx, requestID.String())
	if err != nil {
		return err
	}
	if request.VMID.IsZero() {
		logger.Warn("provisioning started without vm id", zap.String("request_id", requestID.String()))
		return nil
	}

	_, _, err = t.vms.Execute(ctx, request.VMID.String(), t.meta(eventMeta), func(state domain.VM) ([]domain.Payload, error) {
		return state.DecideStartProvisioning(requestID,
			domain.EffectiveVMName(request.ProjectName, request.VMName), request.Size)
	})
	if err != nil && !apperrors.IsKind(err, apperrors.KindInvalidState) {
		return err
	}

	return t.enqueuer.EnqueueProvision(ctx, eventMeta.TenantID, requestID, request.VMID)
}

func (t *Trigger) meta(eventMeta domain.Metadata) domain.Metadata {
	return domain.Metadata{
		TenantID:      eventMeta.TenantID,
		ActorID:       SystemActor,
		CorrelationID: eventMeta.CorrelationID,
		OccurredAt:    time.Now().UTC(),
	}
}
