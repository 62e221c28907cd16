// Package orchestrator drives provisioning: it reacts to approval events,
// opens the Vm aggregate, runs the hypervisor workflow through the
// provisioning port and reconciles both aggregates with the outcome.
package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/aggregate"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/tenant"
)

// SystemActor marks events appended by the platform itself.
const SystemActor = domain.UserID("system")

// Orchestrator owns the provisioning workflow for one deployment.
type Orchestrator struct {
	requests *aggregate.Runtime[domain.VmRequest]
	vms      *aggregate.Runtime[domain.VM]
	resolver *ConfigResolver
	factory  hypervisor.Factory
	notify   func()
}

// New creates the orchestrator. factory decides the provisioning backend
// (vCenter behind a breaker in production, the mock in development); notify,
// when non-nil, nudges projections after appends.
func New(events eventstore.Store, resolver *ConfigResolver, factory hypervisor.Factory, notify func()) *Orchestrator {
	return &Orchestrator{
		requests: aggregate.NewRuntime(events, domain.AggregateVmRequest, domain.EmptyVmRequest),
		vms:      aggregate.NewRuntime(events, domain.AggregateVm, domain.EmptyVM),
		resolver: resolver,
		factory:  factory,
		notify:   notify,
	}
}

// Provision runs or resumes the provisioning workflow for one request. It is
// idempotent: called again after a crash or partial failure it picks up from
// the recorded state instead of cloning twice. A returned error means the
// caller (the job queue) should retry; business failures are recorded on the
// aggregates and return nil.
func (o *Orchestrator) Provision(ctx context.Context, requestID domain.RequestID, vmID domain.VMID) error {
	if _, err := tenant.FromContext(ctx); err != nil {
		return err
	}

	request, _, err := o.requests.Load(ctx, requestID.String())
	if err != nil {
		return err
	}
	if !request.Created() {
		logger.Warn("provision job for unknown request", zap.String("request_id", requestID.String()))
		return nil
	}
	if request.Status != domain.RequestProvisioning {
		// Terminal or not yet started: stale or duplicate job.
		logger.Info("provision job skipped",
			zap.String("request_id", requestID.String()),
			zap.String("status", string(request.Status)),
		)
		return nil
	}

	vm, _, err := o.vms.Load(ctx, vmID.String())
	if err != nil {
		return err
	}
	switch vm.Status {
	case domain.VMProvisioned:
		// A previous run created the VM but crashed before updating the
		// request. Finish the request side only.
		return o.markRequestReady(ctx, requestID, vm.VmwareVMID, vm.IPAddress, vm.Hostname)
	case domain.VMFailed:
		return o.markRequestFailed(ctx, requestID, vm.FailReason)
	}
	if !vm.Created() {
		logger.Warn("provision job before vm aggregate exists",
			zap.String("request_id", requestID.String()),
			zap.String("vm_id", vmID.String()),
		)
		return nil
	}

	cfg, err := o.resolver.Resolve(ctx)
	if err != nil {
		// Only our own context ending makes the job retryable. A timeout that
		// happened inside the hypervisor call carries the same sentinel but is
		// a business failure like any other.
		if apperrors.IsCancelled(err) && ctx.Err() != nil {
			return err
		}
		return o.failBoth(ctx, requestID, vmID, "hypervisor configuration unavailable: "+err.Error())
	}

	provisioner := o.factory(cfg)
	spec := hypervisor.CreateVMSpec{
		Name:     domain.EffectiveVMName(request.ProjectName, request.VMName),
		CPUCores: request.Size.Spec().CPUCores,
		MemoryGB: request.Size.Spec().MemoryGB,
		DiskGB:   request.Size.Spec().DiskGB,
	}

	logger.Info("provisioning started",
		zap.String("request_id", requestID.String()),
		zap.String("vm_id", vmID.String()),
		zap.String("effective_name", spec.Name),
		zap.String("size", string(request.Size)),
	)

	onStage := func(stage domain.Stage) {
		if stage == domain.StageReady {
			return // recorded by the provisioned event
		}
		if err := o.recordStage(ctx, vmID, stage); err != nil {
			logger.Warn("stage transition not recorded",
				zap.String("vm_id", vmID.String()),
				zap.String("stage", string(stage)),
				zap.Error(err),
			)
		}
	}

	created, err := provisioner.CreateVM(ctx, spec, onStage)
	if err != nil {
		if apperrors.IsCancelled(err) && ctx.Err() != nil {
			return err
		}
		logger.Error("provisioning failed",
			zap.String("request_id", requestID.String()),
			zap.String("vm_id", vmID.String()),
			zap.Error(err),
		)
		return o.failBoth(ctx, requestID, vmID, err.Error())
	}

	_, _, err = o.vms.Execute(ctx, vmID.String(), o.meta(ctx), func(state domain.VM) ([]domain.Payload, error) {
		return state.DecideCompleteProvisioning(created.VmwareVMID, created.IPAddress, created.Hostname,
			created.PowerState, created.GuestOS, "")
	})
	if err != nil && !apperrors.IsKind(err, apperrors.KindInvalidState) {
		// The hypervisor has a live VM but the log does not know it yet.
		// Surface for retry; the next run reconciles from the vm state.
		logger.Error("CRITICAL: vm provisioned but completion not recorded",
			zap.String("request_id", requestID.String()),
			zap.String("vm_id", vmID.String()),
			zap.String("vmware_vm_id", created.VmwareVMID),
			zap.Error(err),
		)
		return err
	}

	if err := o.markRequestReady(ctx, requestID, created.VmwareVMID, created.IPAddress, created.Hostname); err != nil {
		return err
	}

	logger.Info("provisioning complete",
		zap.String("request_id", requestID.String()),
		zap.String("vm_id", vmID.String()),
		zap.String("vmware_vm_id", created.VmwareVMID),
		zap.String("ip", created.IPAddress),
	)
	return nil
}

// SyncVMStatus refreshes one provisioned VM's runtime facts from the
// hypervisor.
func (o *Orchestrator) SyncVMStatus(ctx context.Context, vmID domain.VMID) error {
	vm, _, err := o.vms.Load(ctx, vmID.String())
	if err != nil {
		return err
	}
	if vm.Status != domain.VMProvisioned || vm.VmwareVMID == "" {
		return nil
	}

	cfg, err := o.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	info, err := o.factory(cfg).VMInfo(ctx, vm.VmwareVMID)
	if err != nil {
		return err
	}

	_, _, err = o.vms.Execute(ctx, vmID.String(), o.meta(ctx), func(state domain.VM) ([]domain.Payload, error) {
		return state.DecideSyncStatus(info.PowerState, info.IPAddress, info.Hostname, info.GuestOS, info.ObservedAt)
	})
	if apperrors.IsKind(err, apperrors.KindInvalidState) {
		return nil
	}
	if err == nil {
		o.wake()
	}
	return err
}

// recordStage appends one progress event to the Vm aggregate.
func (o *Orchestrator) recordStage(ctx context.Context, vmID domain.VMID, stage domain.Stage) error {
	_, _, err := o.vms.Execute(ctx, vmID.String(), o.meta(ctx), func(state domain.VM) ([]domain.Payload, error) {
		return state.DecideProgress(stage)
	})
	if err == nil {
		o.wake()
	}
	return err
}

// markRequestReady closes the request side after a successful provision.
// Invalid-state means another run already did it.
func (o *Orchestrator) markRequestReady(ctx context.Context, requestID domain.RequestID, vmwareVMID, ip, hostname string) error {
	_, _, err := o.requests.Execute(ctx, requestID.String(), o.meta(ctx), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideMarkReady(vmwareVMID, ip, hostname)
	})
	if apperrors.IsKind(err, apperrors.KindInvalidState) {
		return nil
	}
	if err != nil {
		logger.Error("CRITICAL: vm ready but request not updated",
			zap.String("request_id", requestID.String()),
			zap.String("vmware_vm_id", vmwareVMID),
			zap.Error(err),
		)
		return err
	}
	o.wake()
	return nil
}

func (o *Orchestrator) markRequestFailed(ctx context.Context, requestID domain.RequestID, reason string) error {
	_, _, err := o.requests.Execute(ctx, requestID.String(), o.meta(ctx), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideMarkFailed(reason)
	})
	if apperrors.IsKind(err, apperrors.KindInvalidState) {
		return nil
	}
	if err == nil {
		o.wake()
	}
	return err
}

// failBoth records the failure on the Vm aggregate and the request. The
// half-created hypervisor VM, if any, is left for operator cleanup; no
// automatic rollback.
func (o *Orchestrator) failBoth(ctx context.Context, requestID domain.RequestID, vmID domain.VMID, reason string) error {
	_, _, err := o.vms.Execute(ctx, vmID.String(), o.meta(ctx), func(state domain.VM) ([]domain.Payload, error) {
		return state.DecideFailProvisioning(reason)
	})
	if err != nil && !apperrors.IsKind(err, apperrors.KindInvalidState) {
		return err
	}
	return o.markRequestFailed(ctx, requestID, reason)
}

func (o *Orchestrator) meta(ctx context.Context) domain.Metadata {
	tenantID, _ := tenant.FromContext(ctx)
	return domain.Metadata{
		TenantID:      tenantID,
		ActorID:       SystemActor,
		CorrelationID: domain.NewCorrelationID(),
		OccurredAt:    time.Now().UTC(),
	}
}

func (o *Orchestrator) wake() {
	if o.notify != nil {
		o.notify()
	}
}
