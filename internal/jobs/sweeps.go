package jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/orchestrator"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

// DefaultStallThreshold is how long a request may sit in PROVISIONING with
// no progress before the sweep re-enqueues it.
const DefaultStallThreshold = 15 * time.Minute

// StallSweepArgs is the periodic job that rescues provisioning runs lost to
// a crash: re-enqueueing is safe because the provision job is unique by
// args and the workflow resumes from recorded state.
type StallSweepArgs struct{}

// Kind returns the job kind identifier.
func (StallSweepArgs) Kind() string { return "provision_stall_sweep" }

// InsertOpts keeps at most one sweep queued at a time.
func (StallSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueProvisioning,
		MaxAttempts: 1,
		UniqueOpts:  river.UniqueOpts{ByArgs: true, ByQueue: true},
	}
}

// StallSweepWorker scans for stalled requests and re-enqueues their jobs.
type StallSweepWorker struct {
	river.WorkerDefaults[StallSweepArgs]
	store     readmodel.Store
	enqueuer  orchestrator.Enqueuer
	threshold time.Duration
}

// NewStallSweepWorker creates the worker. threshold <= 0 selects the
// default.
func NewStallSweepWorker(store readmodel.Store, enqueuer orchestrator.Enqueuer, threshold time.Duration) *StallSweepWorker {
	if threshold <= 0 {
		threshold = DefaultStallThreshold
	}
	return &StallSweepWorker{store: store, enqueuer: enqueuer, threshold: threshold}
}

// Work re-enqueues provisioning for every stalled request.
func (w *StallSweepWorker) Work(ctx context.Context, _ *river.Job[StallSweepArgs]) error {
	stalled, err := w.store.SystemListStalledProvisioning(ctx, time.Now().Add(-w.threshold))
	if err != nil {
		return err
	}
	for _, row := range stalled {
		if row.VMID.IsZero() {
			continue
		}
		if err := w.enqueuer.EnqueueProvision(ctx, row.TenantID, row.ID, row.VMID); err != nil {
			logger.Error("stall sweep enqueue failed",
				zap.String("request_id", row.ID.String()),
				zap.Error(err),
			)
			continue
		}
		logger.Warn("stalled provisioning re-enqueued",
			zap.String("request_id", row.ID.String()),
			zap.String("vm_id", row.VMID.String()),
			zap.Time("last_update", row.UpdatedAt),
		)
	}
	return nil
}

// StatusSyncArgs is the periodic job refreshing runtime facts of all
// provisioned VMs from their hypervisors.
type StatusSyncArgs struct{}

// Kind returns the job kind identifier.
func (StatusSyncArgs) Kind() string { return "vm_status_sync" }

// InsertOpts keeps at most one sync queued at a time.
func (StatusSyncArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueProvisioning,
		MaxAttempts: 1,
		UniqueOpts:  river.UniqueOpts{ByArgs: true, ByQueue: true},
	}
}

// StatusSyncWorker walks READY requests and syncs their VMs. Per-VM
// failures are logged and skipped; one unreachable vCenter must not abort
// the whole sweep.
type StatusSyncWorker struct {
	river.WorkerDefaults[StatusSyncArgs]
	store        readmodel.Store
	orchestrator *orchestrator.Orchestrator
}

// NewStatusSyncWorker creates the worker.
func NewStatusSyncWorker(store readmodel.Store, o *orchestrator.Orchestrator) *StatusSyncWorker {
	return &StatusSyncWorker{store: store, orchestrator: o}
}

// Work syncs every provisioned VM.
func (w *StatusSyncWorker) Work(ctx context.Context, _ *river.Job[StatusSyncArgs]) error {
	ready, err := w.store.SystemListReadyRequests(ctx)
	if err != nil {
		return err
	}
	for _, row := range ready {
		vmCtx := tenant.With(ctx, row.TenantID)
		if err := w.orchestrator.SyncVMStatus(vmCtx, row.VMID); err != nil {
			logger.Warn("vm status sync failed",
				zap.String("vm_id", row.VMID.String()),
				zap.String("tenant_id", row.TenantID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}
