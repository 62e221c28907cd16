// Package jobs defines the River job arguments and workers: the per-request
// provisioning job plus the periodic stall-sweep and status-sync jobs.
package jobs

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/orchestrator"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/tenant"
)

// QueueProvisioning is the queue all provisioning work runs on.
const QueueProvisioning = "provisioning"

// ProvisionArgs identifies one provisioning run. The payload is ids only;
// the worker re-reads state from the event log.
type ProvisionArgs struct {
	TenantID  string `json:"tenant_id"`
	RequestID string `json:"request_id"`
	VMID      string `json:"vm_id"`
}

// Kind returns the job kind identifier.
func (ProvisionArgs) Kind() string { return "vm_provision" }

// InsertOpts makes the job unique by args, so a re-delivered trigger event
// or a sweep re-enqueue cannot start a second run for the same VM.
func (ProvisionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueProvisioning,
		MaxAttempts: 4,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// ProvisionWorker executes the provisioning workflow.
type ProvisionWorker struct {
	river.WorkerDefaults[ProvisionArgs]
	orchestrator *orchestrator.Orchestrator
}

// NewProvisionWorker creates the worker.
func NewProvisionWorker(o *orchestrator.Orchestrator) *ProvisionWorker {
	return &ProvisionWorker{orchestrator: o}
}

// Work runs or resumes provisioning for one request.
func (w *ProvisionWorker) Work(ctx context.Context, job *river.Job[ProvisionArgs]) error {
	logger.Info("provision job started",
		zap.String("request_id", job.Args.RequestID),
		zap.String("vm_id", job.Args.VMID),
		zap.Int("attempt", job.Attempt),
	)

	ctx = tenant.With(ctx, domain.TenantID(job.Args.TenantID))
	err := w.orchestrator.Provision(ctx,
		domain.RequestID(job.Args.RequestID), domain.VMID(job.Args.VMID))
	if err == nil {
		return nil
	}
	if apperrors.IsCancelled(err) {
		return err // retried by the queue
	}
	// Unclassified persistence trouble: let River back off and retry.
	return err
}

// RiverEnqueuer implements orchestrator.Enqueuer on a River client. The
// client is bound after worker registration, because workers that enqueue
// (the stall sweep) must be registered before the client can be built.
type RiverEnqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewRiverEnqueuer creates an unbound enqueuer.
func NewRiverEnqueuer() *RiverEnqueuer {
	return &RiverEnqueuer{}
}

// Bind attaches the River client. Must happen before any enqueue.
func (e *RiverEnqueuer) Bind(client *river.Client[pgx.Tx]) {
	e.client = client
}

// EnqueueProvision implements orchestrator.Enqueuer.
func (e *RiverEnqueuer) EnqueueProvision(ctx context.Context, tenantID domain.TenantID, requestID domain.RequestID, vmID domain.VMID) error {
	if e.client == nil {
		return apperrors.Internal(apperrors.CodeInternal, "job queue not initialized")
	}
	_, err := e.client.Insert(ctx, ProvisionArgs{
		TenantID:  tenantID.String(),
		RequestID: requestID.String(),
		VMID:      vmID.String(),
	}, nil)
	return err
}
