package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/aggregate"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/projection"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/secrets"
	"vc-drover.io/drover/internal/tenant"
)

// recordingEnqueuer captures enqueued provisioning jobs instead of hitting a
// real queue.
type recordingEnqueuer struct {
	jobs []struct {
		TenantID  domain.TenantID
		RequestID domain.RequestID
		VMID      domain.VMID
	}
}

func (e *recordingEnqueuer) EnqueueProvision(_ context.Context, tenantID domain.TenantID, requestID domain.RequestID, vmID domain.VMID) error {
	e.jobs = append(e.jobs, struct {
		TenantID  domain.TenantID
		RequestID domain.RequestID
		VMID      domain.VMID
	}{tenantID, requestID, vmID})
	return nil
}

type harness struct {
	events   *eventstore.MemoryStore
	store    *readmodel.MemoryStore
	requests *aggregate.Runtime[domain.VmRequest]
	enqueuer *recordingEnqueuer
	engine   *projection.Engine
	mock     *hypervisor.Mock
	orch     *Orchestrator
	ctx      context.Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	events := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	store := readmodel.NewMemoryStore()
	ctx := tenant.With(context.Background(), "tenant-1")

	encryptor, err := secrets.NewEncryptor(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	passwordEnc, err := encryptor.Encrypt("vcenter-password")
	require.NoError(t, err)
	_, err = store.SaveVMwareConfig(ctx, readmodel.VMwareConfig{
		VCenterURL:  "https://vcenter.test.local",
		Username:    "administrator@vsphere.local",
		PasswordEnc: passwordEnc,
		Datacenter:  "DC1",
		Cluster:     "Cluster1",
		Datastore:   "datastore1",
		Network:     "VM Network",
		Template:    "ubuntu-22.04-template",
	})
	require.NoError(t, err)

	resolver := NewConfigResolver(store, encryptor, time.Minute, true, time.Second)
	mock := hypervisor.NewMock()
	factory := func(hypervisor.Config) hypervisor.Provisioner { return mock }
	orch := New(events, resolver, factory, nil)

	enqueuer := &recordingEnqueuer{}
	engine := projection.NewEngine(events, store, nil, projection.Config{
		BatchSize: 10, MaxAttempts: 2, RetryDelay: time.Millisecond,
	})
	engine.Register(NewTrigger(events, enqueuer))

	return &harness{
		events:   events,
		store:    store,
		requests: aggregate.NewRuntime(events, domain.AggregateVmRequest, domain.EmptyVmRequest),
		enqueuer: enqueuer,
		engine:   engine,
		mock:     mock,
		orch:     orch,
		ctx:      ctx,
	}
}

func (h *harness) meta() domain.Metadata {
	return domain.Metadata{TenantID: "tenant-1", ActorID: "user-2", OccurredAt: time.Now().UTC()}
}

// approvedRequest creates and approves a request, then lets the trigger run;
// it returns the request id and the vm id the trigger assigned.
func (h *harness) approvedRequest(t *testing.T) (domain.RequestID, domain.VMID) {
	t.Helper()

	requestID := domain.NewRequestID()
	_, _, err := h.requests.Execute(h.ctx, requestID.String(), h.meta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCreate(domain.CreateVmRequest{
			ProjectID: "proj-1", ProjectName: "Phoenix", RequesterID: "user-1",
			VMName: "web-server", Size: "M", Justification: "load testing for the release",
		})
	})
	require.NoError(t, err)
	_, _, err = h.requests.Execute(h.ctx, requestID.String(), h.meta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideApprove("user-2", "Avery")
	})
	require.NoError(t, err)

	require.NoError(t, h.engine.CatchUp(context.Background()))

	request, _, err := h.requests.Load(h.ctx, requestID.String())
	require.NoError(t, err)
	require.Equal(t, domain.RequestProvisioning, request.Status)
	require.False(t, request.VMID.IsZero())

	require.Len(t, h.enqueuer.jobs, 1)
	assert.Equal(t, requestID, h.enqueuer.jobs[0].RequestID)
	assert.Equal(t, request.VMID, h.enqueuer.jobs[0].VMID)
	return requestID, request.VMID
}

func (h *harness) loadRequest(t *testing.T, id domain.RequestID) domain.VmRequest {
	t.Helper()
	request, _, err := h.requests.Load(h.ctx, id.String())
	require.NoError(t, err)
	return request
}

func (h *harness) loadVM(t *testing.T, id domain.VMID) domain.VM {
	t.Helper()
	vms := aggregate.NewRuntime(h.events, domain.AggregateVm, domain.EmptyVM)
	vm, _, err := vms.Load(h.ctx, id.String())
	require.NoError(t, err)
	return vm
}

func TestProvisionSuccess(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	requestID, vmID := h.approvedRequest(t)

	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	request := h.loadRequest(t, requestID)
	assert.Equal(t, domain.RequestReady, request.Status)
	assert.NotEmpty(t, request.VmwareVMID)
	assert.NotEmpty(t, request.IPAddress)

	vm := h.loadVM(t, vmID)
	assert.Equal(t, domain.VMProvisioned, vm.Status)
	assert.Equal(t, request.VmwareVMID, vm.VmwareVMID)
	assert.Equal(t, domain.StageReady, vm.Stage)
	assert.Equal(t, "PHOE-web-server", vm.Name)
}

func TestProvisionFailureMarksBothSides(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.mock.FailAtStage = domain.StageConfiguring
	requestID, vmID := h.approvedRequest(t)

	// A business failure is recorded, not surfaced: the job must not retry.
	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	request := h.loadRequest(t, requestID)
	assert.Equal(t, domain.RequestFailed, request.Status)

	vm := h.loadVM(t, vmID)
	assert.Equal(t, domain.VMFailed, vm.Status)
	assert.Contains(t, vm.FailReason, "CONFIGURING")
}

func TestProvisionHypervisorTimeoutMarksBothSides(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.mock.FailAtStage = domain.StageConfiguring
	h.mock.FailErr = apperrors.Hypervisor(
		fmt.Errorf("wait for clone task: %w", context.DeadlineExceeded),
		apperrors.CodeHypervisorTimeout, "clone task timed out",
	)
	requestID, vmID := h.approvedRequest(t)

	// A timeout inside the hypervisor call wraps DeadlineExceeded, but our own
	// context is still live: this is a business failure, not a retryable job.
	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	assert.Equal(t, domain.RequestFailed, h.loadRequest(t, requestID).Status)

	vm := h.loadVM(t, vmID)
	assert.Equal(t, domain.VMFailed, vm.Status)
	assert.Contains(t, vm.FailReason, "timed out")
}

func TestProvisionResumesAfterPartialCompletion(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	requestID, vmID := h.approvedRequest(t)
	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	vm := h.loadVM(t, vmID)
	require.Equal(t, domain.VMProvisioned, vm.Status)

	// A duplicate job for an already-finished request is a silent no-op and
	// must not touch the hypervisor again.
	before := len(h.mock.CreatedIDs())
	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))
	assert.Equal(t, before, len(h.mock.CreatedIDs()))
	assert.Equal(t, domain.RequestReady, h.loadRequest(t, requestID).Status)
}

func TestProvisionSkipsUnknownAndStaleRequests(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	t.Run("unknown request", func(t *testing.T) {
		require.NoError(t, h.orch.Provision(h.ctx, domain.NewRequestID(), domain.NewVMID()))
		assert.Empty(t, h.mock.CreatedIDs())
	})

	t.Run("missing tenant scope", func(t *testing.T) {
		err := h.orch.Provision(context.Background(), domain.NewRequestID(), domain.NewVMID())
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})
}

func TestProvisionFailsWhenConfigMissing(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	requestID, vmID := h.approvedRequest(t)

	// Simulate a tenant without configuration: fresh resolver over an empty
	// store so nothing is cached.
	encryptor, err := secrets.NewEncryptor(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	orch := New(h.events, NewConfigResolver(readmodel.NewMemoryStore(), encryptor, time.Minute, true, time.Second),
		func(hypervisor.Config) hypervisor.Provisioner { return h.mock }, nil)

	require.NoError(t, orch.Provision(h.ctx, requestID, vmID))

	request := h.loadRequest(t, requestID)
	assert.Equal(t, domain.RequestFailed, request.Status)

	vm := h.loadVM(t, vmID)
	assert.Equal(t, domain.VMFailed, vm.Status)
	assert.Contains(t, vm.FailReason, "hypervisor configuration unavailable")
}

func TestProvisionRecordsStageProgress(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.engine.Register(projection.NewProgressProjector(h.events))
	requestID, vmID := h.approvedRequest(t)

	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	vm := h.loadVM(t, vmID)
	require.Equal(t, domain.VMProvisioned, vm.Status)

	// The progress row lived during provisioning and is gone after catch-up
	// sees the terminal event.
	require.NoError(t, h.engine.CatchUp(context.Background()))
	row, err := h.store.GetProgress(h.ctx, requestID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestSyncVMStatus(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	requestID, vmID := h.approvedRequest(t)
	require.NoError(t, h.orch.Provision(h.ctx, requestID, vmID))

	require.NoError(t, h.orch.SyncVMStatus(h.ctx, vmID))

	vm := h.loadVM(t, vmID)
	assert.Equal(t, "poweredOn", vm.PowerState)
	assert.False(t, vm.LastSyncedAt.IsZero())

	t.Run("non provisioned vm is a no-op", func(t *testing.T) {
		require.NoError(t, h.orch.SyncVMStatus(h.ctx, domain.NewVMID()))
	})
}

func TestTriggerToleratesRedelivery(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	requestID, vmID := h.approvedRequest(t)

	// Replaying the whole log from scratch delivers Approved and
	// ProvisioningStarted again; state transitions no-op and only the unique
	// job key dedupes the enqueue.
	trigger := NewTrigger(h.events, h.enqueuer)
	events, err := h.events.ReadFrom(context.Background(), 0, 100)
	require.NoError(t, err)
	for _, e := range events {
		require.NoError(t, trigger.Handle(tenant.With(context.Background(), e.Meta.TenantID), nil, e))
	}

	request := h.loadRequest(t, requestID)
	assert.Equal(t, domain.RequestProvisioning, request.Status)
	assert.Equal(t, vmID, request.VMID)
}
