package aggregate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

func testMeta() domain.Metadata {
	return domain.Metadata{TenantID: "tenant-1", ActorID: "user-1", OccurredAt: time.Now().UTC()}
}

func testCtx() context.Context {
	return tenant.With(context.Background(), "tenant-1")
}

func newRequestRuntime(store eventstore.Store, opts ...Option) *Runtime[domain.VmRequest] {
	return NewRuntime(store, domain.AggregateVmRequest, domain.EmptyVmRequest, opts...)
}

func createCmd() domain.CreateVmRequest {
	return domain.CreateVmRequest{
		ProjectID: "proj-1", ProjectName: "Phoenix", RequesterID: "user-1",
		VMName: "web-server", Size: "M", Justification: "load testing for the release",
	}
}

func TestExecuteAppendsAndApplies(t *testing.T) {
	t.Parallel()

	store := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	runtime := newRequestRuntime(store)
	ctx := testCtx()

	state, version, err := runtime.Execute(ctx, "req-1", testMeta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCreate(createCmd())
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, domain.RequestPending, state.Status)
	assert.Equal(t, int64(1), state.Version)

	state, version, err = runtime.Execute(ctx, "req-1", testMeta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideApprove("user-2", "Avery")
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.Equal(t, domain.RequestApproved, state.Status)

	loaded, loadedVersion, err := runtime.Load(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), loadedVersion)
	assert.Equal(t, state.Status, loaded.Status)
}

func TestExecuteSurfacesDecisionErrors(t *testing.T) {
	t.Parallel()

	store := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	runtime := newRequestRuntime(store)

	_, _, err := runtime.Execute(testCtx(), "missing", testMeta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideApprove("user-2", "Avery")
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	head, err := store.HeadSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), head)
}

func TestExecuteNoPayloadsIsNoOp(t *testing.T) {
	t.Parallel()

	store := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	runtime := newRequestRuntime(store)

	state, version, err := runtime.Execute(testCtx(), "req-1", testMeta(), func(domain.VmRequest) ([]domain.Payload, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.False(t, state.Created())
}

// conflictingStore injects one ConcurrencyConflict on the first append, then
// delegates. It simulates a concurrent writer racing the first attempt.
type conflictingStore struct {
	eventstore.Store

	mu       sync.Mutex
	injected bool
	appends  int
}

func (s *conflictingStore) Append(ctx context.Context, aggregateType, aggregateID string, events []domain.Event, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	s.appends++
	inject := !s.injected
	s.injected = true
	s.mu.Unlock()

	if inject {
		return 0, apperrors.ConcurrencyConflict(expectedVersion, expectedVersion+1)
	}
	return s.Store.Append(ctx, aggregateType, aggregateID, events, expectedVersion)
}

func TestExecuteRetriesConcurrencyConflict(t *testing.T) {
	t.Parallel()

	store := &conflictingStore{Store: eventstore.NewMemoryStore(domain.NewDefaultCodec())}
	runtime := newRequestRuntime(store)

	state, version, err := runtime.Execute(testCtx(), "req-1", testMeta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCreate(createCmd())
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, domain.RequestPending, state.Status)
	assert.Equal(t, 2, store.appends)
}

// alwaysConflicting fails every append with a ConcurrencyConflict.
type alwaysConflicting struct {
	eventstore.Store
}

func (s *alwaysConflicting) Append(_ context.Context, _, _ string, _ []domain.Event, expectedVersion int64) (int64, error) {
	return 0, apperrors.ConcurrencyConflict(expectedVersion, expectedVersion+1)
}

func TestExecuteBoundedRetries(t *testing.T) {
	t.Parallel()

	store := &alwaysConflicting{Store: eventstore.NewMemoryStore(domain.NewDefaultCodec())}
	runtime := newRequestRuntime(store, WithConflictRetries(2))

	_, _, err := runtime.Execute(testCtx(), "req-1", testMeta(), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCreate(createCmd())
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))
}

func TestSnapshotPolicy(t *testing.T) {
	t.Parallel()

	store := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	runtime := newRequestRuntime(store, WithSnapshotThreshold(2))
	ctx := testCtx()

	steps := []func(state domain.VmRequest) ([]domain.Payload, error){
		func(state domain.VmRequest) ([]domain.Payload, error) { return state.DecideCreate(createCmd()) },
		func(state domain.VmRequest) ([]domain.Payload, error) { return state.DecideApprove("user-2", "Avery") },
		func(state domain.VmRequest) ([]domain.Payload, error) { return state.DecideMarkProvisioning("vm-agg-1") },
	}
	for _, step := range steps {
		_, _, err := runtime.Execute(ctx, "req-1", testMeta(), step)
		require.NoError(t, err)
	}

	snap, tail, err := store.LoadFromSnapshot(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(3), snap.Version)
	assert.Empty(t, tail)

	// Replay from snapshot must agree with full replay.
	state, version, err := runtime.Load(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
	assert.Equal(t, domain.RequestProvisioning, state.Status)
	assert.Equal(t, domain.VMID("vm-agg-1"), state.VMID)
}
