package eventstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(domain.NewDefaultCodec())
}

func tenantCtx(id domain.TenantID) context.Context {
	return tenant.With(context.Background(), id)
}

func createdEvent(aggregateID string, tenantID domain.TenantID) domain.Event {
	return domain.NewEvent(domain.AggregateVmRequest, aggregateID, domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix", RequesterID: "user-1",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	}, domain.Metadata{TenantID: tenantID, ActorID: "user-1", OccurredAt: time.Now().UTC()})
}

func approvedEvent(aggregateID string, tenantID domain.TenantID) domain.Event {
	return domain.NewEvent(domain.AggregateVmRequest, aggregateID, domain.VmRequestApproved{
		ApprovedBy: "user-2", ApproverName: "Avery",
	}, domain.Metadata{TenantID: tenantID, ActorID: "user-2", OccurredAt: time.Now().UTC()})
}

func TestAppendAndLoad(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	ctx := tenantCtx("tenant-1")

	version, err := store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-1")}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{approvedEvent("req-1", "tenant-1")}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	events, err := store.Load(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Version)
	assert.Equal(t, int64(2), events[1].Version)
	assert.Equal(t, domain.EventVmRequestCreated, events[0].Type)

	// Payloads round-trip through the codec.
	created, ok := events[0].Payload.(domain.VmRequestCreated)
	require.True(t, ok)
	assert.Equal(t, "web-server", created.VMName)
}

func TestAppendConcurrencyConflict(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	ctx := tenantCtx("tenant-1")

	_, err := store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-1")}, 0)
	require.NoError(t, err)

	// Stale expected version loses.
	_, err = store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{approvedEvent("req-1", "tenant-1")}, 0)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, int64(0), appErr.Params["expected"])
	assert.Equal(t, int64(1), appErr.Params["actual"])
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	version, err := store.Append(tenantCtx("tenant-1"), domain.AggregateVmRequest, "req-1", nil, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), version)

	head, err := store.HeadSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), head)
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	ctxA := tenantCtx("tenant-a")
	ctxB := tenantCtx("tenant-b")

	_, err := store.Append(ctxA, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-a")}, 0)
	require.NoError(t, err)

	t.Run("append to foreign aggregate is a tenant mismatch", func(t *testing.T) {
		_, err := store.Append(ctxB, domain.AggregateVmRequest, "req-1",
			[]domain.Event{approvedEvent("req-1", "tenant-b")}, 1)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantMismatch))
	})

	t.Run("event meta must agree with the scope", func(t *testing.T) {
		_, err := store.Append(ctxA, domain.AggregateVmRequest, "req-2",
			[]domain.Event{createdEvent("req-2", "tenant-b")}, 0)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantMismatch))
	})

	t.Run("foreign aggregate loads as absent", func(t *testing.T) {
		events, err := store.Load(ctxB, "req-1")
		require.NoError(t, err)
		assert.Empty(t, events)

		snap, events, err := store.LoadFromSnapshot(ctxB, "req-1")
		require.NoError(t, err)
		assert.Nil(t, snap)
		assert.Empty(t, events)
	})

	t.Run("missing scope is rejected", func(t *testing.T) {
		_, err := store.Load(context.Background(), "req-1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})
}

func TestReadFromOrdering(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	ctxA := tenantCtx("tenant-a")
	ctxB := tenantCtx("tenant-b")

	_, err := store.Append(ctxA, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-a")}, 0)
	require.NoError(t, err)
	_, err = store.Append(ctxB, domain.AggregateVmRequest, "req-2",
		[]domain.Event{createdEvent("req-2", "tenant-b")}, 0)
	require.NoError(t, err)
	_, err = store.Append(ctxA, domain.AggregateVmRequest, "req-1",
		[]domain.Event{approvedEvent("req-1", "tenant-a")}, 1)
	require.NoError(t, err)

	// The global feed is unscoped and strictly ordered by sequence.
	events, err := store.ReadFrom(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, int64(i+1), e.GlobalSequence)
	}

	tail, err := store.ReadFrom(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, int64(2), tail[0].GlobalSequence)

	limited, err := store.ReadFrom(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	head, err := store.HeadSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), head)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	ctx := tenantCtx("tenant-1")

	_, err := store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-1")}, 0)
	require.NoError(t, err)
	_, err = store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{approvedEvent("req-1", "tenant-1")}, 1)
	require.NoError(t, err)

	require.NoError(t, store.SaveSnapshot(ctx, "req-1", 1, []byte(`{"state":"pending"}`)))

	snap, events, err := store.LoadFromSnapshot(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(1), snap.Version)
	assert.JSONEq(t, `{"state":"pending"}`, string(snap.Payload))

	// Only events after the snapshot version come back.
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].Version)
	assert.Equal(t, domain.EventVmRequestApproved, events[0].Type)
}
