package eventstore

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/testutil"
)

func newPostgresTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	pool := testutil.OpenPGXPool(t, "eventstore")

	db := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	return NewPostgresStore(pool, domain.NewDefaultCodec())
}

func TestPostgresAppendAndLoad(t *testing.T) {
	t.Parallel()

	store := newPostgresTestStore(t)
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
	assert.Equal(t, domain.EventVmRequestCreated, events[0].Type)

	created, ok := events[0].Payload.(domain.VmRequestCreated)
	require.True(t, ok)
	assert.Equal(t, "web-server", created.VMName)

	t.Run("stale expected version conflicts", func(t *testing.T) {
		_, err := store.Append(ctx, domain.AggregateVmRequest, "req-1",
			[]domain.Event{approvedEvent("req-1", "tenant-1")}, 1)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))
	})

	t.Run("foreign tenant sees nothing", func(t *testing.T) {
		events, err := store.Load(tenantCtx("tenant-2"), "req-1")
		require.NoError(t, err)
		assert.Empty(t, events)

		// Appending to another tenant's aggregate reports the tenant fault,
		// not a version race, whether the caller guesses the real head...
		_, err = store.Append(tenantCtx("tenant-2"), domain.AggregateVmRequest, "req-1",
			[]domain.Event{approvedEvent("req-1", "tenant-2")}, 2)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantMismatch))

		// ...or treats the id as a fresh aggregate.
		_, err = store.Append(tenantCtx("tenant-2"), domain.AggregateVmRequest, "req-1",
			[]domain.Event{createdEvent("req-1", "tenant-2")}, 0)
		assert.True(t, apperrors.IsKind(err, apperrors.KindTenantMismatch))
	})

	t.Run("empty append is a no-op", func(t *testing.T) {
		version, err := store.Append(ctx, domain.AggregateVmRequest, "req-9", nil, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), version)
	})
}

func TestPostgresGlobalFeedAndSnapshots(t *testing.T) {
	t.Parallel()

	store := newPostgresTestStore(t)
	ctx := tenantCtx("tenant-1")

	_, err := store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{createdEvent("req-1", "tenant-1")}, 0)
	require.NoError(t, err)
	_, err = store.Append(tenantCtx("tenant-2"), domain.AggregateVmRequest, "req-2",
		[]domain.Event{createdEvent("req-2", "tenant-2")}, 0)
	require.NoError(t, err)
	_, err = store.Append(ctx, domain.AggregateVmRequest, "req-1",
		[]domain.Event{approvedEvent("req-1", "tenant-1")}, 1)
	require.NoError(t, err)

	feed, err := store.ReadFrom(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	for i := 1; i < len(feed); i++ {
		assert.Greater(t, feed[i].GlobalSequence, feed[i-1].GlobalSequence)
	}

	head, err := store.HeadSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, feed[2].GlobalSequence, head)

	tail, err := store.ReadFrom(context.Background(), feed[0].GlobalSequence, 100)
	require.NoError(t, err)
	assert.Len(t, tail, 2)

	t.Run("snapshot round trip", func(t *testing.T) {
		require.NoError(t, store.SaveSnapshot(ctx, "req-1", 1, []byte(`{"state":"pending"}`)))

		snap, events, err := store.LoadFromSnapshot(ctx, "req-1")
		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.Equal(t, int64(1), snap.Version)
		require.Len(t, events, 1)
		assert.Equal(t, int64(2), events[0].Version)

		// Replacing the snapshot keeps a single live row.
		require.NoError(t, store.SaveSnapshot(ctx, "req-1", 2, []byte(`{"state":"approved"}`)))
		snap, events, err = store.LoadFromSnapshot(ctx, "req-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), snap.Version)
		assert.Empty(t, events)
	})
}
