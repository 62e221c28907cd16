package command

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

func seedRequests(t *testing.T, store *readmodel.MemoryStore, requester domain.UserID, status domain.RequestStatus, n int) {
	t.Helper()
	err := store.InTx(tenant.With(context.Background(), "tenant-1"), func(tx readmodel.Tx) error {
		for i := 0; i < n; i++ {
			if err := tx.UpsertRequest(context.Background(), readmodel.RequestRow{
				ID:          domain.RequestID(fmt.Sprintf("req-%s-%s-%d", requester, status, i)),
				TenantID:    "tenant-1",
				RequesterID: requester,
				Status:      status,
				CreatedAt:   time.Now().UTC(),
				Version:     1,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMaxPendingQuota(t *testing.T) {
	t.Parallel()

	ctx := tenant.With(context.Background(), "tenant-1")

	t.Run("under the cap passes", func(t *testing.T) {
		store := readmodel.NewMemoryStore()
		seedRequests(t, store, "user-1", domain.RequestPending, 2)

		quota := NewMaxPendingQuota(store, 3)
		assert.NoError(t, quota.CheckCreate(ctx, "user-1"))
	})

	t.Run("at the cap refuses", func(t *testing.T) {
		store := readmodel.NewMemoryStore()
		seedRequests(t, store, "user-1", domain.RequestPending, 3)

		quota := NewMaxPendingQuota(store, 3)
		err := quota.CheckCreate(ctx, "user-1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindQuotaExceeded))
	})

	t.Run("decided requests do not count", func(t *testing.T) {
		store := readmodel.NewMemoryStore()
		seedRequests(t, store, "user-1", domain.RequestApproved, 5)
		seedRequests(t, store, "user-1", domain.RequestRejected, 5)

		quota := NewMaxPendingQuota(store, 3)
		assert.NoError(t, quota.CheckCreate(ctx, "user-1"))
	})

	t.Run("other users do not count", func(t *testing.T) {
		store := readmodel.NewMemoryStore()
		seedRequests(t, store, "user-9", domain.RequestPending, 10)

		quota := NewMaxPendingQuota(store, 3)
		assert.NoError(t, quota.CheckCreate(ctx, "user-1"))
	})

	t.Run("non positive max selects the default", func(t *testing.T) {
		store := readmodel.NewMemoryStore()
		seedRequests(t, store, "user-1", domain.RequestPending, DefaultMaxPendingPerRequester)

		quota := NewMaxPendingQuota(store, 0)
		err := quota.CheckCreate(ctx, "user-1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindQuotaExceeded))
	})
}
