package readmodel

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

func scoped(id domain.TenantID) context.Context {
	return tenant.With(context.Background(), id)
}

func upsert(t *testing.T, s *MemoryStore, tenantID domain.TenantID, rows ...RequestRow) {
	t.Helper()
	err := s.InTx(scoped(tenantID), func(tx Tx) error {
		for _, row := range rows {
			if err := tx.UpsertRequest(context.Background(), row); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 20, 0, 20},
		{-5, 20, 0, 20},
		{2, 0, 2, 1},
		{2, 500, 2, 100},
	}
	for _, tc := range cases {
		page, size := ClampPageSize(tc.page, tc.size)
		assert.Equal(t, tc.wantPage, page)
		assert.Equal(t, tc.wantSize, size)
	}
}

func TestUpsertRequestVersionGate(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	upsert(t, s, "tenant-1", RequestRow{
		ID: "req-1", TenantID: "tenant-1", RequesterID: "user-1",
		Status: domain.RequestApproved, Version: 2, CreatedAt: time.Now().UTC(),
	})

	// A stale re-delivery (lower version) must not regress the row.
	upsert(t, s, "tenant-1", RequestRow{
		ID: "req-1", TenantID: "tenant-1", RequesterID: "user-1",
		Status: domain.RequestPending, Version: 1, CreatedAt: time.Now().UTC(),
	})

	row, err := s.GetRequest(scoped("tenant-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, row.Status)
	assert.Equal(t, int64(2), row.Version)
}

func TestInTxIsAtomic(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	err := s.InTx(scoped("tenant-1"), func(tx Tx) error {
		if err := tx.UpsertRequest(context.Background(), RequestRow{
			ID: "req-1", TenantID: "tenant-1", Version: 1,
		}); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)

	row, err := s.GetRequest(scoped("tenant-1"), "req-1")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestListPagingAndOrdering(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	now := time.Now().UTC()
	var rows []RequestRow
	for i := 0; i < 5; i++ {
		rows = append(rows, RequestRow{
			ID:          domain.RequestID(fmt.Sprintf("req-%d", i)),
			TenantID:    "tenant-1",
			RequesterID: "user-1",
			Status:      domain.RequestPending,
			CreatedAt:   now.Add(time.Duration(i) * time.Minute),
			Version:     1,
		})
	}
	upsert(t, s, "tenant-1", rows...)

	page, err := s.ListByRequester(scoped("tenant-1"), "user-1", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.RequestID("req-4"), page.Items[0].ID)
	assert.Equal(t, domain.RequestID("req-3"), page.Items[1].ID)

	last, err := s.ListByRequester(scoped("tenant-1"), "user-1", 2, 2)
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, domain.RequestID("req-0"), last.Items[0].ID)

	beyond, err := s.ListByRequester(scoped("tenant-1"), "user-1", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 5, beyond.TotalCount)
}

func TestDistinctProjects(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	upsert(t, s, "tenant-1",
		RequestRow{ID: "req-1", TenantID: "tenant-1", ProjectID: "proj-a", ProjectName: "Zeta", Version: 1},
		RequestRow{ID: "req-2", TenantID: "tenant-1", ProjectID: "proj-a", ProjectName: "Zeta", Version: 1},
		RequestRow{ID: "req-3", TenantID: "tenant-1", ProjectID: "proj-b", ProjectName: "alpha", Version: 1},
	)
	upsert(t, s, "tenant-2",
		RequestRow{ID: "req-9", TenantID: "tenant-2", ProjectID: "proj-z", ProjectName: "Other", Version: 1},
	)

	projects, err := s.DistinctProjects(scoped("tenant-1"))
	require.NoError(t, err)
	require.Len(t, projects, 2)
	// Case-insensitive name ordering.
	assert.Equal(t, "alpha", projects[0].ProjectName)
	assert.Equal(t, "Zeta", projects[1].ProjectName)
	assert.Equal(t, 2, projects[1].RequestCount)
}

func TestSaveVMwareConfigOptimisticLock(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := scoped("tenant-1")

	saved, err := s.SaveVMwareConfig(ctx, VMwareConfig{VCenterURL: "https://vc1", PasswordEnc: "v1:abc"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	_, err = s.SaveVMwareConfig(ctx, VMwareConfig{VCenterURL: "https://vc2", Version: 0})
	assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))

	updated, err := s.SaveVMwareConfig(ctx, VMwareConfig{VCenterURL: "https://vc2", Version: saved.Version})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	t.Run("verify requires an existing config", func(t *testing.T) {
		err := s.MarkVMwareConfigVerified(scoped("tenant-9"), time.Now().UTC())
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

		require.NoError(t, s.MarkVMwareConfigVerified(ctx, time.Now().UTC()))
		cfg, err := s.GetVMwareConfig(ctx)
		require.NoError(t, err)
		assert.NotNil(t, cfg.VerifiedAt)
	})
}

func TestNotificationReadMarking(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := scoped("tenant-1")
	err := s.InTx(ctx, func(tx Tx) error {
		for i := 0; i < 3; i++ {
			if err := tx.InsertNotification(context.Background(), NotificationRow{
				ID: fmt.Sprintf("n-%d", i), TenantID: "tenant-1", RecipientID: "user-1",
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.MarkNotificationRead(ctx, "user-1", "n-0"))
	count, err := s.CountUnreadNotifications(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rows, err := s.ListNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	for _, row := range rows {
		if row.ID == "n-0" {
			assert.True(t, row.Read)
			assert.NotNil(t, row.ReadAt)
		}
	}

	// Wrong recipient looks absent.
	err = s.MarkNotificationRead(ctx, "user-9", "n-1")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "user-1"))
	count, err = s.CountUnreadNotifications(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSystemSweepsIgnoreTenantScope(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	stale := time.Now().UTC().Add(-time.Hour)
	upsert(t, s, "tenant-1", RequestRow{
		ID: "req-1", TenantID: "tenant-1", Status: domain.RequestProvisioning,
		UpdatedAt: stale, Version: 3,
	})
	upsert(t, s, "tenant-2", RequestRow{
		ID: "req-2", TenantID: "tenant-2", Status: domain.RequestReady,
		VMID: "vm-agg-1", UpdatedAt: time.Now().UTC(), Version: 4,
	})

	stalled, err := s.SystemListStalledProvisioning(context.Background(), time.Now().UTC().Add(-30*time.Minute))
	require.NoError(t, err)
	require.Len(t, stalled, 1)
	assert.Equal(t, domain.RequestID("req-1"), stalled[0].ID)

	ready, err := s.SystemListReadyRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, domain.RequestID("req-2"), ready[0].ID)
}
