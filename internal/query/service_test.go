package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

var (
	member = tenant.Identity{UserID: "user-1", TenantID: "tenant-1", Name: "Riley", Roles: []string{"member"}}
	admin  = tenant.Identity{UserID: "user-2", TenantID: "tenant-1", Name: "Avery", Roles: []string{"admin"}}
)

func identityCtx(ident tenant.Identity) context.Context {
	return tenant.WithIdentity(context.Background(), ident)
}

func seedRequest(t *testing.T, store *readmodel.MemoryStore, row readmodel.RequestRow) {
	t.Helper()
	if row.Version == 0 {
		row.Version = 1
	}
	err := store.InTx(tenant.With(context.Background(), row.TenantID), func(tx readmodel.Tx) error {
		return tx.UpsertRequest(context.Background(), row)
	})
	require.NoError(t, err)
}

func seedNotification(t *testing.T, store *readmodel.MemoryStore, row readmodel.NotificationRow) {
	t.Helper()
	err := store.InTx(tenant.With(context.Background(), row.TenantID), func(tx readmodel.Tx) error {
		return tx.InsertNotification(context.Background(), row)
	})
	require.NoError(t, err)
}

func TestGetRequest(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)
	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-1", TenantID: "tenant-1", RequesterID: "user-1",
		Status: domain.RequestPending, CreatedAt: time.Now().UTC(),
	})

	t.Run("visible request returns detail", func(t *testing.T) {
		detail, err := service.GetRequest(identityCtx(member), "req-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RequestID("req-1"), detail.Request.ID)
		assert.Nil(t, detail.Progress)
	})

	t.Run("absent request is not found", func(t *testing.T) {
		_, err := service.GetRequest(identityCtx(member), "req-404")
		assert.Equal(t, apperrors.CodeRequestNotFound, apperrors.CodeOf(err))
	})

	t.Run("cross-tenant request is indistinguishable from absent", func(t *testing.T) {
		foreign := tenant.Identity{UserID: "user-1", TenantID: "tenant-2"}
		_, err := service.GetRequest(identityCtx(foreign), "req-1")
		assert.Equal(t, apperrors.CodeRequestNotFound, apperrors.CodeOf(err))
	})

	t.Run("another member's request is indistinguishable from absent", func(t *testing.T) {
		other := tenant.Identity{UserID: "user-7", TenantID: "tenant-1", Roles: []string{"member"}}
		_, err := service.GetRequest(identityCtx(other), "req-1")
		assert.Equal(t, apperrors.CodeRequestNotFound, apperrors.CodeOf(err))
	})

	t.Run("admin sees any requester's detail", func(t *testing.T) {
		detail, err := service.GetRequest(identityCtx(admin), "req-1")
		require.NoError(t, err)
		assert.Equal(t, domain.UserID("user-1"), detail.Request.RequesterID)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		_, err := service.GetRequest(tenant.With(context.Background(), "tenant-1"), "req-1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})

	t.Run("provisioning request includes progress", func(t *testing.T) {
		seedRequest(t, store, readmodel.RequestRow{
			ID: "req-2", TenantID: "tenant-1", RequesterID: "user-1",
			Status: domain.RequestProvisioning, CreatedAt: time.Now().UTC(),
		})
		err := store.InTx(tenant.With(context.Background(), "tenant-1"), func(tx readmodel.Tx) error {
			return tx.UpsertProgress(context.Background(), readmodel.ProgressRow{
				RequestID: "req-2", TenantID: "tenant-1", Stage: domain.StageCloning,
				StageTimestamps:           map[domain.Stage]time.Time{domain.StageCloning: time.Now().UTC()},
				EstimatedRemainingSeconds: 135,
			})
		})
		require.NoError(t, err)

		detail, err := service.GetRequest(identityCtx(member), "req-2")
		require.NoError(t, err)
		require.NotNil(t, detail.Progress)
		assert.Equal(t, domain.StageCloning, detail.Progress.Stage)
	})
}

func TestListMyRequests(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)
	now := time.Now().UTC()
	for i, id := range []domain.RequestID{"req-a", "req-b", "req-c"} {
		seedRequest(t, store, readmodel.RequestRow{
			ID: id, TenantID: "tenant-1", RequesterID: "user-1",
			Status: domain.RequestPending, CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-other", TenantID: "tenant-1", RequesterID: "user-9",
		Status: domain.RequestPending, CreatedAt: now,
	})

	page, err := service.ListMyRequests(identityCtx(member), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.RequestID("req-c"), page.Items[0].ID)

	rest, err := service.ListMyRequests(identityCtx(member), 1, 2)
	require.NoError(t, err)
	require.Len(t, rest.Items, 1)
	assert.Equal(t, domain.RequestID("req-a"), rest.Items[0].ID)

	_, err = service.ListMyRequests(context.Background(), 0, 10)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestListPending(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)
	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-1", TenantID: "tenant-1", RequesterID: "user-1", ProjectID: "proj-1",
		Status: domain.RequestPending, CreatedAt: time.Now().UTC(),
	})
	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-2", TenantID: "tenant-1", RequesterID: "user-1", ProjectID: "proj-2",
		Status: domain.RequestPending, CreatedAt: time.Now().UTC(),
	})
	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-3", TenantID: "tenant-1", RequesterID: "user-1", ProjectID: "proj-1",
		Status: domain.RequestApproved, CreatedAt: time.Now().UTC(),
	})

	t.Run("admin sees all pending", func(t *testing.T) {
		page, err := service.ListPending(identityCtx(admin), nil, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
	})

	t.Run("project filter applies", func(t *testing.T) {
		projectID := domain.ProjectID("proj-1")
		page, err := service.ListPending(identityCtx(admin), &projectID, 0, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, domain.RequestID("req-1"), page.Items[0].ID)
	})

	t.Run("non admin is refused", func(t *testing.T) {
		_, err := service.ListPending(identityCtx(member), nil, 0, 10)
		assert.Equal(t, apperrors.CodeAdminRequired, apperrors.CodeOf(err))
	})
}

func TestGetProgressGuards(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)

	// Progress of an invisible request leaks nothing.
	_, err := service.GetProgress(identityCtx(member), "req-404")
	assert.Equal(t, apperrors.CodeRequestNotFound, apperrors.CodeOf(err))

	seedRequest(t, store, readmodel.RequestRow{
		ID: "req-1", TenantID: "tenant-1", RequesterID: "user-1",
		Status: domain.RequestReady, CreatedAt: time.Now().UTC(),
	})
	row, err := service.GetProgress(identityCtx(member), "req-1")
	require.NoError(t, err)
	assert.Nil(t, row)

	// The owner gate covers progress too: a different member in the same
	// tenant cannot tell the request exists, while an admin can.
	other := tenant.Identity{UserID: "user-7", TenantID: "tenant-1", Roles: []string{"member"}}
	_, err = service.GetProgress(identityCtx(other), "req-1")
	assert.Equal(t, apperrors.CodeRequestNotFound, apperrors.CodeOf(err))

	_, err = service.GetProgress(identityCtx(admin), "req-1")
	assert.NoError(t, err)
}

func TestInbox(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)
	seedNotification(t, store, readmodel.NotificationRow{
		ID: "n-1", TenantID: "tenant-1", RecipientID: "user-1",
		Type: "REQUEST_APPROVED", Title: "Request approved",
	})
	seedNotification(t, store, readmodel.NotificationRow{
		ID: "n-2", TenantID: "tenant-1", RecipientID: "user-1",
		Type: "VM_READY", Title: "VM ready",
	})
	seedNotification(t, store, readmodel.NotificationRow{
		ID: "n-3", TenantID: "tenant-1", RecipientID: "user-9",
		Type: "VM_READY", Title: "VM ready",
	})

	ctx := identityCtx(member)

	rows, err := service.ListInbox(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	t.Run("marking another user's notification is not found", func(t *testing.T) {
		err := service.MarkNotificationRead(ctx, "n-3")
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("mark one read", func(t *testing.T) {
		require.NoError(t, service.MarkNotificationRead(ctx, "n-1"))
		count, err := service.UnreadCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// Marking an already-read notification stays a no-op.
		require.NoError(t, service.MarkNotificationRead(ctx, "n-1"))
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, service.MarkAllNotificationsRead(ctx))
		count, err := service.UnreadCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		// The other user's inbox is untouched.
		other := tenant.Identity{UserID: "user-9", TenantID: "tenant-1"}
		count, err = service.UnreadCount(identityCtx(other))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestListDeadLettersRequiresAdmin(t *testing.T) {
	t.Parallel()

	store := readmodel.NewMemoryStore()
	service := NewService(store)

	_, err := service.ListDeadLetters(identityCtx(member), 10)
	assert.Equal(t, apperrors.CodeAdminRequired, apperrors.CodeOf(err))

	rows, err := service.ListDeadLetters(identityCtx(admin), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
