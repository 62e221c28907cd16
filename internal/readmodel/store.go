package readmodel

import (
	"context"
	"time"

	"vc-drover.io/drover/internal/domain"
)

// Tx is the atomic unit a projection subscriber writes in: projection
// mutations plus the cursor advance commit or roll back together.
type Tx interface {
	SetCursor(ctx context.Context, subscriber string, seq int64) error

	UpsertRequest(ctx context.Context, row RequestRow) error
	AppendTimeline(ctx context.Context, row TimelineRow) error
	UpsertProgress(ctx context.Context, row ProgressRow) error
	DeleteProgress(ctx context.Context, requestID domain.RequestID) error
	InsertDeadLetter(ctx context.Context, row DeadLetterRow) error
	InsertNotification(ctx context.Context, row NotificationRow) error
}

// Store is the read-side storage port.
//
// Query methods are tenant-scoped: the tenant comes from the context and the
// implementation filters rows independently of the caller (service filter +
// storage policy, defense in depth). System* methods run without a tenant
// scope and are reserved for the sweep jobs.
type Store interface {
	// Cursor returns the durable cursor for a subscriber (0 when new).
	Cursor(ctx context.Context, subscriber string) (int64, error)

	// InTx runs fn in one atomic unit.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// GetRequest returns the projection row visible in the current tenant
	// scope, or nil when absent.
	GetRequest(ctx context.Context, id domain.RequestID) (*RequestRow, error)

	// ListByRequester pages the requester's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID domain.UserID, page, size int) (*RequestPage, error)

	// ListPending pages pending requests, optionally filtered by project.
	ListPending(ctx context.Context, projectID *domain.ProjectID, page, size int) (*RequestPage, error)

	// ListTimeline returns the request's timeline, oldest first.
	ListTimeline(ctx context.Context, requestID domain.RequestID) ([]TimelineRow, error)

	// GetProgress returns the in-flight provisioning progress row, or nil.
	GetProgress(ctx context.Context, requestID domain.RequestID) (*ProgressRow, error)

	// DistinctProjects lists the tenant's projects with request counts.
	DistinctProjects(ctx context.Context) ([]ProjectSummary, error)

	// GetVMwareConfig returns the tenant's vCenter configuration, or nil.
	GetVMwareConfig(ctx context.Context) (*VMwareConfig, error)

	// SaveVMwareConfig inserts or updates the tenant's configuration with
	// optimistic locking on Version; a stale version surfaces as
	// ConcurrencyConflict.
	SaveVMwareConfig(ctx context.Context, cfg VMwareConfig) (*VMwareConfig, error)

	// MarkVMwareConfigVerified stamps verified_at after a successful
	// connection test.
	MarkVMwareConfigVerified(ctx context.Context, verifiedAt time.Time) error

	// ListDeadLetters returns the newest poisoned events, tenant-scoped.
	ListDeadLetters(ctx context.Context, limit int) ([]DeadLetterRow, error)

	// ListNotifications returns the recipient's inbox, newest first.
	ListNotifications(ctx context.Context, recipient domain.UserID, limit int) ([]NotificationRow, error)

	// CountUnreadNotifications returns the recipient's unread count.
	CountUnreadNotifications(ctx context.Context, recipient domain.UserID) (int, error)

	// MarkNotificationRead marks one of the recipient's notifications read.
	// Another user's notification is indistinguishable from an absent one.
	MarkNotificationRead(ctx context.Context, recipient domain.UserID, id string) error

	// MarkAllNotificationsRead marks the recipient's whole inbox read.
	MarkAllNotificationsRead(ctx context.Context, recipient domain.UserID) error

	// SystemListStalledProvisioning returns requests that have been in
	// PROVISIONING since before the given instant, across all tenants.
	SystemListStalledProvisioning(ctx context.Context, before time.Time) ([]RequestRow, error)

	// SystemListReadyRequests returns READY requests with a VM id, across
	// all tenants, for the status-sync sweep.
	SystemListReadyRequests(ctx context.Context) ([]RequestRow, error)
}
