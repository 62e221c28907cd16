// Package readmodel defines the read-side storage port: projection rows,
// durable subscriber cursors, and the tenant-scoped queries over them.
//
// Read models are derived state only, rebuildable from the event log. Two
// implementations share the Store contract: the ent-backed store
// (production) and MemoryStore (tests).
package readmodel

import (
	"time"

	"vc-drover.io/drover/internal/domain"
)

// RequestRow is the denormalized vm_requests_projection row.
type RequestRow struct {
	ID              domain.RequestID
	TenantID        domain.TenantID
	ProjectID       domain.ProjectID
	ProjectName     string
	RequesterID     domain.UserID
	RequesterName   string
	RequesterEmail  string
	VMName          string
	Size            domain.VMSize
	CPUCores        int
	MemoryGB        int
	DiskGB          int
	Justification   string
	Status          domain.RequestStatus
	DeciderName     string
	DecidedAt       time.Time
	RejectionReason string
	VMID            domain.VMID
	VmwareVMID      string
	IPAddress       string
	Hostname        string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Version is the last applied aggregate version; re-applying an event
	// with Version <= this value is a no-op (idempotency discriminator).
	Version int64
}

// TimelineRow is one append-only audit entry for a request.
type TimelineRow struct {
	RequestID  domain.RequestID
	TenantID   domain.TenantID
	EventType  string
	ActorName  string
	Details    string
	OccurredAt time.Time
}

// Timeline entry types, in the vocabulary the UI consumes.
const (
	TimelineCreated             = "CREATED"
	TimelineApproved            = "APPROVED"
	TimelineRejected            = "REJECTED"
	TimelineCancelled           = "CANCELLED"
	TimelineProvisioningStarted = "PROVISIONING_STARTED"
	TimelineVMReady             = "VM_READY"
	TimelineProvisioningFailed  = "PROVISIONING_FAILED"
)

// ProgressRow is the mutable single row per in-flight provisioning request.
// Deleted when the request reaches READY or FAILED.
type ProgressRow struct {
	RequestID                 domain.RequestID
	TenantID                  domain.TenantID
	Stage                     domain.Stage
	StageTimestamps           map[domain.Stage]time.Time
	EstimatedRemainingSeconds int
	UpdatedAt                 time.Time
}

// VMwareConfig is the per-tenant vCenter configuration. PasswordEnc is
// ciphertext from the credential encryption port, stored verbatim.
type VMwareConfig struct {
	TenantID    domain.TenantID
	VCenterURL  string
	Username    string
	PasswordEnc string
	Datacenter  string
	Cluster     string
	Datastore   string
	Network     string
	Template    string
	VerifiedAt  *time.Time
	UpdatedAt   time.Time

	// Version supports optimistic locking on admin updates.
	Version int64
}

// DeadLetterRow records a poisoned projection event for operator review.
type DeadLetterRow struct {
	ID             string
	Subscriber     string
	GlobalSequence int64
	EventID        string
	EventType      string
	AggregateID    string
	TenantID       domain.TenantID
	Attempts       int
	LastError      string
	CreatedAt      time.Time
}

// NotificationRow is one in-app inbox notification.
type NotificationRow struct {
	ID           string
	TenantID     domain.TenantID
	RecipientID  domain.UserID
	Type         string
	Title        string
	Message      string
	ResourceType string
	ResourceID   string
	Read         bool
	ReadAt       *time.Time
	CreatedAt    time.Time
}

// ProjectSummary is one entry of the distinct-projects listing.
type ProjectSummary struct {
	ProjectID    domain.ProjectID
	ProjectName  string
	RequestCount int
}

// RequestPage is a stable-ordered page of request rows, newest first.
type RequestPage struct {
	Items      []RequestRow
	TotalCount int
	Page       int
	Size       int
}

// ClampPageSize clamps size to [1, 100] and page to >= 0.
func ClampPageSize(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
