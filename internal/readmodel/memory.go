package readmodel

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

// MemoryStore is the in-process read-model store for tests. Writes staged in
// a Tx apply atomically on success, cursor included, mirroring the ent
// store's transaction semantics.
type MemoryStore struct {
	mu            sync.Mutex
	cursors       map[string]int64
	requests      map[domain.RequestID]RequestRow
	timelines     map[domain.RequestID][]TimelineRow
	progress      map[domain.RequestID]ProgressRow
	vmwareConfigs map[domain.TenantID]VMwareConfig
	deadLetters   []DeadLetterRow
	notifications []NotificationRow
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cursors:       make(map[string]int64),
		requests:      make(map[domain.RequestID]RequestRow),
		timelines:     make(map[domain.RequestID][]TimelineRow),
		progress:      make(map[domain.RequestID]ProgressRow),
		vmwareConfigs: make(map[domain.TenantID]VMwareConfig),
	}
}

var _ Store = (*MemoryStore)(nil)

type memoryTx struct {
	ops []func(s *MemoryStore)
}

func (t *memoryTx) SetCursor(_ context.Context, subscriber string, seq int64) error {
	t.ops = append(t.ops, func(s *MemoryStore) { s.cursors[subscriber] = seq })
	return nil
}

func (t *memoryTx) UpsertRequest(_ context.Context, row RequestRow) error {
	t.ops = append(t.ops, func(s *MemoryStore) {
		if existing, ok := s.requests[row.ID]; ok && existing.Version >= row.Version {
			return // duplicate delivery is a no-op
		}
		s.requests[row.ID] = row
	})
	return nil
}

func (t *memoryTx) AppendTimeline(_ context.Context, row TimelineRow) error {
	t.ops = append(t.ops, func(s *MemoryStore) {
		for _, existing := range s.timelines[row.RequestID] {
			if existing.EventType == row.EventType && existing.OccurredAt.Equal(row.OccurredAt) {
				return // idempotent re-delivery
			}
		}
		s.timelines[row.RequestID] = append(s.timelines[row.RequestID], row)
	})
	return nil
}

func (t *memoryTx) UpsertProgress(_ context.Context, row ProgressRow) error {
	t.ops = append(t.ops, func(s *MemoryStore) {
		copied := row
		copied.StageTimestamps = make(map[domain.Stage]time.Time, len(row.StageTimestamps))
		for k, v := range row.StageTimestamps {
			copied.StageTimestamps[k] = v
		}
		s.progress[row.RequestID] = copied
	})
	return nil
}

func (t *memoryTx) DeleteProgress(_ context.Context, requestID domain.RequestID) error {
	t.ops = append(t.ops, func(s *MemoryStore) { delete(s.progress, requestID) })
	return nil
}

func (t *memoryTx) InsertDeadLetter(_ context.Context, row DeadLetterRow) error {
	t.ops = append(t.ops, func(s *MemoryStore) {
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now().UTC()
		}
		s.deadLetters = append(s.deadLetters, row)
	})
	return nil
}

func (t *memoryTx) InsertNotification(_ context.Context, row NotificationRow) error {
	t.ops = append(t.ops, func(s *MemoryStore) {
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		for _, existing := range s.notifications {
			if existing.ID == row.ID {
				return
			}
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now().UTC()
		}
		s.notifications = append(s.notifications, row)
	})
	return nil
}

// Cursor implements Store.
func (s *MemoryStore) Cursor(_ context.Context, subscriber string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursors[subscriber], nil
}

// InTx implements Store.
func (s *MemoryStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memoryTx{}
	if err := fn(tx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range tx.ops {
		op(s)
	}
	return nil
}

// GetRequest implements Store.
func (s *MemoryStore) GetRequest(ctx context.Context, id domain.RequestID) (*RequestRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.requests[id]
	if !ok || row.TenantID != tenantID {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

// ListByRequester implements Store.
func (s *MemoryStore) ListByRequester(ctx context.Context, requesterID domain.UserID, page, size int) (*RequestPage, error) {
	return s.list(ctx, page, size, func(row RequestRow) bool {
		return row.RequesterID == requesterID
	})
}

// ListPending implements Store.
func (s *MemoryStore) ListPending(ctx context.Context, projectID *domain.ProjectID, page, size int) (*RequestPage, error) {
	return s.list(ctx, page, size, func(row RequestRow) bool {
		if row.Status != domain.RequestPending {
			return false
		}
		return projectID == nil || row.ProjectID == *projectID
	})
}

func (s *MemoryStore) list(ctx context.Context, page, size int, match func(RequestRow) bool) (*RequestPage, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, size = ClampPageSize(page, size)

	s.mu.Lock()
	defer s.mu.Unlock()

	var all []RequestRow
	for _, row := range s.requests {
		if row.TenantID == tenantID && match(row) {
			all = append(all, row)
		}
	}
	// Newest first, id as tiebreaker for stable ordering.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return &RequestPage{Items: all[start:end], TotalCount: total, Page: page, Size: size}, nil
}

// ListTimeline implements Store.
func (s *MemoryStore) ListTimeline(ctx context.Context, requestID domain.RequestID) ([]TimelineRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []TimelineRow
	for _, row := range s.timelines[requestID] {
		if row.TenantID == tenantID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

// GetProgress implements Store.
func (s *MemoryStore) GetProgress(ctx context.Context, requestID domain.RequestID) (*ProgressRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.progress[requestID]
	if !ok || row.TenantID != tenantID {
		return nil, nil
	}
	copied := row
	copied.StageTimestamps = make(map[domain.Stage]time.Time, len(row.StageTimestamps))
	for k, v := range row.StageTimestamps {
		copied.StageTimestamps[k] = v
	}
	return &copied, nil
}

// DistinctProjects implements Store.
func (s *MemoryStore) DistinctProjects(ctx context.Context) ([]ProjectSummary, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[domain.ProjectID]*ProjectSummary)
	for _, row := range s.requests {
		if row.TenantID != tenantID {
			continue
		}
		if existing, ok := counts[row.ProjectID]; ok {
			existing.RequestCount++
			continue
		}
		counts[row.ProjectID] = &ProjectSummary{
			ProjectID:    row.ProjectID,
			ProjectName:  row.ProjectName,
			RequestCount: 1,
		}
	}
	out := make([]ProjectSummary, 0, len(counts))
	for _, summary := range counts {
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].ProjectName) < strings.ToLower(out[j].ProjectName)
	})
	return out, nil
}

// GetVMwareConfig implements Store.
func (s *MemoryStore) GetVMwareConfig(ctx context.Context) (*VMwareConfig, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.vmwareConfigs[tenantID]
	if !ok {
		return nil, nil
	}
	copied := cfg
	return &copied, nil
}

// SaveVMwareConfig implements Store.
func (s *MemoryStore) SaveVMwareConfig(ctx context.Context, cfg VMwareConfig) (*VMwareConfig, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.vmwareConfigs[tenantID]
	if ok && existing.Version != cfg.Version {
		return nil, apperrors.ConcurrencyConflict(cfg.Version, existing.Version)
	}
	cfg.TenantID = tenantID
	cfg.Version++
	cfg.UpdatedAt = time.Now().UTC()
	s.vmwareConfigs[tenantID] = cfg
	copied := cfg
	return &copied, nil
}

// MarkVMwareConfigVerified implements Store.
func (s *MemoryStore) MarkVMwareConfigVerified(ctx context.Context, verifiedAt time.Time) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.vmwareConfigs[tenantID]
	if !ok {
		return apperrors.NotFound(apperrors.CodeVMwareConfigMissing, "vmware configuration not found")
	}
	cfg.VerifiedAt = &verifiedAt
	s.vmwareConfigs[tenantID] = cfg
	return nil
}

// ListDeadLetters implements Store.
func (s *MemoryStore) ListDeadLetters(ctx context.Context, limit int) ([]DeadLetterRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []DeadLetterRow
	for i := len(s.deadLetters) - 1; i >= 0 && len(out) < limit; i-- {
		if s.deadLetters[i].TenantID == tenantID {
			out = append(out, s.deadLetters[i])
		}
	}
	return out, nil
}

// ListNotifications implements Store.
func (s *MemoryStore) ListNotifications(ctx context.Context, recipient domain.UserID, limit int) ([]NotificationRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []NotificationRow
	for i := len(s.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		row := s.notifications[i]
		if row.TenantID == tenantID && row.RecipientID == recipient {
			out = append(out, row)
		}
	}
	return out, nil
}

// CountUnreadNotifications implements Store.
func (s *MemoryStore) CountUnreadNotifications(ctx context.Context, recipient domain.UserID) (int, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, row := range s.notifications {
		if row.TenantID == tenantID && row.RecipientID == recipient && !row.Read {
			count++
		}
	}
	return count, nil
}

// MarkNotificationRead implements Store.
func (s *MemoryStore) MarkNotificationRead(ctx context.Context, recipient domain.UserID, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, row := range s.notifications {
		if row.ID != id || row.TenantID != tenantID || row.RecipientID != recipient {
			continue
		}
		if !row.Read {
			now := time.Now().UTC()
			s.notifications[i].Read = true
			s.notifications[i].ReadAt = &now
		}
		return nil
	}
	return apperrors.NotFound("NOTIFICATION_NOT_FOUND", "notification not found")
}

// MarkAllNotificationsRead implements Store.
func (s *MemoryStore) MarkAllNotificationsRead(ctx context.Context, recipient domain.UserID) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for i, row := range s.notifications {
		if row.TenantID == tenantID && row.RecipientID == recipient && !row.Read {
			s.notifications[i].Read = true
			s.notifications[i].ReadAt = &now
		}
	}
	return nil
}

// SystemListStalledProvisioning implements Store.
func (s *MemoryStore) SystemListStalledProvisioning(_ context.Context, before time.Time) ([]RequestRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []RequestRow
	for _, row := range s.requests {
		if row.Status == domain.RequestProvisioning && row.UpdatedAt.Before(before) {
			out = append(out, row)
		}
	}
	return out, nil
}

// SystemListReadyRequests implements Store.
func (s *MemoryStore) SystemListReadyRequests(_ context.Context) ([]RequestRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []RequestRow
	for _, row := range s.requests {
		if row.Status == domain.RequestReady && !row.VMID.IsZero() {
			out = append(out, row)
		}
	}
	return out, nil
}
