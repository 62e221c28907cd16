// Package query implements the read-side use cases over the projections.
// Results always come from the read models, never from aggregate replay, so
// they are eventually consistent with the log.
package query

import (
	"context"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

// Service is the query handler set.
type Service struct {
	store readmodel.Store
}

// NewService creates the query service.
func NewService(store readmodel.Store) *Service {
	return &Service{store: store}
}

// RequestDetail is a request row with its timeline and, while provisioning,
// the live progress.
type RequestDetail struct {
	Request  readmodel.RequestRow
	Timeline []readmodel.TimelineRow
	Progress *readmodel.ProgressRow
}

// GetRequest returns the full detail of one request. Requests the caller may
// not see — another tenant's, or another user's unless the caller is an
// admin — are indistinguishable from absent ones.
func (s *Service) GetRequest(ctx context.Context, id domain.RequestID) (*RequestDetail, error) {
	row, err := s.visibleRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	timeline, err := s.store.ListTimeline(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &RequestDetail{Request: *row, Timeline: timeline}

	if row.Status == domain.RequestProvisioning {
		progress, err := s.store.GetProgress(ctx, id)
		if err != nil {
			return nil, err
		}
		detail.Progress = progress
	}
	return detail, nil
}

// ListMyRequests pages the caller's own requests, newest first.
func (s *Service) ListMyRequests(ctx context.Context, page, size int) (*readmodel.RequestPage, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListByRequester(ctx, identity.UserID, page, size)
}

// ListPending pages the tenant's pending requests for the approval queue.
// Admin only.
func (s *Service) ListPending(ctx context.Context, projectID *domain.ProjectID, page, size int) (*readmodel.RequestPage, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.store.ListPending(ctx, projectID, page, size)
}

// GetProgress returns the live provisioning progress for a request the
// caller can see.
func (s *Service) GetProgress(ctx context.Context, id domain.RequestID) (*readmodel.ProgressRow, error) {
	if _, err := s.visibleRequest(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetProgress(ctx, id)
}

// visibleRequest loads a request row and applies the visibility rule: owners
// see their own requests, admins see every request in the tenant, everyone
// else gets NotFound.
func (s *Service) visibleRequest(ctx context.Context, id domain.RequestID) (*readmodel.RequestRow, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || (!identity.IsAdmin() && row.RequesterID != identity.UserID) {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found")
	}
	return row, nil
}

// ListProjects returns the tenant's projects with request counts.
func (s *Service) ListProjects(ctx context.Context) ([]readmodel.ProjectSummary, error) {
	return s.store.DistinctProjects(ctx)
}

// ListInbox returns the caller's notification inbox, newest first.
func (s *Service) ListInbox(ctx context.Context, limit int) ([]readmodel.NotificationRow, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListNotifications(ctx, identity.UserID, limit)
}

// UnreadCount returns the caller's unread notification count.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return s.store.CountUnreadNotifications(ctx, identity.UserID)
}

// MarkNotificationRead marks one of the caller's notifications read.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.MarkNotificationRead(ctx, identity.UserID, id)
}

// MarkAllNotificationsRead marks the caller's whole inbox read.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.MarkAllNotificationsRead(ctx, identity.UserID)
}

// ListDeadLetters returns the tenant's poisoned projection events. Admin
// only.
func (s *Service) ListDeadLetters(ctx context.Context, limit int) ([]readmodel.DeadLetterRow, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.store.ListDeadLetters(ctx, limit)
}

func (s *Service) requireAdmin(ctx context.Context) error {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !identity.IsAdmin() {
		return apperrors.Forbidden(apperrors.CodeAdminRequired, "administrator role required")
	}
	return nil
}
