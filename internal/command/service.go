// Package command implements the write-side use cases: submit, approve,
// reject and cancel a VM request. Authorization and quota are enforced here;
// state transition rules live on the aggregates.
package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/aggregate"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/tenant"
)

// QuotaPolicy gates request creation.
type QuotaPolicy interface {
	// CheckCreate returns QuotaExceeded when the requester may not open
	// another request.
	CheckCreate(ctx context.Context, requester domain.UserID) error
}

// Service is the command handler set for the VmRequest aggregate.
type Service struct {
	requests *aggregate.Runtime[domain.VmRequest]
	quota    QuotaPolicy
	notify   func()
}

// NewService creates the command service. notify, when non-nil, is invoked
// after every successful append so projections catch up promptly.
func NewService(events eventstore.Store, quota QuotaPolicy, notify func()) *Service {
	return &Service{
		requests: aggregate.NewRuntime(events, domain.AggregateVmRequest, domain.EmptyVmRequest),
		quota:    quota,
		notify:   notify,
	}
}

// CreateInput carries the user-supplied request fields.
type CreateInput struct {
	ProjectID     domain.ProjectID
	ProjectName   string
	VMName        string
	Size          string
	Justification string
}

// Create opens a new request for the authenticated user.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.RequestID, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return "", err
	}
	if s.quota != nil {
		if err := s.quota.CheckCreate(ctx, identity.UserID); err != nil {
			return "", err
		}
	}

	id := domain.NewRequestID()
	cmd := domain.CreateVmRequest{
		ProjectID:      in.ProjectID,
		ProjectName:    in.ProjectName,
		RequesterID:    identity.UserID,
		RequesterName:  identity.Name,
		RequesterEmail: identity.Email,
		VMName:         in.VMName,
		Size:           in.Size,
		Justification:  in.Justification,
	}

	_, _, err = s.requests.Execute(ctx, id.String(), s.meta(identity), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCreate(cmd)
	})
	if err != nil {
		return "", err
	}

	logger.Info("vm request created",
		zap.String("request_id", id.String()),
		zap.String("tenant_id", identity.TenantID.String()),
		zap.String("requester_id", identity.UserID.String()),
		zap.String("vm_name", in.VMName),
		zap.String("size", in.Size),
	)
	s.wake()
	return id, nil
}

// Approve approves a pending request. Admin only; self-approval is rejected
// by the aggregate.
func (s *Service) Approve(ctx context.Context, id domain.RequestID) error {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}
	_, _, err = s.requests.Execute(ctx, id.String(), s.meta(identity), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideApprove(identity.UserID, identity.Name)
	})
	if err != nil {
		return err
	}
	logger.Info("vm request approved",
		zap.String("request_id", id.String()),
		zap.String("approver_id", identity.UserID.String()),
	)
	s.wake()
	return nil
}

// Reject rejects a pending request with a reason. Admin only.
func (s *Service) Reject(ctx context.Context, id domain.RequestID, reason string) error {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return err
	}
	_, _, err = s.requests.Execute(ctx, id.String(), s.meta(identity), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideReject(identity.UserID, identity.Name, reason)
	})
	if err != nil {
		return err
	}
	logger.Info("vm request rejected",
		zap.String("request_id", id.String()),
		zap.String("rejecter_id", identity.UserID.String()),
	)
	s.wake()
	return nil
}

// Cancel cancels the caller's own pending request.
func (s *Service) Cancel(ctx context.Context, id domain.RequestID) error {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	_, _, err = s.requests.Execute(ctx, id.String(), s.meta(identity), func(state domain.VmRequest) ([]domain.Payload, error) {
		return state.DecideCancel(identity.UserID)
	})
	if err != nil {
		return err
	}
	logger.Info("vm request cancelled",
		zap.String("request_id", id.String()),
		zap.String("requester_id", identity.UserID.String()),
	)
	s.wake()
	return nil
}

func (s *Service) requireAdmin(ctx context.Context) (tenant.Identity, error) {
	return requireAdminIdentity(ctx)
}

func (s *Service) meta(identity tenant.Identity) domain.Metadata {
	return domain.Metadata{
		TenantID:      identity.TenantID,
		ActorID:       identity.UserID,
		CorrelationID: domain.NewCorrelationID(),
		OccurredAt:    time.Now().UTC(),
	}
}

func (s *Service) wake() {
	if s.notify != nil {
		s.notify()
	}
}
