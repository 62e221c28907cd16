package command

import (
	"context"
	"fmt"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
)

// DefaultMaxPendingPerRequester bounds how many undecided requests one user
// may hold open at a time.
const DefaultMaxPendingPerRequester = 5

// MaxPendingQuota limits concurrent pending requests per requester. The
// count comes from the projection, so a burst racing the projector can
// briefly overshoot; the cap is a guard rail, not an invariant.
type MaxPendingQuota struct {
	store      readmodel.Store
	maxPending int
}

// NewMaxPendingQuota creates the policy. max <= 0 selects the default.
func NewMaxPendingQuota(store readmodel.Store, max int) *MaxPendingQuota {
	if max <= 0 {
		max = DefaultMaxPendingPerRequester
	}
	return &MaxPendingQuota{store: store, maxPending: max}
}

var _ QuotaPolicy = (*MaxPendingQuota)(nil)

// CheckCreate implements QuotaPolicy.
func (q *MaxPendingQuota) CheckCreate(ctx context.Context, requester domain.UserID) error {
	page, err := q.store.ListByRequester(ctx, requester, 0, 100)
	if err != nil {
		return err
	}
	pending := 0
	for _, row := range page.Items {
		if row.Status == domain.RequestPending {
			pending++
		}
	}
	if pending >= q.maxPending {
		return apperrors.QuotaExceeded(
			fmt.Sprintf("at most %d pending requests per user (currently %d)", q.maxPending, pending))
	}
	return nil
}
