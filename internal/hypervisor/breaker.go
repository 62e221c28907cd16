package hypervisor

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
)

// BreakerSettings tunes the per-endpoint circuit breaker.
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// DefaultBreakerSettings trips after 5 consecutive failures and probes again
// after 30 seconds.
func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:                name,
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// breakerProvisioner decorates a Provisioner with a circuit breaker. One
// breaker guards the whole endpoint: a vCenter that fails clones will fail
// status reads too, and shedding load gives it room to recover. Domain
// rejections (bad names, missing inventory) do not count as failures.
type breakerProvisioner struct {
	inner Provisioner
	cb    *gobreaker.CircuitBreaker
}

// WithBreaker wraps a Provisioner in a circuit breaker.
func WithBreaker(inner Provisioner, settings BreakerSettings) Provisioner {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Inventory misconfiguration is the tenant's problem, not the
			// endpoint's health.
			return apperrors.IsKind(err, apperrors.KindValidation) ||
				(apperrors.IsKind(err, apperrors.KindHypervisor) &&
					apperrors.CodeOf(err) == apperrors.CodeHypervisorNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("hypervisor breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &breakerProvisioner{inner: inner, cb: cb}
}

func (b *breakerProvisioner) CreateVM(ctx context.Context, spec CreateVMSpec, onStage StageFunc) (*CreatedVM, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.CreateVM(ctx, spec, onStage)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return res.(*CreatedVM), nil
}

func (b *breakerProvisioner) VMInfo(ctx context.Context, vmwareVMID string) (*VMInfo, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.VMInfo(ctx, vmwareVMID)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return res.(*VMInfo), nil
}

func (b *breakerProvisioner) TestConnection(ctx context.Context) (*ConnectionResult, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.TestConnection(ctx)
	})
	if err != nil {
		return nil, mapBreakerErr(err)
	}
	return res.(*ConnectionResult), nil
}

func mapBreakerErr(err error) error {
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI,
			"vCenter endpoint temporarily unavailable (circuit open)")
	}
	return err
}
