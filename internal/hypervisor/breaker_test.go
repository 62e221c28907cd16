package hypervisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func brokenSettings() BreakerSettings {
	return BreakerSettings{Name: "test", ConsecutiveFailures: 3, OpenTimeout: time.Minute}
}

func TestBreakerPassesThroughSuccess(t *testing.T) {
	t.Parallel()

	wrapped := WithBreaker(NewMock(), brokenSettings())

	result, err := wrapped.TestConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock-dc", result.Datacenter)

	created, err := wrapped.CreateVM(context.Background(), CreateVMSpec{Name: "phoe-web"}, func(domain.Stage) {})
	require.NoError(t, err)
	assert.NotEmpty(t, created.VmwareVMID)

	info, err := wrapped.VMInfo(context.Background(), created.VmwareVMID)
	require.NoError(t, err)
	assert.Equal(t, "poweredOn", info.PowerState)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	mock := NewMock()
	mock.FailAtStage = domain.StageCloning
	wrapped := WithBreaker(mock, brokenSettings())

	noStage := func(domain.Stage) {}
	for i := 0; i < 3; i++ {
		_, err := wrapped.CreateVM(context.Background(), CreateVMSpec{Name: "phoe-web"}, noStage)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeHypervisorAPI, apperrors.CodeOf(err))
	}

	// Circuit is open now: the inner provisioner is no longer reached, even
	// for calls that would succeed.
	_, err := wrapped.TestConnection(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindHypervisor))
	assert.Contains(t, err.Error(), "circuit open")
}

func TestBreakerIgnoresDomainRejections(t *testing.T) {
	t.Parallel()

	wrapped := WithBreaker(NewMock(), BreakerSettings{Name: "test", ConsecutiveFailures: 2, OpenTimeout: time.Minute})

	// Missing inventory is the tenant's problem; it must not trip the
	// endpoint breaker.
	for i := 0; i < 5; i++ {
		_, err := wrapped.VMInfo(context.Background(), "vm-does-not-exist")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeHypervisorNotFound, apperrors.CodeOf(err))
	}

	_, err := wrapped.TestConnection(context.Background())
	assert.NoError(t, err)
}
