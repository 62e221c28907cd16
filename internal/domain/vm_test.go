package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func provisioningVM(t *testing.T) VM {
	t.Helper()
	payloads, err := EmptyVM().DecideStartProvisioning("req-1", "PHOE-web-server", SizeM)
	require.NoError(t, err)

	e := NewEvent(AggregateVm, "vm-agg-1", payloads[0], Metadata{TenantID: "tenant-1"})
	e.Version = 1
	return EmptyVM().Apply(e)
}

func provisionedVM(t *testing.T) VM {
	t.Helper()
	state := provisioningVM(t)
	payloads, err := state.DecideCompleteProvisioning("vm-0001", "10.0.0.5", "phoe-web-server", "poweredOn", "Ubuntu Linux (64-bit)", "")
	require.NoError(t, err)

	e := NewEvent(AggregateVm, "vm-agg-1", payloads[0], Metadata{TenantID: "tenant-1"})
	e.Version = state.Version + 1
	return state.Apply(e)
}

func TestDecideStartProvisioning(t *testing.T) {
	t.Parallel()

	t.Run("creates the aggregate", func(t *testing.T) {
		state := provisioningVM(t)
		assert.Equal(t, VMProvisioning, state.Status)
		assert.Equal(t, RequestID("req-1"), state.RequestID)
		assert.Equal(t, "PHOE-web-server", state.Name)
		assert.Equal(t, SizeM, state.Size)
	})

	t.Run("double start is invalid", func(t *testing.T) {
		_, err := provisioningVM(t).DecideStartProvisioning("req-1", "name", SizeM)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("missing request id", func(t *testing.T) {
		_, err := EmptyVM().DecideStartProvisioning("", "name", SizeM)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unknown size", func(t *testing.T) {
		_, err := EmptyVM().DecideStartProvisioning("req-1", "name", VMSize("XXL"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestDecideProgress(t *testing.T) {
	t.Parallel()

	t.Run("records stage while provisioning", func(t *testing.T) {
		payloads, err := provisioningVM(t).DecideProgress(StageCloning)
		require.NoError(t, err)
		progress := payloads[0].(VmProvisioningProgressUpdated)
		assert.Equal(t, StageCloning, progress.Stage)
	})

	t.Run("rejected once provisioned", func(t *testing.T) {
		_, err := provisionedVM(t).DecideProgress(StageConfiguring)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("rejected on missing vm", func(t *testing.T) {
		_, err := EmptyVM().DecideProgress(StageCloning)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestDecideCompleteProvisioning(t *testing.T) {
	t.Parallel()

	t.Run("completion records hypervisor facts", func(t *testing.T) {
		state := provisionedVM(t)
		assert.Equal(t, VMProvisioned, state.Status)
		assert.Equal(t, "vm-0001", state.VmwareVMID)
		assert.Equal(t, "10.0.0.5", state.IPAddress)
		assert.Equal(t, StageReady, state.Stage)
	})

	t.Run("requires a vmware id", func(t *testing.T) {
		_, err := provisioningVM(t).DecideCompleteProvisioning("", "ip", "host", "poweredOn", "os", "")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("double completion is invalid", func(t *testing.T) {
		_, err := provisionedVM(t).DecideCompleteProvisioning("vm-0002", "ip", "host", "poweredOn", "os", "")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestDecideFailProvisioning(t *testing.T) {
	t.Parallel()

	t.Run("fails with reason", func(t *testing.T) {
		payloads, err := provisioningVM(t).DecideFailProvisioning("clone timed out")
		require.NoError(t, err)
		failed := payloads[0].(VmProvisioningFailed)
		assert.Equal(t, "clone timed out", failed.Reason)
	})

	t.Run("empty reason gets a default", func(t *testing.T) {
		payloads, err := provisioningVM(t).DecideFailProvisioning("")
		require.NoError(t, err)
		failed := payloads[0].(VmProvisioningFailed)
		assert.Equal(t, "provisioning failed", failed.Reason)
	})

	t.Run("cannot fail a provisioned vm", func(t *testing.T) {
		_, err := provisionedVM(t).DecideFailProvisioning("late failure")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestDecideSyncStatus(t *testing.T) {
	t.Parallel()

	observedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sync updates runtime facts but keeps prior values on blanks", func(t *testing.T) {
		state := provisionedVM(t)
		payloads, err := state.DecideSyncStatus("poweredOff", "", "", "", observedAt)
		require.NoError(t, err)

		e := NewEvent(AggregateVm, "vm-agg-1", payloads[0], Metadata{TenantID: "tenant-1"})
		e.Version = state.Version + 1
		synced := state.Apply(e)

		assert.Equal(t, "poweredOff", synced.PowerState)
		assert.Equal(t, "10.0.0.5", synced.IPAddress)
		assert.Equal(t, "phoe-web-server", synced.Hostname)
		assert.Equal(t, observedAt, synced.LastSyncedAt)
	})

	t.Run("requires a power state", func(t *testing.T) {
		_, err := provisionedVM(t).DecideSyncStatus("", "ip", "host", "os", observedAt)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("only provisioned vms sync", func(t *testing.T) {
		_, err := provisioningVM(t).DecideSyncStatus("poweredOn", "", "", "", observedAt)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestEstimatedRemainingSeconds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		stage Stage
		want  int
	}{
		{StageCloning, 135},
		{StageConfiguring, 70},
		{StagePoweringOn, 25},
		{StageWaitingForNetwork, 0},
		{StageReady, 0},
		{Stage("UNKNOWN"), 215},
	}
	for _, tc := range cases {
		t.Run(string(tc.stage), func(t *testing.T) {
			assert.Equal(t, tc.want, EstimatedRemainingSeconds(tc.stage))
		})
	}
}
