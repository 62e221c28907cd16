package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func validCreateCmd() CreateVmRequest {
	return CreateVmRequest{
		ProjectID:      "proj-1",
		ProjectName:    "Phoenix",
		RequesterID:    "user-1",
		RequesterName:  "Riley Requester",
		RequesterEmail: "riley@example.com",
		VMName:         "web-server",
		Size:           "M",
		Justification:  "load testing for the release",
	}
}

// applyAll folds payloads into a fresh request the way the store would:
// consecutive versions, shared metadata.
func applyAll(t *testing.T, payloads ...Payload) VmRequest {
	t.Helper()
	state := EmptyVmRequest()
	meta := Metadata{TenantID: "tenant-1", ActorID: "user-1", OccurredAt: time.Now().UTC()}
	for i, p := range payloads {
		e := NewEvent(AggregateVmRequest, "req-1", p, meta)
		e.Version = int64(i + 1)
		state = state.Apply(e)
	}
	return state
}

func pendingRequest(t *testing.T) VmRequest {
	t.Helper()
	payloads, err := EmptyVmRequest().DecideCreate(validCreateCmd())
	require.NoError(t, err)
	return applyAll(t, payloads...)
}

func TestDecideCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid command emits created", func(t *testing.T) {
		payloads, err := EmptyVmRequest().DecideCreate(validCreateCmd())
		require.NoError(t, err)
		require.Len(t, payloads, 1)

		created, ok := payloads[0].(VmRequestCreated)
		require.True(t, ok)
		assert.Equal(t, "web-server", created.VMName)
		assert.Equal(t, SizeM, created.Size)
		assert.Equal(t, UserID("user-1"), created.RequesterID)
	})

	t.Run("already created", func(t *testing.T) {
		_, err := pendingRequest(t).DecideCreate(validCreateCmd())
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("unknown size", func(t *testing.T) {
		cmd := validCreateCmd()
		cmd.Size = "XXL"
		_, err := EmptyVmRequest().DecideCreate(cmd)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("justification too short after trimming", func(t *testing.T) {
		cmd := validCreateCmd()
		cmd.Justification = "   short   "
		_, err := EmptyVmRequest().DecideCreate(cmd)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("missing requester", func(t *testing.T) {
		cmd := validCreateCmd()
		cmd.RequesterID = ""
		_, err := EmptyVmRequest().DecideCreate(cmd)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestValidateVMName(t *testing.T) {
	t.Parallel()

	valid := []string{"abc", "web-server", "a1b", "vm-01", "x0-9z"}
	for _, name := range valid {
		t.Run("valid/"+name, func(t *testing.T) {
			assert.NoError(t, ValidateVMName(name))
		})
	}

	invalid := map[string]string{
		"too short":           "ab",
		"too long":            "a123456789012345678901234567890123456789012345678901234567890123",
		"uppercase":           "Web-Server",
		"leading hyphen":      "-abc",
		"trailing hyphen":     "abc-",
		"consecutive hyphens": "web--server",
		"underscore":          "web_server",
		"space":               "web server",
	}
	for label, name := range invalid {
		t.Run("invalid/"+label, func(t *testing.T) {
			err := ValidateVMName(name)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestDecideApprove(t *testing.T) {
	t.Parallel()

	t.Run("pending is approvable", func(t *testing.T) {
		payloads, err := pendingRequest(t).DecideApprove("user-2", "Avery Admin")
		require.NoError(t, err)
		require.Len(t, payloads, 1)

		approved := payloads[0].(VmRequestApproved)
		assert.Equal(t, UserID("user-2"), approved.ApprovedBy)
		assert.Equal(t, "Avery Admin", approved.ApproverName)
	})

	t.Run("self approval forbidden", func(t *testing.T) {
		_, err := pendingRequest(t).DecideApprove("user-1", "Riley Requester")
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.Equal(t, apperrors.CodeSelfApproval, apperrors.CodeOf(err))
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := EmptyVmRequest().DecideApprove("user-2", "Avery Admin")
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("non pending status", func(t *testing.T) {
		state := pendingRequest(t)
		payloads, err := state.DecideApprove("user-2", "Avery Admin")
		require.NoError(t, err)
		e := NewEvent(AggregateVmRequest, "req-1", payloads[0], Metadata{TenantID: "tenant-1"})
		e.Version = state.Version + 1
		approved := state.Apply(e)

		_, err = approved.DecideApprove("user-3", "Other Admin")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestDecideReject(t *testing.T) {
	t.Parallel()

	t.Run("valid rejection trims the reason", func(t *testing.T) {
		payloads, err := pendingRequest(t).DecideReject("user-2", "Avery Admin", "  capacity is exhausted this quarter  ")
		require.NoError(t, err)

		rejected := payloads[0].(VmRequestRejected)
		assert.Equal(t, "capacity is exhausted this quarter", rejected.Reason)
	})

	t.Run("reason too short", func(t *testing.T) {
		_, err := pendingRequest(t).DecideReject("user-2", "Avery Admin", "no")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("self rejection forbidden", func(t *testing.T) {
		_, err := pendingRequest(t).DecideReject("user-1", "Riley Requester", "changed my mind about this")
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}

func TestDecideCancel(t *testing.T) {
	t.Parallel()

	t.Run("requester can cancel pending", func(t *testing.T) {
		payloads, err := pendingRequest(t).DecideCancel("user-1")
		require.NoError(t, err)
		cancelled := payloads[0].(VmRequestCancelled)
		assert.Equal(t, UserID("user-1"), cancelled.CancelledBy)
	})

	t.Run("non requester forbidden", func(t *testing.T) {
		_, err := pendingRequest(t).DecideCancel("user-2")
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.Equal(t, apperrors.CodeNotRequester, apperrors.CodeOf(err))
	})
}

func TestProvisioningTransitions(t *testing.T) {
	t.Parallel()

	approve := func(t *testing.T) VmRequest {
		state := pendingRequest(t)
		payloads, err := state.DecideApprove("user-2", "Avery Admin")
		require.NoError(t, err)
		e := NewEvent(AggregateVmRequest, "req-1", payloads[0], Metadata{TenantID: "tenant-1"})
		e.Version = state.Version + 1
		return state.Apply(e)
	}
	startProvisioning := func(t *testing.T) VmRequest {
		state := approve(t)
		payloads, err := state.DecideMarkProvisioning("vm-agg-1")
		require.NoError(t, err)
		e := NewEvent(AggregateVmRequest, "req-1", payloads[0], Metadata{TenantID: "tenant-1"})
		e.Version = state.Version + 1
		return state.Apply(e)
	}

	t.Run("approved starts provisioning and records vm id", func(t *testing.T) {
		state := startProvisioning(t)
		assert.Equal(t, RequestProvisioning, state.Status)
		assert.Equal(t, VMID("vm-agg-1"), state.VMID)
	})

	t.Run("pending cannot start provisioning", func(t *testing.T) {
		_, err := pendingRequest(t).DecideMarkProvisioning("vm-agg-1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("mark ready requires provisioning and a vmware id", func(t *testing.T) {
		state := startProvisioning(t)
		_, err := state.DecideMarkReady("", "10.0.0.5", "host")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

		payloads, err := state.DecideMarkReady("vm-0001", "10.0.0.5", "host")
		require.NoError(t, err)
		ready := payloads[0].(VmRequestReady)
		assert.Equal(t, "vm-0001", ready.VmwareVMID)

		_, err = approve(t).DecideMarkReady("vm-0001", "10.0.0.5", "host")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("mark failed defaults an empty reason", func(t *testing.T) {
		payloads, err := startProvisioning(t).DecideMarkFailed("  ")
		require.NoError(t, err)
		failed := payloads[0].(VmRequestFailed)
		assert.Equal(t, "provisioning failed", failed.Reason)
	})

	t.Run("mark failed rejected from pending", func(t *testing.T) {
		_, err := pendingRequest(t).DecideMarkFailed("boom")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestReplayVmRequestIsDeterministic(t *testing.T) {
	t.Parallel()

	meta := Metadata{TenantID: "tenant-1", ActorID: "user-1", OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	events := []Event{
		{AggregateType: AggregateVmRequest, AggregateID: "req-1", Version: 1, Meta: meta, Payload: VmRequestCreated{
			ProjectID: "proj-1", ProjectName: "Phoenix", RequesterID: "user-1",
			VMName: "web-server", Size: SizeL, Justification: "load testing for the release",
		}},
		{AggregateType: AggregateVmRequest, AggregateID: "req-1", Version: 2, Meta: meta, Payload: VmRequestApproved{ApprovedBy: "user-2"}},
		{AggregateType: AggregateVmRequest, AggregateID: "req-1", Version: 3, Meta: meta, Payload: VmRequestProvisioningStarted{VMID: "vm-agg-1"}},
		{AggregateType: AggregateVmRequest, AggregateID: "req-1", Version: 4, Meta: meta, Payload: VmRequestReady{VmwareVMID: "vm-0007", IPAddress: "10.0.0.9", Hostname: "phoe-web-server"}},
	}

	first := ReplayVmRequest(events)
	second := ReplayVmRequest(events)
	assert.Equal(t, first, second)

	assert.Equal(t, RequestReady, first.Status)
	assert.True(t, first.Status.Terminal())
	assert.Equal(t, int64(4), first.Version)
	assert.Equal(t, "vm-0007", first.VmwareVMID)
	assert.Equal(t, VMID("vm-agg-1"), first.VMID)
}

func TestRequestStatusTerminal(t *testing.T) {
	t.Parallel()

	terminal := []RequestStatus{RequestRejected, RequestCancelled, RequestReady, RequestFailed}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), string(s))
	}
	open := []RequestStatus{RequestPending, RequestApproved, RequestProvisioning}
	for _, s := range open {
		assert.False(t, s.Terminal(), string(s))
	}
}

func TestEffectiveVMName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		project string
		vmName  string
		want    string
	}{
		{"Phoenix", "web-server", "PHOE-web-server"},
		{"Data Platform", "etl-worker", "DATA-etl-worker"},
		{"x9", "db", "X9-db"},
		{"!!!", "db", "db"},
		{"", "db", "db"},
		{"a-b-c-d-e", "db", "ABCD-db"},
	}
	for _, tc := range cases {
		t.Run(tc.project+"/"+tc.vmName, func(t *testing.T) {
			assert.Equal(t, tc.want, EffectiveVMName(tc.project, tc.vmName))
		})
	}
}
