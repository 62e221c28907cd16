package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewDefaultCodec()
	payloads := []Payload{
		VmRequestCreated{
			ProjectID: "proj-1", ProjectName: "Phoenix", RequesterID: "user-1",
			RequesterName: "Riley", RequesterEmail: "riley@example.com",
			VMName: "web-server", Size: SizeM, Justification: "load testing for the release",
		},
		VmRequestApproved{ApprovedBy: "user-2", ApproverName: "Avery"},
		VmRequestRejected{RejectedBy: "user-2", RejecterName: "Avery", Reason: "capacity exhausted"},
		VmRequestCancelled{CancelledBy: "user-1"},
		VmRequestProvisioningStarted{VMID: "vm-agg-1"},
		VmRequestReady{VmwareVMID: "vm-0001", IPAddress: "10.0.0.5", Hostname: "phoe-web-server"},
		VmRequestFailed{Reason: "clone timed out"},
		VmProvisioningStarted{RequestID: "req-1", Name: "PHOE-web-server", Size: SizeL},
		VmProvisioningProgressUpdated{Stage: StagePoweringOn},
		VmProvisioned{VmwareVMID: "vm-0001", IPAddress: "10.0.0.5", Hostname: "h", PowerState: "poweredOn", GuestOS: "Ubuntu", Warning: "slow clone"},
		VmProvisioningFailed{Reason: "boom"},
		VmStatusSynced{PowerState: "poweredOff"},
	}

	for _, p := range payloads {
		t.Run(string(p.EventType()), func(t *testing.T) {
			data, err := codec.Encode(p)
			require.NoError(t, err)

			decoded, err := codec.Decode(p.EventType(), data)
			require.NoError(t, err)
			assert.Equal(t, p, decoded)
		})
	}
}

func TestCodecUnknownType(t *testing.T) {
	t.Parallel()

	codec := NewDefaultCodec()
	_, err := codec.Decode(EventType("SOMETHING_ELSE"), []byte(`{}`))
	assert.Error(t, err)
	assert.False(t, codec.Known("SOMETHING_ELSE"))
}

func TestCodecRegistrationGuards(t *testing.T) {
	t.Parallel()

	t.Run("duplicate registration panics", func(t *testing.T) {
		codec := NewCodec()
		RegisterPayload[VmRequestApproved](codec)
		assert.Panics(t, func() { RegisterPayload[VmRequestApproved](codec) })
	})

	t.Run("registration after seal panics", func(t *testing.T) {
		codec := NewCodec().Seal()
		assert.Panics(t, func() { RegisterPayload[VmRequestApproved](codec) })
	})
}

func TestDefaultCodecCoversEveryEventType(t *testing.T) {
	t.Parallel()

	codec := NewDefaultCodec()
	all := []EventType{
		EventVmRequestCreated, EventVmRequestApproved, EventVmRequestRejected,
		EventVmRequestCancelled, EventVmRequestProvisioningStarted,
		EventVmRequestReady, EventVmRequestFailed,
		EventVmProvisioningStarted, EventVmProvisioningProgressUpdated,
		EventVmProvisioned, EventVmProvisioningFailed, EventVmStatusSynced,
	}
	for _, et := range all {
		assert.True(t, codec.Known(et), string(et))
	}
	assert.Len(t, codec.Types(), len(all))
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"S", "M", "L", "XL"} {
		t.Run(raw, func(t *testing.T) {
			size, err := ParseSize(raw)
			require.NoError(t, err)
			assert.True(t, size.Valid())
		})
	}

	for _, raw := range []string{"XXL", "m", ""} {
		_, err := ParseSize(raw)
		assert.Error(t, err, raw)
	}

	spec := SizeM.Spec()
	assert.Equal(t, 4, spec.CPUCores)
	assert.Equal(t, 8, spec.MemoryGB)
	assert.Equal(t, 100, spec.DiskGB)
}
