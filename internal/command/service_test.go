package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/aggregate"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

var (
	memberIdentity = tenant.Identity{
		UserID: "user-1", TenantID: "tenant-1",
		Name: "Riley Requester", Email: "riley@example.com", Roles: []string{"member"},
	}
	adminIdentity = tenant.Identity{
		UserID: "user-2", TenantID: "tenant-1",
		Name: "Avery Admin", Email: "avery@example.com", Roles: []string{"admin"},
	}
)

func identityCtx(ident tenant.Identity) context.Context {
	return tenant.WithIdentity(context.Background(), ident)
}

func validInput() CreateInput {
	return CreateInput{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		VMName: "web-server", Size: "M", Justification: "load testing for the release",
	}
}

type commandFixture struct {
	events  *eventstore.MemoryStore
	service *Service
	woken   int
}

func newCommandFixture(quota QuotaPolicy) *commandFixture {
	f := &commandFixture{events: eventstore.NewMemoryStore(domain.NewDefaultCodec())}
	f.service = NewService(f.events, quota, func() { f.woken++ })
	return f
}

func (f *commandFixture) loadRequest(t *testing.T, id domain.RequestID) domain.VmRequest {
	t.Helper()
	runtime := aggregate.NewRuntime(f.events, domain.AggregateVmRequest, domain.EmptyVmRequest)
	state, _, err := runtime.Load(tenant.With(context.Background(), "tenant-1"), id.String())
	require.NoError(t, err)
	return state
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a pending request for the caller", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)
		require.False(t, id.IsZero())

		state := f.loadRequest(t, id)
		assert.Equal(t, domain.RequestPending, state.Status)
		assert.Equal(t, memberIdentity.UserID, state.RequesterID)
		assert.Equal(t, memberIdentity.Name, state.RequesterName)
		assert.Equal(t, 1, f.woken)
	})

	t.Run("validation errors surface", func(t *testing.T) {
		f := newCommandFixture(nil)
		in := validInput()
		in.VMName = "Bad_Name"
		_, err := f.service.Create(identityCtx(memberIdentity), in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		assert.Equal(t, 0, f.woken)
	})

	t.Run("requires an identity", func(t *testing.T) {
		f := newCommandFixture(nil)
		_, err := f.service.Create(context.Background(), validInput())
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})

	t.Run("quota refusal blocks creation", func(t *testing.T) {
		f := newCommandFixture(quotaFunc(func(context.Context, domain.UserID) error {
			return apperrors.QuotaExceeded("too many pending requests")
		}))
		_, err := f.service.Create(identityCtx(memberIdentity), validInput())
		assert.True(t, apperrors.IsKind(err, apperrors.KindQuotaExceeded))
	})
}

type quotaFunc func(ctx context.Context, requester domain.UserID) error

func (f quotaFunc) CheckCreate(ctx context.Context, requester domain.UserID) error {
	return f(ctx, requester)
}

func TestApprove(t *testing.T) {
	t.Parallel()

	t.Run("admin approves another user's request", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)

		require.NoError(t, f.service.Approve(identityCtx(adminIdentity), id))
		assert.Equal(t, domain.RequestApproved, f.loadRequest(t, id).Status)
	})

	t.Run("non admin is refused", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)

		err = f.service.Approve(identityCtx(memberIdentity), id)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.Equal(t, apperrors.CodeAdminRequired, apperrors.CodeOf(err))
	})

	t.Run("admin cannot approve their own request", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(adminIdentity), validInput())
		require.NoError(t, err)

		err = f.service.Approve(identityCtx(adminIdentity), id)
		assert.Equal(t, apperrors.CodeSelfApproval, apperrors.CodeOf(err))
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	f := newCommandFixture(nil)
	id, err := f.service.Create(identityCtx(memberIdentity), validInput())
	require.NoError(t, err)

	require.NoError(t, f.service.Reject(identityCtx(adminIdentity), id, "capacity exhausted this quarter"))
	state := f.loadRequest(t, id)
	assert.Equal(t, domain.RequestRejected, state.Status)
	assert.Equal(t, "capacity exhausted this quarter", state.RejectionReason)
}

func TestCancel(t *testing.T) {
	t.Parallel()

	t.Run("requester cancels their own request", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)

		require.NoError(t, f.service.Cancel(identityCtx(memberIdentity), id))
		assert.Equal(t, domain.RequestCancelled, f.loadRequest(t, id).Status)
	})

	t.Run("someone else cannot cancel it", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)

		err = f.service.Cancel(identityCtx(adminIdentity), id)
		assert.Equal(t, apperrors.CodeNotRequester, apperrors.CodeOf(err))
	})

	t.Run("cross-tenant request looks absent", func(t *testing.T) {
		f := newCommandFixture(nil)
		id, err := f.service.Create(identityCtx(memberIdentity), validInput())
		require.NoError(t, err)

		foreign := tenant.Identity{UserID: "user-1", TenantID: "tenant-2", Name: "Riley"}
		err = f.service.Cancel(identityCtx(foreign), id)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
