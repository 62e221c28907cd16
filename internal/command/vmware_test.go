package command

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/secrets"
)

// fakeResolver records invalidations and resolves a static config.
type fakeResolver struct {
	invalidated []string
	cfg         hypervisor.Config
	err         error
}

func (r *fakeResolver) Invalidate(tenantID string) { r.invalidated = append(r.invalidated, tenantID) }

func (r *fakeResolver) Resolve(context.Context) (hypervisor.Config, error) { return r.cfg, r.err }

type vmwareFixture struct {
	store    *readmodel.MemoryStore
	resolver *fakeResolver
	mock     *hypervisor.Mock
	service  *VMwareConfigService
}

func newVMwareFixture(t *testing.T) *vmwareFixture {
	t.Helper()
	encryptor, err := secrets.NewEncryptor(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)

	f := &vmwareFixture{
		store:    readmodel.NewMemoryStore(),
		resolver: &fakeResolver{},
		mock:     hypervisor.NewMock(),
	}
	f.service = NewVMwareConfigService(f.store, encryptor, f.resolver,
		func(hypervisor.Config) hypervisor.Provisioner { return f.mock })
	return f
}

func validConfigInput() SaveVMwareConfigInput {
	return SaveVMwareConfigInput{
		VCenterURL: "https://vcenter.test.local",
		Username:   "administrator@vsphere.local",
		Password:   "vcenter-password",
		Datacenter: "DC1",
		Cluster:    "Cluster1",
		Datastore:  "datastore1",
		Network:    "VM Network",
		Template:   "ubuntu-22.04-template",
	}
}

func TestSaveVMwareConfig(t *testing.T) {
	t.Parallel()

	t.Run("stores an encrypted credential and invalidates the cache", func(t *testing.T) {
		f := newVMwareFixture(t)
		ctx := identityCtx(adminIdentity)

		view, err := f.service.SaveVMwareConfig(ctx, validConfigInput())
		require.NoError(t, err)
		assert.True(t, view.HasPassword)
		assert.Equal(t, int64(1), view.Version)
		assert.Nil(t, view.VerifiedAt)
		assert.Equal(t, []string{"tenant-1"}, f.resolver.invalidated)

		stored, err := f.store.GetVMwareConfig(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "vcenter-password", stored.PasswordEnc)
		assert.Contains(t, stored.PasswordEnc, "v1:")
	})

	t.Run("empty password on update keeps the stored credential", func(t *testing.T) {
		f := newVMwareFixture(t)
		ctx := identityCtx(adminIdentity)

		first, err := f.service.SaveVMwareConfig(ctx, validConfigInput())
		require.NoError(t, err)
		before, err := f.store.GetVMwareConfig(ctx)
		require.NoError(t, err)

		update := validConfigInput()
		update.Password = ""
		update.Datacenter = "DC2"
		update.Version = first.Version
		second, err := f.service.SaveVMwareConfig(ctx, update)
		require.NoError(t, err)
		assert.Equal(t, "DC2", second.Datacenter)

		after, err := f.store.GetVMwareConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.PasswordEnc, after.PasswordEnc)
	})

	t.Run("empty password on first save is rejected", func(t *testing.T) {
		f := newVMwareFixture(t)
		in := validConfigInput()
		in.Password = ""
		_, err := f.service.SaveVMwareConfig(identityCtx(adminIdentity), in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		f := newVMwareFixture(t)
		ctx := identityCtx(adminIdentity)
		_, err := f.service.SaveVMwareConfig(ctx, validConfigInput())
		require.NoError(t, err)

		stale := validConfigInput()
		stale.Version = 0
		_, err = f.service.SaveVMwareConfig(ctx, stale)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConcurrencyConflict))
	})

	t.Run("non admin is refused", func(t *testing.T) {
		f := newVMwareFixture(t)
		_, err := f.service.SaveVMwareConfig(identityCtx(memberIdentity), validConfigInput())
		assert.Equal(t, apperrors.CodeAdminRequired, apperrors.CodeOf(err))
	})

	t.Run("url scheme is validated", func(t *testing.T) {
		f := newVMwareFixture(t)
		in := validConfigInput()
		in.VCenterURL = "vcenter.test.local"
		_, err := f.service.SaveVMwareConfig(identityCtx(adminIdentity), in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestGetVMwareConfig(t *testing.T) {
	t.Parallel()

	f := newVMwareFixture(t)
	ctx := identityCtx(adminIdentity)

	view, err := f.service.GetVMwareConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = f.service.SaveVMwareConfig(ctx, validConfigInput())
	require.NoError(t, err)

	view, err = f.service.GetVMwareConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "https://vcenter.test.local", view.VCenterURL)
	assert.True(t, view.HasPassword)

	_, err = f.service.GetVMwareConfig(identityCtx(memberIdentity))
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestTestConnection(t *testing.T) {
	t.Parallel()

	t.Run("success stamps the config verified", func(t *testing.T) {
		f := newVMwareFixture(t)
		ctx := identityCtx(adminIdentity)
		_, err := f.service.SaveVMwareConfig(ctx, validConfigInput())
		require.NoError(t, err)

		result, err := f.service.TestConnection(ctx)
		require.NoError(t, err)
		assert.Equal(t, "mock-dc", result.Datacenter)

		stored, err := f.store.GetVMwareConfig(ctx)
		require.NoError(t, err)
		require.NotNil(t, stored.VerifiedAt)
		assert.WithinDuration(t, time.Now().UTC(), *stored.VerifiedAt, time.Minute)

		// Invalidate before Resolve, so the test always hits fresh state.
		assert.GreaterOrEqual(t, len(f.resolver.invalidated), 2)
	})

	t.Run("resolver failure surfaces", func(t *testing.T) {
		f := newVMwareFixture(t)
		f.resolver.err = apperrors.New(apperrors.KindInvalidState, apperrors.CodeVMwareConfigMissing, "no vmware configuration for tenant")
		_, err := f.service.TestConnection(identityCtx(adminIdentity))
		assert.Equal(t, apperrors.CodeVMwareConfigMissing, apperrors.CodeOf(err))
	})

	t.Run("non admin is refused", func(t *testing.T) {
		f := newVMwareFixture(t)
		_, err := f.service.TestConnection(identityCtx(memberIdentity))
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}
