package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("scoped context returns the tenant", func(t *testing.T) {
		ctx := With(context.Background(), "tenant-1")
		id, err := FromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.TenantID("tenant-1"), id)
	})

	t.Run("missing scope is unauthorized", func(t *testing.T) {
		_, err := FromContext(context.Background())
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
		assert.Equal(t, apperrors.CodeTenantMissing, apperrors.CodeOf(err))
	})

	t.Run("empty tenant is rejected", func(t *testing.T) {
		_, err := FromContext(With(context.Background(), ""))
		assert.Error(t, err)
	})
}

func TestIdentityFromContext(t *testing.T) {
	t.Parallel()

	ident := Identity{
		UserID:   "user-1",
		TenantID: "tenant-1",
		Name:     "Riley",
		Roles:    []string{"member"},
	}

	t.Run("identity scope carries identity and tenant", func(t *testing.T) {
		ctx := WithIdentity(context.Background(), ident)

		got, err := IdentityFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, ident, got)

		tenantID, err := FromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, ident.TenantID, tenantID)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		_, err := IdentityFromContext(With(context.Background(), "tenant-1"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})
}

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, Identity{Roles: []string{"member", AdminRole}}.IsAdmin())
	assert.False(t, Identity{Roles: []string{"member"}}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
