// Package tenant carries the current tenant identity across every call.
//
// The scope lives on context.Context, so it survives any suspension point
// that propagates the context. Async handoffs that detach from the request
// context (queue workers, sweeps) must re-establish the scope explicitly via
// With; every boundary asserts it via FromContext.
package tenant

import (
	"context"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

type tenantKey struct{}

type identityKey struct{}

// AdminRole is the role string granting admin commands.
const AdminRole = "admin"

// Identity is the verified caller identity supplied by the identity port.
// The core never verifies tokens; it consumes claims.
type Identity struct {
	UserID   domain.UserID
	TenantID domain.TenantID
	Name     string
	Email    string
	Roles    []string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	for _, r := range i.Roles {
		if r == AdminRole {
			return true
		}
	}
	return false
}

// With returns a context scoped to the given tenant. Used by async
// continuations (workers, sweeps) to re-establish the scope they inherited
// by value.
func With(ctx context.Context, id domain.TenantID) context.Context {
	return context.WithValue(ctx, tenantKey{}, id)
}

// WithIdentity scopes the context to a full caller identity, including its
// tenant.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	ctx = context.WithValue(ctx, identityKey{}, ident)
	return With(ctx, ident.TenantID)
}

// FromContext returns the current tenant. Every command handler, query
// handler, projection handler and orchestrator callback must run inside a
// tenant scope; a missing scope is a caller bug surfaced as an error, never
// a silent default.
func FromContext(ctx context.Context) (domain.TenantID, error) {
	id, ok := ctx.Value(tenantKey{}).(domain.TenantID)
	if !ok || id.IsZero() {
		return "", apperrors.New(apperrors.KindUnauthorized, apperrors.CodeTenantMissing,
			"no tenant in scope")
	}
	return id, nil
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	ident, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || ident.TenantID.IsZero() {
		return Identity{}, apperrors.New(apperrors.KindUnauthorized, apperrors.CodeAuthFailed,
			"no identity in scope")
	}
	return ident, nil
}
