package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusNotFound},
		{KindNotFound, http.StatusNotFound},
		{KindTenantMismatch, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindConcurrencyConflict, http.StatusConflict},
		{KindQuotaExceeded, http.StatusConflict},
		{KindInvalidState, http.StatusUnprocessableEntity},
		{KindHypervisor, http.StatusBadGateway},
		{KindCancelled, 499},
		{KindPersistence, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			err := New(tc.kind, "CODE", "message")
			assert.Equal(t, tc.want, err.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("app error", func(t *testing.T) {
		assert.Equal(t, KindNotFound, KindOf(NotFound(CodeRequestNotFound, "request not found")))
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", QuotaExceeded("too many pending requests"))
		assert.Equal(t, KindQuotaExceeded, KindOf(err))
		assert.True(t, IsKind(err, KindQuotaExceeded))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(fmt.Errorf("boom")))
	})

	t.Run("cancellation wins over wrapping", func(t *testing.T) {
		err := Wrap(context.Canceled, KindPersistence, CodePersistenceFailure, "append failed")
		assert.Equal(t, KindCancelled, KindOf(err))
		assert.True(t, IsCancelled(err))
	})

	t.Run("deadline exceeded is cancelled", func(t *testing.T) {
		assert.True(t, IsCancelled(fmt.Errorf("call: %w", context.DeadlineExceeded)))
	})

	t.Run("nil is not cancelled", func(t *testing.T) {
		assert.False(t, IsCancelled(nil))
	})
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CodeSelfApproval, CodeOf(Forbidden(CodeSelfApproval, "no self approval")))
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain")))
}

func TestConcurrencyConflictParams(t *testing.T) {
	t.Parallel()

	err := ConcurrencyConflict(3, 5)
	require.Equal(t, KindConcurrencyConflict, err.Kind)
	assert.Equal(t, int64(3), err.Params["expected"])
	assert.Equal(t, int64(5), err.Params["actual"])
}

func TestValidationCarriesFieldErrors(t *testing.T) {
	t.Parallel()

	err := Validation("vm_name", "vm name is required")
	require.Len(t, err.FieldErrors, 1)
	assert.Equal(t, "vm_name", err.FieldErrors[0].Field)
	assert.Equal(t, CodeValidationFailed, err.Code)
}

func TestErrorStringIncludesWrapped(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("connection refused")
	err := Persistence(inner, "append failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, inner)
}
