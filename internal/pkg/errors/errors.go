// Package errors provides the structured error taxonomy for Drover.
//
// Every layer below the HTTP edge returns an *AppError carrying a Kind; the
// edge maps kinds to status codes. Cancellation is never re-kinded: callers
// that catch arbitrary errors must let context cancellation pass through.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for propagation and HTTP mapping.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindForbidden           Kind = "FORBIDDEN"
	KindNotFound            Kind = "NOT_FOUND"
	KindConflict            Kind = "CONFLICT"
	KindInvalidState        Kind = "INVALID_STATE"
	KindConcurrencyConflict Kind = "CONCURRENCY_CONFLICT"
	KindTenantMismatch      Kind = "TENANT_MISMATCH"
	KindQuotaExceeded       Kind = "QUOTA_EXCEEDED"
	KindHypervisor          Kind = "HYPERVISOR_ERROR"
	KindPersistence         Kind = "PERSISTENCE_FAILURE"
	KindNotification        Kind = "NOTIFICATION_FAILURE"
	KindCancelled           Kind = "CANCELLED"
	KindInternal            Kind = "INTERNAL"
)

// AppError is a structured application error.
type AppError struct {
	// Kind drives propagation policy and HTTP status mapping.
	Kind Kind `json:"kind"`

	// Code is a machine-readable error code (e.g. "REQUEST_NOT_FOUND").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Params carries structured context (expected/actual versions, field
	// names, current aggregate status).
	Params map[string]interface{} `json:"params,omitempty"`

	// FieldErrors carries field-level validation details.
	FieldErrors []FieldError `json:"field_errors,omitempty"`

	// Err is the wrapped underlying error.
	Err error `json:"-"`
}

// FieldError describes a field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithParams attaches structured parameters to the error.
func (e *AppError) WithParams(params map[string]interface{}) *AppError {
	if e == nil || len(params) == 0 {
		return e
	}
	e.Params = params
	return e
}

// HTTPStatus returns the status code for the error kind.
//
// Forbidden on resource operations and TenantMismatch are reported as 404 to
// keep resource ids non-enumerable; the distinction survives in logs.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden, KindNotFound, KindTenantMismatch:
		return http.StatusNotFound
	case KindConflict, KindConcurrencyConflict, KindQuotaExceeded:
		return http.StatusConflict
	case KindInvalidState:
		return http.StatusUnprocessableEntity
	case KindHypervisor:
		return http.StatusBadGateway
	case KindCancelled:
		return 499 // client closed request (nginx convention)
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError.
func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// Validation creates a field-level validation error.
func Validation(field, message string) *AppError {
	return &AppError{
		Kind:        KindValidation,
		Code:        CodeValidationFailed,
		Message:     message,
		FieldErrors: []FieldError{{Field: field, Message: message}},
	}
}

// Forbidden creates a permission error.
func Forbidden(code, message string) *AppError {
	return New(KindForbidden, code, message)
}

// NotFound creates a not-found error.
func NotFound(code, message string) *AppError {
	return New(KindNotFound, code, message)
}

// Conflict creates an idempotency/duplicate conflict error.
func Conflict(code, message string) *AppError {
	return New(KindConflict, code, message)
}

// InvalidState reports a command that conflicts with the aggregate status.
func InvalidState(current, message string) *AppError {
	return New(KindInvalidState, CodeInvalidState, message).
		WithParams(map[string]interface{}{"current_state": current})
}

// ConcurrencyConflict reports an optimistic-concurrency failure on append.
func ConcurrencyConflict(expected, actual int64) *AppError {
	return New(KindConcurrencyConflict, CodeVersionConflict,
		fmt.Sprintf("expected version %d but aggregate is at version %d", expected, actual)).
		WithParams(map[string]interface{}{"expected": expected, "actual": actual})
}

// TenantMismatch reports a cross-tenant access attempt. The caller-facing
// status is 404; the kind is preserved for warning-level logging.
func TenantMismatch(message string) *AppError {
	return New(KindTenantMismatch, CodeTenantMismatch, message)
}

// QuotaExceeded creates a policy refusal error.
func QuotaExceeded(message string) *AppError {
	return New(KindQuotaExceeded, CodeQuotaExceeded, message)
}

// Hypervisor wraps an upstream hypervisor failure.
func Hypervisor(err error, code, message string) *AppError {
	return Wrap(err, KindHypervisor, code, message)
}

// Persistence wraps a storage or codec failure.
func Persistence(err error, message string) *AppError {
	return Wrap(err, KindPersistence, CodePersistenceFailure, message)
}

// Internal creates a generic internal error.
func Internal(code, message string) *AppError {
	return New(KindInternal, code, message)
}

// IsAppError checks if an error is an AppError and returns it.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
// Context cancellation is always reported as KindCancelled regardless of any
// wrapping.
func KindOf(err error) Kind {
	if IsCancelled(err) {
		return KindCancelled
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// CodeOf returns the stable error code of err, or empty for unclassified
// errors.
func CodeOf(err error) string {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCancelled reports whether err stems from context cancellation or a
// deadline. Such errors must propagate unchanged.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr.Kind == KindCancelled
	}
	return false
}
