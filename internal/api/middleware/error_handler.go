package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	Params      map[string]interface{} `json:"params,omitempty"`
	FieldErrors []apperrors.FieldError `json:"field_errors,omitempty"`
}

// ErrorHandler renders errors attached via c.Error into a JSON response.
// Handlers never write error bodies themselves; they attach the error and
// abort, and this middleware maps it here in one place.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if appErr, ok := apperrors.IsAppError(err); ok {
			status := appErr.HTTPStatus()

			switch {
			case status >= 500:
				logger.Error("request failed",
					zap.String("path", c.Request.URL.Path),
					zap.String("code", appErr.Code),
					zap.Error(err),
				)
			case appErr.Kind == apperrors.KindTenantMismatch:
				// Cross-tenant probes answer 404 but are worth a warning.
				logger.Warn("cross-tenant access attempt",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", RequestIDFrom(c)),
				)
			}

			c.JSON(status, ErrorResponse{
				Code:        appErr.Code,
				Message:     appErr.Message,
				Params:      appErr.Params,
				FieldErrors: appErr.FieldErrors,
			})
			return
		}

		logger.Error("unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    apperrors.CodeInternal,
			Message: "internal server error",
		})
	}
}
