package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/probe", handler)
	return router
}

func probe(router *gin.Engine) (*httptest.ResponseRecorder, ErrorResponse) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	var body ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestErrorHandlerMapsAppErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        apperrors.NotFound(apperrors.CodeRequestNotFound, "request not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   apperrors.CodeRequestNotFound,
		},
		{
			name:       "forbidden renders as not found status",
			err:        apperrors.Forbidden(apperrors.CodeAdminRequired, "admin role required"),
			wantStatus: http.StatusNotFound,
			wantCode:   apperrors.CodeAdminRequired,
		},
		{
			name:       "invalid state",
			err:        apperrors.InvalidState("APPROVED", "request is not pending"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeInvalidState,
		},
		{
			name:       "hypervisor fault",
			err:        apperrors.Hypervisor(nil, apperrors.CodeHypervisorAPI, "vcenter unreachable"),
			wantStatus: http.StatusBadGateway,
			wantCode:   apperrors.CodeHypervisorAPI,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := errorRouter(func(c *gin.Context) {
				_ = c.Error(tc.err)
				c.Abort()
			})
			rec, body := probe(router)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}

func TestErrorHandlerCarriesParamsAndFieldErrors(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.Validation("vm_name", "must start with a letter"))
		c.Abort()
	})
	rec, body := probe(router)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeValidationFailed, body.Code)
	require.Len(t, body.FieldErrors, 1)
	assert.Equal(t, "vm_name", body.FieldErrors[0].Field)

	router = errorRouter(func(c *gin.Context) {
		_ = c.Error(apperrors.ConcurrencyConflict(2, 5))
		c.Abort()
	})
	rec, body = probe(router)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.EqualValues(t, 2, body.Params["expected"])
}

func TestErrorHandlerFallsBackToInternal(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("something the handlers never classified"))
		c.Abort()
	})
	rec, body := probe(router)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperrors.CodeInternal, body.Code)
	assert.Equal(t, "internal server error", body.Message)
	// The raw error text never leaks to the client.
	assert.NotContains(t, body.Message, "never classified")
}

func TestErrorHandlerLeavesSuccessAlone(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	rec, _ := probe(router)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}
