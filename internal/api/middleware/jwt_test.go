package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/tenant"
)

var testSigningKey = []byte("test-signing-key-for-unit-tests")

func testJWTConfig() JWTConfig {
	return JWTConfig{SigningKey: testSigningKey, Issuer: "drover-test", ExpiresIn: time.Hour}
}

func testIdentity() tenant.Identity {
	return tenant.Identity{
		UserID:   "user-1",
		TenantID: "tenant-1",
		Name:     "Riley Requester",
		Email:    "riley@example.com",
		Roles:    []string{"member"},
	}
}

// authRouter mounts JWTAuth in front of a probe handler that reports the
// identity it saw.
func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(testSigningKey))
	router.GET("/probe", func(c *gin.Context) {
		ident, err := tenant.IdentityFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":   ident.UserID.String(),
			"tenant_id": ident.TenantID.String(),
			"is_admin":  ident.IsAdmin(),
		})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTConfig(), testIdentity())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	rec := doRequest(authRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["user_id"])
	assert.Equal(t, "tenant-1", body["tenant_id"])
	assert.Equal(t, false, body["is_admin"])
}

func TestJWTAuthRejections(t *testing.T) {
	router := authRouter()

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing authorization header")
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := doRequest(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(router, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid token")
	})

	t.Run("wrong signing key", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.SigningKey = []byte("a-different-signing-key-entirely")
		token, _, err := GenerateToken(cfg, testIdentity())
		require.NoError(t, err)

		rec := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.ExpiresIn = -time.Hour
		token, _, err := GenerateToken(cfg, testIdentity())
		require.NoError(t, err)

		rec := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token expired")
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := JWTClaims{UserID: "user-1", TenantID: "tenant-1"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		rec := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing tenant claim", func(t *testing.T) {
		ident := testIdentity()
		ident.TenantID = ""
		token, _, err := GenerateToken(testJWTConfig(), ident)
		require.NoError(t, err)

		rec := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid token claims")
	})
}

func TestJWTAuthCarriesRoles(t *testing.T) {
	ident := testIdentity()
	ident.Roles = []string{"member", tenant.AdminRole}
	token, _, err := GenerateToken(testJWTConfig(), ident)
	require.NoError(t, err)

	rec := doRequest(authRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_admin"])
}
