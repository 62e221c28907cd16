package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/api/middleware"
	"vc-drover.io/drover/internal/command"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/projection"
	"vc-drover.io/drover/internal/query"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

var testIdentities = map[string]tenant.Identity{
	"member":  {UserID: "user-1", TenantID: "tenant-1", Name: "Riley Requester", Roles: []string{"member"}},
	"admin":   {UserID: "user-2", TenantID: "tenant-1", Name: "Avery Admin", Roles: []string{"admin"}},
	"foreign": {UserID: "user-1", TenantID: "tenant-9", Name: "Riley Requester", Roles: []string{"member"}},
}

// apiFixture wires the real command/query services over the memory stores
// behind a router with the production middleware, substituting only the
// authentication step.
type apiFixture struct {
	events *eventstore.MemoryStore
	store  *readmodel.MemoryStore
	engine *projection.Engine
	router *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		events: eventstore.NewMemoryStore(domain.NewDefaultCodec()),
		store:  readmodel.NewMemoryStore(),
	}
	f.engine = projection.NewEngine(f.events, f.store, nil, projection.Config{
		BatchSize: 50, MaxAttempts: 1, RetryDelay: time.Millisecond,
	})
	f.engine.Register(projection.NewRequestProjector(f.events))
	f.engine.Register(projection.NewTimelineProjector())

	server := NewServer(ServerDeps{
		Commands: command.NewService(f.events, nil, func() {}),
		Queries:  query.NewService(f.store),
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	router.GET("/healthz", server.Healthz)
	router.GET("/readyz", server.Readyz)

	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		if ident, ok := testIdentities[c.GetHeader("Authorization")]; ok {
			c.Request = c.Request.WithContext(tenant.WithIdentity(c.Request.Context(), ident))
		}
		c.Next()
	})

	requests := api.Group("/requests")
	requests.POST("", server.CreateRequest)
	requests.GET("", server.ListMyRequests)
	requests.GET("/pending", server.ListPendingRequests)
	requests.GET("/:id", server.GetRequest)
	requests.GET("/:id/progress", server.GetProgress)
	requests.POST("/:id/approve", server.ApproveRequest)
	requests.POST("/:id/reject", server.RejectRequest)
	requests.POST("/:id/cancel", server.CancelRequest)
	api.GET("/projects", server.ListProjects)

	f.router = router
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, as, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if as != "" {
		req.Header.Set("Authorization", as)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) catchUp(t *testing.T) {
	t.Helper()
	require.NoError(t, f.engine.CatchUp(context.Background()))
}

const validCreateBody = `{
	"project_id": "proj-1", "project_name": "Phoenix",
	"vm_name": "web-server", "size": "M",
	"justification": "load testing for the release"
}`

func TestCreateRequestEndpoint(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	t.Run("valid body creates a request", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests", "member", validCreateBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["id"])
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests", "member", `{"vm_name": "web-server"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("domain validation surfaces as field errors", func(t *testing.T) {
		bad := strings.Replace(validCreateBody, "web-server", "-bad-name", 1)
		rec := f.do(t, http.MethodPost, "/api/v1/requests", "member", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "vm_name")
	})

	t.Run("no identity is unauthorized", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests", "", validCreateBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/requests", "member", validCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"]

	t.Run("approval needs the admin role", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests/"+id+"/approve", "member", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "ADMIN_ROLE_REQUIRED")
	})

	t.Run("admin approves", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests/"+id+"/approve", "admin", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("decided requests cannot be cancelled", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/requests/"+id+"/cancel", "member", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	f.catchUp(t)

	t.Run("detail shows the decision and timeline", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/requests/"+id, "member", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var detail RequestDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, id, detail.Request.ID)
		assert.Equal(t, string(domain.RequestApproved), detail.Request.Status)
		assert.Equal(t, "Avery Admin", detail.Request.DeciderName)
		assert.Equal(t, "PHOE-web-server", detail.Request.EffectiveName)
		assert.Len(t, detail.Timeline, 2)
	})

	t.Run("list pages the caller's requests", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/requests?page=0&size=10", "member", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list RequestListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Pagination.Total)
		require.Len(t, list.Items, 1)
	})

	t.Run("another tenant cannot see the request", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/requests/"+id, "foreign", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRejectRequiresReason(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/requests", "member", validCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/requests/%s/reject", created["id"])
	rec = f.do(t, http.MethodPost, path, "admin", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "reason")
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	t.Run("degrades when the database is unreachable", func(t *testing.T) {
		server := NewServer(ServerDeps{
			PingDB: func(ctx context.Context) error { return fmt.Errorf("connection refused") },
		})
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/readyz", server.Readyz)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "degraded")
	})
}
