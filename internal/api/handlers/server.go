// Package handlers implements the HTTP handlers. Handlers bind and validate
// transport concerns, delegate to the command/query services, and attach any
// error to the gin context; the error-handler middleware renders it.
package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"vc-drover.io/drover/internal/command"
	"vc-drover.io/drover/internal/pkg/worker"
	"vc-drover.io/drover/internal/query"
)

// Server holds all HTTP handler dependencies.
type Server struct {
	commands *command.Service
	queries  *query.Service
	vmware   *command.VMwareConfigService
	pools    *worker.Pools
	pingDB   func(ctx context.Context) error
}

// ServerDeps holds all dependencies for creating a Server.
type ServerDeps struct {
	Commands *command.Service
	Queries  *query.Service
	VMware   *command.VMwareConfigService
	Pools    *worker.Pools

	// PingDB checks database liveness for the health endpoint.
	PingDB func(ctx context.Context) error
}

// NewServer creates a new Server.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		commands: deps.Commands,
		queries:  deps.Queries,
		vmware:   deps.VMware,
		pools:    deps.Pools,
		pingDB:   deps.PingDB,
	}
}

// abortWith attaches err and stops the handler chain; the error-handler
// middleware turns it into the response.
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// pagination reads page/size query params with defaults.
func pagination(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

// limitParam reads a bounded limit query param.
func limitParam(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > 200 {
		return 200
	}
	return limit
}
