package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz handles GET /healthz (liveness).
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz handles GET /readyz (readiness): database reachability plus worker
// pool occupancy.
func (s *Server) Readyz(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"
	if s.pingDB != nil {
		if err := s.pingDB(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unreachable"
		}
	}

	body := gin.H{
		"status":   "ok",
		"database": dbStatus,
	}
	if s.pools != nil {
		body["worker_pools"] = s.pools.Metrics()
	}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
