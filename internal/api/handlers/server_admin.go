package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vc-drover.io/drover/internal/command"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// SaveVMwareConfigBody is the PUT /admin/vmware-config payload. Password is
// optional on update; empty keeps the stored credential.
type SaveVMwareConfigBody struct {
	VCenterURL string `json:"vcenter_url" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password"`
	Datacenter string `json:"datacenter" binding:"required"`
	Cluster    string `json:"cluster" binding:"required"`
	Datastore  string `json:"datastore" binding:"required"`
	Network    string `json:"network" binding:"required"`
	Template   string `json:"template" binding:"required"`
	Version    int64  `json:"version"`
}

// GetVMwareConfig handles GET /admin/vmware-config.
func (s *Server) GetVMwareConfig(c *gin.Context) {
	view, err := s.vmware.GetVMwareConfig(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	if view == nil {
		abortWith(c, apperrors.NotFound(apperrors.CodeVMwareConfigMissing,
			"vmware configuration not set"))
		return
	}
	c.JSON(http.StatusOK, configViewToAPI(view))
}

// SaveVMwareConfig handles PUT /admin/vmware-config.
func (s *Server) SaveVMwareConfig(c *gin.Context) {
	var body SaveVMwareConfigBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWith(c, apperrors.Wrap(err, apperrors.KindValidation,
			apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	view, err := s.vmware.SaveVMwareConfig(c.Request.Context(), command.SaveVMwareConfigInput{
		VCenterURL: body.VCenterURL,
		Username:   body.Username,
		Password:   body.Password,
		Datacenter: body.Datacenter,
		Cluster:    body.Cluster,
		Datastore:  body.Datastore,
		Network:    body.Network,
		Template:   body.Template,
		Version:    body.Version,
	})
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, configViewToAPI(view))
}

// TestVMwareConnection handles POST /admin/vmware-config/test.
func (s *Server) TestVMwareConnection(c *gin.Context) {
	result, err := s.vmware.TestConnection(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, connectionToAPI(result))
}

// ListDeadLetters handles GET /admin/dead-letters.
func (s *Server) ListDeadLetters(c *gin.Context) {
	rows, err := s.queries.ListDeadLetters(c.Request.Context(), limitParam(c, 50))
	if err != nil {
		abortWith(c, err)
		return
	}
	items := make([]DeadLetterResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, deadLetterToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
