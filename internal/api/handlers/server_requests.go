package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vc-drover.io/drover/internal/command"
	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// CreateRequestBody is the POST /requests payload.
type CreateRequestBody struct {
	ProjectID     string `json:"project_id" binding:"required"`
	ProjectName   string `json:"project_name" binding:"required"`
	VMName        string `json:"vm_name" binding:"required"`
	Size          string `json:"size" binding:"required"`
	Justification string `json:"justification"`
}

// RejectRequestBody is the POST /requests/:id/reject payload.
type RejectRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateRequest handles POST /requests.
func (s *Server) CreateRequest(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWith(c, apperrors.Wrap(err, apperrors.KindValidation,
			apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	id, err := s.commands.Create(c.Request.Context(), command.CreateInput{
		ProjectID:     domain.ProjectID(body.ProjectID),
		ProjectName:   body.ProjectName,
		VMName:        body.VMName,
		Size:          body.Size,
		Justification: body.Justification,
	})
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// GetRequest handles GET /requests/:id.
func (s *Server) GetRequest(c *gin.Context) {
	detail, err := s.queries.GetRequest(c.Request.Context(), domain.RequestID(c.Param("id")))
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, detailToAPI(detail))
}

// ListMyRequests handles GET /requests.
func (s *Server) ListMyRequests(c *gin.Context) {
	page, size := pagination(c)
	result, err := s.queries.ListMyRequests(c.Request.Context(), page, size)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, pageToAPI(result))
}

// ListPendingRequests handles GET /requests/pending (the approval queue).
func (s *Server) ListPendingRequests(c *gin.Context) {
	page, size := pagination(c)
	var projectID *domain.ProjectID
	if raw := c.Query("project_id"); raw != "" {
		id := domain.ProjectID(raw)
		projectID = &id
	}
	result, err := s.queries.ListPending(c.Request.Context(), projectID, page, size)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, pageToAPI(result))
}

// ApproveRequest handles POST /requests/:id/approve.
func (s *Server) ApproveRequest(c *gin.Context) {
	if err := s.commands.Approve(c.Request.Context(), domain.RequestID(c.Param("id"))); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RejectRequest handles POST /requests/:id/reject.
func (s *Server) RejectRequest(c *gin.Context) {
	var body RejectRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWith(c, apperrors.Validation("reason", "rejection reason is required"))
		return
	}
	if err := s.commands.Reject(c.Request.Context(), domain.RequestID(c.Param("id")), body.Reason); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelRequest handles POST /requests/:id/cancel.
func (s *Server) CancelRequest(c *gin.Context) {
	if err := s.commands.Cancel(c.Request.Context(), domain.RequestID(c.Param("id"))); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProgress handles GET /requests/:id/progress.
func (s *Server) GetProgress(c *gin.Context) {
	progress, err := s.queries.GetProgress(c.Request.Context(), domain.RequestID(c.Param("id")))
	if err != nil {
		abortWith(c, err)
		return
	}
	if progress == nil {
		// Visible request, nothing in flight.
		c.JSON(http.StatusOK, gin.H{"progress": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progressToAPI(progress)})
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.queries.ListProjects(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	items := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, ProjectResponse{
			ProjectID:    p.ProjectID.String(),
			ProjectName:  p.ProjectName,
			RequestCount: p.RequestCount,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
