package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	rows, err := s.queries.ListInbox(c.Request.Context(), limitParam(c, 50))
	if err != nil {
		abortWith(c, err)
		return
	}
	items := make([]NotificationResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, notificationToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	count, err := s.queries.UnreadCount(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	if err := s.queries.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	if err := s.queries.MarkAllNotificationsRead(c.Request.Context()); err != nil {
		abortWith(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
