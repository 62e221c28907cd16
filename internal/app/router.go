package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vc-drover.io/drover/internal/api/handlers"
	"vc-drover.io/drover/internal/api/middleware"
	"vc-drover.io/drover/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Health endpoints stay unauthenticated.
	router.GET("/healthz", server.Healthz)
	router.GET("/readyz", server.Readyz)

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth([]byte(cfg.Security.JWTSecret)))

	requests := api.Group("/requests")
	{
		requests.POST("", server.CreateRequest)
		requests.GET("", server.ListMyRequests)
		requests.GET("/pending", server.ListPendingRequests)
		requests.GET("/:id", server.GetRequest)
		requests.GET("/:id/progress", server.GetProgress)
		requests.POST("/:id/approve", server.ApproveRequest)
		requests.POST("/:id/reject", server.RejectRequest)
		requests.POST("/:id/cancel", server.CancelRequest)
	}

	api.GET("/projects", server.ListProjects)

	notifications := api.Group("/notifications")
	{
		notifications.GET("", server.ListNotifications)
		notifications.GET("/unread-count", server.GetUnreadCount)
		notifications.POST("/read-all", server.MarkAllNotificationsRead)
		notifications.POST("/:id/read", server.MarkNotificationRead)
	}

	// Admin role is enforced in the services, not by route prefix, so a
	// non-admin probing these paths gets the same enumeration-safe errors.
	admin := api.Group("/admin")
	{
		admin.GET("/vmware-config", server.GetVMwareConfig)
		admin.PUT("/vmware-config", server.SaveVMwareConfig)
		admin.POST("/vmware-config/test", server.TestVMwareConnection)
		admin.GET("/dead-letters", server.ListDeadLetters)
	}

	return router
}
