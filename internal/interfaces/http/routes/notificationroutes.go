package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireOrganization())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllRead)
		notifications.POST("/:uuid/acknowledge", config.NotificationHandler.AcknowledgeNotification)
	}
}
