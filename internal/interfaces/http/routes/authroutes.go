package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)

		// The picker and the exchange only need the tenantless login
		// token.
		auth.GET("/organizations",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.ListMyOrganizations)
		auth.POST("/select-organization",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.SelectOrganization)
	}
}
