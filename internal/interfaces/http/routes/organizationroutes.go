package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	UserHandler         *handlers.UserHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupOrganizationRoutes(engine *gin.Engine, config *OrganizationRouteConfig) {
	// Branding is public: the login page needs it before any token
	// exists.
	engine.GET("/api/organizations/:slug/branding", config.OrganizationHandler.GetBranding)

	users := engine.Group("/api/users")
	users.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireOrganization())
	{
		users.GET("", config.UserHandler.ListUsers)
	}
}
