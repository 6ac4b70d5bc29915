package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler    *handlers.TicketHandler
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireOrganization())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints come before the bare parameterized route.
		tickets.POST("/:uuid/assign",
			config.AuthMiddleware.RequireAdmin(),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:uuid/status", config.TicketHandler.ChangeTicketStatus)
		tickets.POST("/:uuid/attachments", config.TicketHandler.UploadAttachments)

		tickets.GET("/:uuid", config.TicketHandler.GetTicket)
		tickets.PATCH("/:uuid", config.TicketHandler.UpdateTicket)
	}

	dashboard := engine.Group("/api/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireOrganization())
	{
		dashboard.GET("/stats", config.DashboardHandler.GetStats)
	}
}
