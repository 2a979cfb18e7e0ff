package support

import (
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSupportRoutes(router *gin.RouterGroup, controller Controller) {
	// Any authenticated user can open and follow up on tickets
	tickets := router.Group("/support/tickets")
	tickets.Use(middleware.JWTAuth())
	{
		tickets.POST("", controller.CreateTicket)          // POST /api/v1/support/tickets
		tickets.GET("", controller.GetMyTickets)           // GET /api/v1/support/tickets
		tickets.GET("/:id", controller.GetTicket)          // GET /api/v1/support/tickets/:id
		tickets.POST("/:id/replies", controller.Reply)     // POST /api/v1/support/tickets/:id/replies
		tickets.POST("/:id/close", controller.CloseTicket) // POST /api/v1/support/tickets/:id/close
	}

	// Admin routes - support staff work the queue
	adminTickets := router.Group("/admin/support/tickets")
	adminTickets.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminTickets.GET("", controller.GetAllTickets)
		adminTickets.GET("/:id", controller.GetTicket)
		adminTickets.POST("/:id/replies", controller.Reply)
		adminTickets.POST("/:id/close", controller.CloseTicket)
	}
}
