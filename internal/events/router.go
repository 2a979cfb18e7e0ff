package events

import (
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents)               // GET /api/v1/events
		publicEvents.GET("/upcoming", controller.GetUpcomingEvents) // GET /api/v1/events/upcoming
		publicEvents.GET("/:id", controller.GetEvent)               // GET /api/v1/events/:id
	}

	// Publisher routes - publishers manage their own events
	publisherEvents := router.Group("/publisher/events")
	publisherEvents.Use(middleware.JWTAuth(), middleware.RequirePublisher())
	{
		publisherEvents.GET("", controller.GetMyEvents)        // GET /api/v1/publisher/events
		publisherEvents.POST("", controller.CreateEvent)       // POST /api/v1/publisher/events
		publisherEvents.PUT("/:id", controller.UpdateEvent)    // PUT /api/v1/publisher/events/:id
		publisherEvents.DELETE("/:id", controller.DeleteEvent) // DELETE /api/v1/publisher/events/:id
	}

	// Admin routes - admins manage any event
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminEvents.GET("", controller.GetAllEvents)
		adminEvents.GET("/:id", controller.GetEvent)
		adminEvents.PUT("/:id", controller.UpdateEventAsAdmin)
		adminEvents.DELETE("/:id", controller.DeleteEventAsAdmin)
	}
}
