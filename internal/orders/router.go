package orders

import (
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(router *gin.RouterGroup, controller Controller) {
	// Buyer routes
	userOrders := router.Group("/orders")
	userOrders.Use(middleware.JWTAuth())
	{
		userOrders.POST("", controller.CreateOrder)            // POST /api/v1/orders
		userOrders.GET("", controller.GetMyOrders)             // GET /api/v1/orders
		userOrders.GET("/:id", controller.GetOrder)            // GET /api/v1/orders/:id
		userOrders.POST("/:id/cancel", controller.CancelOrder) // POST /api/v1/orders/:id/cancel
	}

	// Publisher dashboard routes
	publisher := router.Group("/publisher")
	publisher.Use(middleware.JWTAuth(), middleware.RequirePublisher())
	{
		publisher.GET("/sales", controller.GetPublisherSales)       // GET /api/v1/publisher/sales
		publisher.GET("/earnings", controller.GetPublisherEarnings) // GET /api/v1/publisher/earnings
	}
}
