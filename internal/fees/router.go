package fees

import "github.com/gin-gonic/gin"

func SetupFeeRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the checkout UI calls these before the buyer is asked to pay
	fees := router.Group("/fees")
	{
		fees.POST("/quote", controller.Quote)       // POST /api/v1/fees/quote
		fees.POST("/verify", controller.VerifyFees) // POST /api/v1/fees/verify
	}
}

// SetupLegacyFeeRoutes keeps the original top-level verification path alive
// for frontends that still call it.
func SetupLegacyFeeRoutes(engine *gin.Engine, controller Controller) {
	engine.POST("/api/verify-fees", controller.VerifyFees)
}
