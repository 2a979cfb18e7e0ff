package currencies

import "github.com/gin-gonic/gin"

func SetupCurrencyRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - reference data consumed by the checkout UI
	currencies := router.Group("/currencies")
	{
		currencies.GET("", controller.ListCurrencies)                       // GET /api/v1/currencies
		currencies.GET("/:countryCode", controller.GetCurrencyByCountry)    // GET /api/v1/currencies/:countryCode
	}
}
