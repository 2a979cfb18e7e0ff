// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"ticketly/internal/auth"
	"ticketly/internal/currencies"
	"ticketly/internal/events"
	"ticketly/internal/fees"
	"ticketly/internal/notifications"
	"ticketly/internal/orders"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/internal/support"
	"ticketly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier notifications.Publisher

	// Services shared across feature routers
	cacheService cache.Service
	feeService   fees.Service
	eventService events.Service
	authRepo     auth.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier notifications.Publisher) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared services the feature routers depend on
	r.cacheService = cache.NewService(r.db.GetRedisClient())
	r.feeService = fees.NewService()
	r.authRepo = auth.NewRepository(r.db.GetPostgreSQL())

	// Fee verification endpoint kept at its historical path outside the
	// versioned prefix for existing checkout clients
	feeController := fees.NewController(r.feeService)
	fees.SetupLegacyFeeRoutes(engine, feeController)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCurrencyRoutes(api)
		fees.SetupFeeRoutes(api, feeController)
		r.setupAuthRoutes(api)
		r.setupEventRoutes(api)
		r.setupOrderRoutes(api)
		r.setupSupportRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ticketly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ticketly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCurrencyRoutes configures the supported-market directory routes
func (r *Router) setupCurrencyRoutes(rg *gin.RouterGroup) {
	currencyController := currencies.NewController()
	currencies.SetupCurrencyRoutes(rg, currencyController)
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupEventRoutes configures event management routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)
	eventService.SetCacheService(r.cacheService)

	// Order checkout reads events through the same service instance
	r.eventService = eventService

	eventController := events.NewController(eventService)
	events.SetupEventRoutes(rg, eventController)
}

// setupOrderRoutes configures checkout and sales routes
func (r *Router) setupOrderRoutes(rg *gin.RouterGroup) {
	orderRepo := orders.NewRepository(r.db.GetPostgreSQL())
	sellers := auth.NewSellerDirectoryAdapter(r.authRepo)

	orderService := orders.NewService(orderRepo, r.eventService, r.feeService, sellers)
	orderService.SetCacheService(r.cacheService)
	if r.notifier != nil {
		orderService.SetNotificationService(r.notifier)
	}

	orderController := orders.NewController(orderService)
	orders.SetupOrderRoutes(rg, orderController)
}

// setupSupportRoutes configures support ticket routes
func (r *Router) setupSupportRoutes(rg *gin.RouterGroup) {
	supportRepo := support.NewRepository(r.db.GetPostgreSQL())
	supportService := support.NewService(supportRepo)
	supportController := support.NewController(supportService)

	support.SetupSupportRoutes(rg, supportController)
}
