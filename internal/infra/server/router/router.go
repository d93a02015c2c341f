// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/integration/entrypoint/controller"
	"github.com/wealthflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	sessionController     *controller.SessionController
	stateController       *controller.StateController
	walletController      *controller.WalletController
	transactionController *controller.TransactionController
	transferController    *controller.TransferController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	voiceController       *controller.VoiceController
	liveUpdates           http.Handler
	sessionRateLimiter    *middleware.RateLimiter
	voiceRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// Controllers groups the handlers the router mounts. Nil entries are skipped.
type Controllers struct {
	Health      *controller.HealthController
	Session     *controller.SessionController
	State       *controller.StateController
	Wallet      *controller.WalletController
	Transaction *controller.TransactionController
	Transfer    *controller.TransferController
	Category    *controller.CategoryController
	Dashboard   *controller.DashboardController
	Voice       *controller.VoiceController
	// LiveUpdates serves the websocket stream of state changes.
	LiveUpdates http.Handler
}

// NewRouter creates a new router instance with all dependencies.
// authMiddleware is nil when the app lock is disabled.
func NewRouter(
	controllers Controllers,
	sessionRateLimiter *middleware.RateLimiter,
	voiceRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      controllers.Health,
		sessionController:     controllers.Session,
		stateController:       controllers.State,
		walletController:      controllers.Wallet,
		transactionController: controllers.Transaction,
		transferController:    controllers.Transfer,
		categoryController:    controllers.Category,
		dashboardController:   controllers.Dashboard,
		voiceController:       controllers.Voice,
		liveUpdates:           controllers.LiveUpdates,
		sessionRateLimiter:    sessionRateLimiter,
		voiceRateLimiter:      voiceRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.healthController != nil {
		r.engine.GET("/health", r.healthController.Check)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Unlock is only reachable when the app lock is configured
	if r.sessionController != nil && r.authMiddleware != nil {
		v1.POST("/session", r.limit(r.sessionRateLimiter), r.sessionController.Unlock)
	}

	api := v1.Group("")
	if r.authMiddleware != nil {
		api.Use(r.authMiddleware.Authenticate())
	}

	if r.stateController != nil {
		api.GET("/state", r.stateController.Get)
	}

	if r.walletController != nil {
		api.GET("/overview", r.walletController.Overview)
		api.GET("/savings", r.walletController.ListSavings)
		api.GET("/debts", r.walletController.ListDebts)
		api.POST("/items", r.walletController.CreateItem)

		accounts := api.Group("/accounts")
		{
			accounts.GET("", r.walletController.ListAccounts)
			accounts.DELETE("/:id", r.walletController.DeleteAccount)
			accounts.POST("/:id/pay", r.walletController.PayCard)
		}
	}

	if r.transactionController != nil {
		transactions := api.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
		}
	}

	if r.transferController != nil {
		api.POST("/transfers", r.transferController.Create)
	}

	if r.categoryController != nil {
		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}
	}

	if r.dashboardController != nil {
		analytics := api.Group("/analytics")
		{
			analytics.GET("/categories", r.dashboardController.GetCategoryBreakdown)
		}
	}

	if r.voiceController != nil {
		api.POST("/voice", r.limit(r.voiceRateLimiter), r.voiceController.Process)
	}

	if r.liveUpdates != nil {
		api.GET("/ws", gin.WrapH(r.liveUpdates))
	}
}

// limit returns the rate limiter middleware, or a pass-through when none is set.
func (r *Router) limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.Middleware()
}
