package routes

import (
	"time"

	"github.com/avinashrk/billpoint-api/internal/config"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/handler"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/middleware"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Bill    *handler.BillHandler
	Stats   *handler.StatsHandler
	POS     *handler.POSHandler
	Shop    *handler.ShopHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/google-login", h.Auth.GoogleLogin)
		// Google OAuth redirect flow
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes. The PIN step itself cannot require the PIN.
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/pin", h.Auth.SetPin)
	protected.POST("/auth/pin/verify", h.Auth.VerifyPin)

	// Shop profile (invoice header)
	protected.GET("/shop", h.Shop.Get)
	protected.PUT("/shop", h.Shop.Update)

	// Catalog
	registerProductRoutes(protected, h)

	// Everything touching money sits behind the PIN step
	pinned := protected.Group("")
	pinned.Use(middleware.RequirePin())

	registerBillRoutes(pinned, h)
	registerStatsRoutes(pinned, h)
	registerPOSRoutes(pinned, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Fixed paths before the :productID routes
		products.GET("/bar-code", h.Product.ResolveBarcode)
		products.GET("/export", h.Product.Export)

		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:productID", h.Product.Get)
		products.DELETE("/:productID", h.Product.Delete)
		products.PATCH("/:productID/name", h.Product.UpdateItemName)
		products.POST("/:productID/variants", h.Product.AddVariant)
		products.PATCH("/:productID/variants/:variantID/price", h.Product.UpdateVariantPrice)
		products.PATCH("/:productID/variants/:variantID/stock", h.Product.UpdateVariantStock)
		products.DELETE("/:productID/variants/:variantID", h.Product.DeleteVariant)
		products.GET("/:productID/variants/:variantID/label", h.Product.Label)
	}
}

func registerBillRoutes(pinned *gin.RouterGroup, h *Handlers) {
	bill := pinned.Group("/bill")
	{
		bill.POST("/create-bill", h.Bill.Create)
		bill.GET("", h.Bill.List)
		bill.GET("/export", h.Bill.Export)
		bill.GET("/:billNo", h.Bill.GetByBillNo)
		bill.GET("/:billNo/print", h.Bill.PrintHTML)
		bill.GET("/:billNo/pdf", h.Bill.PDF)
		bill.POST("/:billNo/thermal", h.Bill.Thermal)
	}
}

func registerStatsRoutes(pinned *gin.RouterGroup, h *Handlers) {
	stats := pinned.Group("/bill/stats")
	{
		stats.GET("/items-report", h.Stats.ItemsReport)
		stats.GET("/items-report/export", h.Bill.ExportItemsReport)
		stats.GET("/top-items", h.Stats.TopItems)
		stats.GET("/sales-trend", h.Stats.SalesTrend)
		stats.GET("/payment-method", h.Stats.PaymentMethod)
	}
}

func registerPOSRoutes(pinned *gin.RouterGroup, h *Handlers) {
	pos := pinned.Group("/pos/sessions")
	{
		pos.POST("", h.POS.Open)
		pos.POST("/:sessionID/scan", h.POS.Scan)
		pos.GET("/:sessionID/cart", h.POS.ViewCart)
		pos.POST("/:sessionID/checkout", h.POS.Checkout)
		pos.DELETE("/:sessionID", h.POS.Close)
	}
}
