package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avinashrk/billpoint-api/internal/application/service"
	"github.com/avinashrk/billpoint-api/internal/config"
	"github.com/avinashrk/billpoint-api/internal/infrastructure/database"
	"github.com/avinashrk/billpoint-api/internal/infrastructure/repository"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/handler"
	"github.com/avinashrk/billpoint-api/internal/presentation/http/routes"
	"github.com/avinashrk/billpoint-api/pkg/oauth"
	"github.com/avinashrk/billpoint-api/pkg/printer"
	"github.com/avinashrk/billpoint-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	billRepo := repository.NewBillRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	shopRepo := repository.NewShopRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.Target)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, googleOAuthService, jwtManager)
	catalogService := service.NewCatalogService(productRepo)
	billingService := service.NewBillingService(billRepo, productRepo)
	registerService := service.NewRegisterService(catalogService, billingService, service.RegisterSessionConfig{
		SessionTTL:      cfg.Register.SessionTTL,
		CleanupInterval: cfg.Register.CleanupInterval,
	})
	invoiceService := service.NewInvoiceService(billRepo, shopRepo, thermalPrinter, cfg.Printer.CharWidth)
	statsService := service.NewStatsService(statsRepo)
	exportService := service.NewExportService(billRepo, statsRepo, productRepo)
	shopService := service.NewShopService(shopRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.JWT),
		Product: handler.NewProductHandler(catalogService, exportService),
		Bill:    handler.NewBillHandler(billingService, invoiceService, exportService),
		Stats:   handler.NewStatsHandler(statsService),
		POS:     handler.NewPOSHandler(registerService),
		Shop:    handler.NewShopHandler(shopService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests before stopping the
	// register session sweeper and the printer.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	registerService.Stop()
	if err := thermalPrinter.Close(); err != nil {
		log.Printf("Printer close: %v", err)
	}
	log.Println("Server stopped")
}
