package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/dataset"
	"github.com/localnerve/staffdir/internal/handlers"
	"github.com/localnerve/staffdir/internal/middleware"
	"github.com/localnerve/staffdir/internal/services"
	"github.com/localnerve/staffdir/internal/types"

	_ "github.com/localnerve/staffdir/docs/api" // Swagger docs
)

// @title Staffdir API
// @version 1.0.0
// @description Authenticated employee directory service with cross-table project attribution
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/staffdir
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name staffdir_session

func main() {
	// Load .env before reading configuration, matching local dev setups
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load datasets once per process; partial failures degrade, never abort
	store := dataset.Load(cfg.DataDir)
	for _, warning := range store.Report.Warnings {
		log.Printf("Dataset warning: %s", warning)
	}
	for _, loadErr := range store.Report.Errors {
		log.Printf("Dataset error: %s", loadErr)
	}

	// Build the authenticator from the credential table
	auth := services.NewAuthenticator(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("staffdir")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{Auth: auth}
	directoryHandler := &handlers.DirectoryHandler{Store: store, Cfg: cfg}
	healthHandler := &handlers.HealthHandler{Store: store, Cfg: cfg}

	// Health (unauthenticated, used by the healthcheck probe)
	api.Get("/health", healthHandler.GetHealth)

	// Auth routes
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/auth/session", middleware.AuthUser(auth), authHandler.GetSession)

	// Directory routes (all require an authenticated session)
	directory := api.Group("/directory", middleware.AuthUser(auth))
	directory.Get("/", directoryHandler.GetEmployees)
	directory.Get("/options", directoryHandler.GetOptions)
	directory.Get("/profile", directoryHandler.GetProfile)
	directory.Get("/profile/:email", directoryHandler.GetProfileByEmail)
	directory.Post("/select", directoryHandler.PostSelect)

	// Avatar redirect
	api.Get("/avatar/:employeeCode", middleware.AuthUser(auth), directoryHandler.GetAvatar)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check for application errors first, then Fiber errors
	var customErr *types.CustomError
	var fiberErr *fiber.Error
	if errors.As(err, &customErr) {
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
