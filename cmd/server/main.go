package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/atlasfit/gym-backend/internal/config"
	"github.com/atlasfit/gym-backend/internal/database"
	"github.com/atlasfit/gym-backend/internal/handlers"
	"github.com/atlasfit/gym-backend/internal/logging"
	"github.com/atlasfit/gym-backend/internal/middleware"
	"github.com/atlasfit/gym-backend/internal/routes"
	"github.com/atlasfit/gym-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.SeedRoles(); err != nil {
		slog.Error("role seeding failed", "error", err)
		os.Exit(1)
	}
	if err := database.SeedSuperAdmin(cfg); err != nil {
		slog.Error("super admin seeding failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewStdoutHandler(),
		pgLogHandler,
	)))

	// Log cleanup
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	// Services
	gateway := services.NewPaymentGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	authService := services.NewAuthService(database.DB, cfg)
	userService := services.NewUserService(database.DB)
	branchService := services.NewBranchService(database.DB)
	classService := services.NewClassService(database.DB)
	scheduleService := services.NewScheduleService(database.DB)
	reservationService := services.NewReservationService(database.DB)
	subscriptionService := services.NewClassSubscriptionService(database.DB)
	productService := services.NewProductService(database.DB)
	paymentService := services.NewPaymentService(database.DB, gateway)
	membershipService := services.NewMembershipService(database.DB, paymentService)

	h := &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, userService),
		Health:       handlers.NewHealthHandler(),
		Branch:       handlers.NewBranchHandler(branchService),
		User:         handlers.NewUserHandler(userService),
		Class:        handlers.NewClassHandler(classService),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Reservation:  handlers.NewReservationHandler(reservationService),
		Subscription: handlers.NewSubscriptionHandler(subscriptionService),
		Product:      handlers.NewProductHandler(productService),
		Membership:   handlers.NewMembershipHandler(membershipService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Webhook:      handlers.NewWebhookHandler(paymentService),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
