package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/articles"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/cases"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/clients"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/diaries"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/documents"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/hearings"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/reminders"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, stdout, err := loadConfig()
	if err != nil {
		return err
	}

	// Database
	pool := database.NewPool(cfg)
	if err := pool.Migrate(); err != nil {
		return err
	}
	db, err := pool.Connect()
	if err != nil {
		return err
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, pgLogHandler)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.StartCleanup(ctx, db, cfg.LogRetention)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	m := metrics.New()
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Services
	authService := services.NewAuthService(db, tokens, m)
	tenantService := services.NewTenantService(db)
	userService := services.NewUserService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(pool)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	userHandler := handlers.NewUserHandler(userService, cfg.IsDevelopment())

	plugins := []apps.Plugin{
		clients.New(),
		cases.New(),
		hearings.New(),
		diaries.New(),
		documents.New(),
		articles.New(),
	}

	// Daily hearing reminders
	scheduler := reminders.NewScheduler(db, reminders.LogNotifier{}, m, cfg.ReminderHour, cfg.ReminderRate)
	scheduler.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler(cfg),
	})

	// Sentry middleware
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
	app.Use(middleware.SecurityHeaders())
	app.Use(m.Middleware())

	routes.Setup(app, cfg, db, tokens, m, authHandler, healthHandler, tenantHandler, userHandler, plugins)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		pgLogHandler.Stop()
		_ = pool.Close()
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := pool.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// errorHandler renders anything a handler returned without writing a
// response. 5xx details stay out of the body outside development.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= 500 {
			attrs := []any{
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"error", err.Error(),
			}
			if scope, scopeErr := tenant.ScopeFrom(c); scopeErr == nil {
				attrs = append(attrs, "tenant_id", scope.TenantID.String(), "user_id", scope.UserID.String())
			}
			slog.Error("unhandled server error", attrs...)

			message = "Internal server error"
			if cfg.IsDevelopment() {
				message = err.Error()
			}
		}

		return c.Status(code).JSON(dto.ErrorResponse{
			Error:   true,
			Message: message,
		})
	}
}
