package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	tokens *token.Service,
	m *metrics.Metrics,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	tenantHandler *handlers.TenantHandler,
	userHandler *handlers.UserHandler,
	plugins []apps.Plugin,
) {
	// Prometheus scrape endpoint, outside the API rate limit
	app.Get("/metrics", m.Handler())

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no auth)
	api.Get("/health", healthHandler.Check)

	// Every protected route runs the same pair: identity first, then the
	// tenant scope built from it.
	protected := []fiber.Handler{middleware.Authenticate(tokens), middleware.TenantIsolation()}

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", append(protected, authHandler.Me)...)

	// Tenant settings
	tenantGroup := api.Group("/tenant", protected...)
	tenantGroup.Get("/info", tenantHandler.Info)
	tenantGroup.Put("/info", middleware.Authorize(middleware.Managers...), tenantHandler.Update)
	tenantGroup.Get("/subscription", middleware.Authorize(middleware.Managers...), tenantHandler.Subscription)

	// Users within the caller's tenant
	users := api.Group("/users", protected...)
	users.Get("/", middleware.Authorize(middleware.Managers...), userHandler.List)
	users.Post("/", middleware.Authorize(middleware.Managers...), userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", middleware.Authorize(middleware.Managers...), userHandler.Delete)

	// Practice modules
	for _, p := range plugins {
		group := api.Group("/"+p.ID(), protected...)
		p.RegisterRoutes(group, db, cfg)
	}
}
