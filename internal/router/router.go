package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/justintdct/CineVault/cinevault-go/internal/handler"
	"github.com/justintdct/CineVault/cinevault-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Content *handler.ContentHandler
	Ranking *handler.RankingHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	// Content routes
	api.Get("/content", h.Content.List)
	api.Get("/content/:id", h.Content.GetByID)
	api.Post("/content/:id/update-stats", h.Content.UpdateStats)

	// Category routes
	api.Get("/categories", h.Content.Categories)

	// Ranking routes
	api.Get("/rankings/:period", h.Ranking.GetByPeriod)
}
