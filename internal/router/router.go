package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ouaf-asso/ouaf-api/internal/config"
	"github.com/ouaf-asso/ouaf-api/internal/handler"
	"github.com/ouaf-asso/ouaf-api/internal/middleware"
	"github.com/ouaf-asso/ouaf-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	IntakeHandler     *handler.IntakeHandler
	AnimalHandler     *handler.AnimalHandler
	EventHandler      *handler.EventHandler
	ActivityHandler   *handler.ActivityHandler
	ChartHandler      *handler.ChartHandler
	BackofficeHandler *handler.BackofficeHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.IntakeHandler != nil {
		deps.IntakeHandler.Register(api.Group("/contact"))
	}
	if deps.AnimalHandler != nil {
		deps.AnimalHandler.Register(api.Group("/animals"))
	}
	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events"))
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activities"))
	}
	if deps.ChartHandler != nil {
		deps.ChartHandler.Register(api.Group("/organisation-chart"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.BackofficeHandler != nil {
		backoffice := app.Group("/api/backoffice", jwtMiddleware, middleware.RequireRole("admin", "staff"))
		deps.BackofficeHandler.Register(backoffice)
	}
}
