package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/http/handlers"
	"github.com/spec-kit/staff-service/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Staff  *handlers.StaffHandler
}

// RegisterRoutes wires HTTP routes. Matching is exact on method and path;
// everything else falls through to a structured not-matched response.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/staff", cfg.Staff.Browse)
	app.Post("/staff", cfg.Staff.Create)
	app.All("/staff", methodNotAllowed)

	app.Use(routeNotMatched)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return util.NewMethodNotAllowed(c.Method(), c.Path())
}

func routeNotMatched(c *fiber.Ctx) error {
	return util.NewRouteNotMatched(c.Method(), c.Path())
}
