package routes

import (
	"devcollab/internal/delivery/http/handler"
	"devcollab/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed handlers and middleware the route tree
// needs; the app container owns their wiring.
type Deps struct {
	Health *handler.HealthHandler
	Match  *handler.MatchHandler
	Auth   *middleware.AuthMiddleware
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	deps.Health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	protected := v1.Group("", deps.Auth.Middleware())
	deps.Match.RegisterRoutes(protected.Group("/matches"))
}
