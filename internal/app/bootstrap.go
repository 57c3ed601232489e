package app

import (
	"fmt"
	"strings"

	"devcollab/internal/delivery/http/handler"
	"devcollab/internal/delivery/http/middleware"
	"devcollab/internal/delivery/http/routes"
	"devcollab/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret)

	routes.Register(f, routes.Deps{
		Health: handler.NewHealthHandler(c.DB),
		Match:  handler.NewMatchHandler(c.Matches),
		Auth:   middleware.NewAuthMiddleware(jwtSvc),
	})

	return &App{Fiber: f, Container: c}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
