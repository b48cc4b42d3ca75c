package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/infrastructure/redis"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config, limiter *redis.Limiter) {
	// Setup health and root routes
	SetupHealthRoutes(app, cfg)

	// API group
	api := app.Group("/api")

	// Setup all route groups
	SetupAuthRoutes(api, h, cfg, limiter)
	SetupTaskRoutes(api, h, cfg)
	SetupUserRoutes(api, h, cfg)
}
