package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/pkg/config"
)

func SetupHealthRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Server is running",
			"service": cfg.App.Name,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + cfg.App.Name,
			"version": "1.0.0",
			"docs":    "/api",
			"health":  "/health",
		})
	})
}
