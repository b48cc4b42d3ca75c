package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
	"taskmanager/pkg/config"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	users := api.Group("/users", middleware.Protected(cfg.JWT))

	users.Get("/", h.UserHandler.GetAll)
	users.Get("/:id", h.UserHandler.GetByID)
}
