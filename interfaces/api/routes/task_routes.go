package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
	"taskmanager/pkg/config"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	tasks := api.Group("/tasks", middleware.Protected(cfg.JWT))

	tasks.Get("/", h.TaskHandler.List)
	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/:id", h.TaskHandler.Get)
	tasks.Put("/:id", h.TaskHandler.Update)
	tasks.Delete("/:id", middleware.AdminOnly(), h.TaskHandler.Delete)
}
