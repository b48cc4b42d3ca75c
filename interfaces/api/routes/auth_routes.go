package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/infrastructure/redis"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/interfaces/api/middleware"
	"taskmanager/pkg/config"
)

// SetupAuthRoutes registers the public auth endpoints. Both sit behind
// the rate limiter so credential stuffing burns out fast.
func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config, limiter *redis.Limiter) {
	auth := api.Group("/auth", middleware.RateLimit(limiter, cfg.RateLimit))

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
}
