package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/models"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/config"
	"taskmanager/pkg/utils"
)

// Protected validates the Bearer token and stores the resulting actor in
// locals for handlers and role middleware.
func Protected(cfg config.JWTConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized("Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return apperror.Unauthorized("Invalid authorization header format")
		}

		actor, err := utils.ValidateToken(token, cfg)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return apperror.Unauthorized("Token has expired")
			default:
				return apperror.Unauthorized("Invalid token")
			}
		}

		c.Locals("actor", actor)

		return c.Next()
	}
}

// RequireRole rejects authenticated actors that do not hold the role.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := utils.GetActor(c)
		if err != nil {
			return err
		}

		if actor.Role != role {
			return apperror.Forbidden("Insufficient permissions")
		}

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}
