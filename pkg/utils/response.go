package utils

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/policy"
	"taskmanager/pkg/apperror"
)

// Response bodies are the resource representations themselves; errors
// use the two shapes below, rendered by the error-handler middleware.

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationFailedResponse struct {
	Message string               `json:"message"`
	Errors  []apperror.FieldError `json:"errors"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// GetActor returns the authenticated actor placed in locals by the auth
// middleware.
func GetActor(c *fiber.Ctx) (policy.Actor, error) {
	actor, ok := c.Locals("actor").(*policy.Actor)
	if !ok || actor == nil {
		return policy.Actor{}, apperror.Unauthorized("")
	}
	return *actor, nil
}
