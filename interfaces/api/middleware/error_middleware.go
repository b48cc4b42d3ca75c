package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager/pkg/apperror"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// ErrorHandler is the single place errors become HTTP responses.
// Application errors map through their kind; anything unrecognized is
// logged and surfaced as a generic 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			if appErr.Kind == apperror.KindInternal {
				logger.ErrorContext(c.UserContext(), "Internal error",
					"method", c.Method(),
					"path", c.Path(),
					"error", appErr.Error(),
				)
				return c.Status(appErr.HTTPStatus()).JSON(utils.MessageResponse{Message: appErr.Message})
			}

			if appErr.Kind == apperror.KindValidation {
				return c.Status(appErr.HTTPStatus()).JSON(utils.ValidationFailedResponse{
					Message: appErr.Message,
					Errors:  appErr.Fields,
				})
			}

			return c.Status(appErr.HTTPStatus()).JSON(utils.MessageResponse{Message: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(utils.MessageResponse{Message: fiberErr.Message})
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.MessageResponse{Message: "Internal server error"})
	}
}
