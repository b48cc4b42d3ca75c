package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/domain/dto"
	"taskmanager/domain/services"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and returns a token immediately; no
// separate login round-trip is needed after signing up.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation(apperror.FieldError{Field: "request", Message: "Invalid request body"})
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return apperror.Validation(utils.GetValidationErrors(err)...)
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation(apperror.FieldError{Field: "request", Message: "Invalid request body"})
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return apperror.Validation(utils.GetValidationErrors(err)...)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, resp)
}
