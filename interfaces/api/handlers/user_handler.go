package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/policy"
	"taskmanager/domain/services"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetAll lists the directory, always as an array. With a userId query
// parameter the result narrows to that one user; USER actors are
// narrowed to themselves no matter what they request, and only admins
// may list everyone.
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	var requested *uuid.UUID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return apperror.Validation(apperror.FieldError{
				Field:   "userId",
				Message: "userId must be a valid UUID",
			})
		}
		requested = &parsed
	}

	target := policy.ListUsersTarget(actor, requested)

	if target == nil {
		if !policy.CanListAllUsers(actor) {
			return apperror.Forbidden("You can only view your own profile")
		}

		users, err := h.userService.ListUsers(c.UserContext())
		if err != nil {
			return err
		}
		return utils.SuccessResponse(c, dto.UsersToUserResponses(users))
	}

	user, err := h.userService.GetUser(c.UserContext(), *target)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, []dto.UserResponse{*dto.UserToUserResponse(user)})
}

// GetByID checks existence before authorization, matching the task
// read path: missing ids 404 for everyone, foreign profiles 403.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.Validation(apperror.FieldError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}

	if !policy.CanViewUser(actor, user) {
		return apperror.Forbidden("You can only view your own profile")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
