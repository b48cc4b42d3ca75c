package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/policy"
	"taskmanager/domain/services"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns tasks filtered by optional status and assigneeId query
// parameters. The assignee filter is scoped through the policy: USER
// actors only ever see their own assignments, whatever they ask for.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	var status *models.TaskStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseTaskStatus(raw)
		if err != nil {
			return apperror.Validation(apperror.FieldError{
				Field:   "status",
				Message: "status must be one of: PENDING, IN_PROGRESS, COMPLETED, CANCELLED",
			})
		}
		status = &parsed
	}

	var requested *uuid.UUID
	if raw := c.Query("assigneeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return apperror.Validation(apperror.FieldError{
				Field:   "assigneeId",
				Message: "assigneeId must be a valid UUID",
			})
		}
		requested = &parsed
	}

	scope := policy.ListTasksScope(actor, requested)

	tasks, err := h.taskService.ListTasks(c.UserContext(), status, scope)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// Get checks existence before authorization: an actor probing a missing
// id gets 404, an actor probing someone else's task gets 403.
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.UserContext(), id)
	if err != nil {
		return err
	}

	if !policy.CanViewTask(actor, task) {
		return apperror.Forbidden("You can only view tasks assigned to you")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	if !policy.CanCreateTask(actor) {
		return apperror.Forbidden("")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation(apperror.FieldError{Field: "request", Message: "Invalid request body"})
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return apperror.Validation(utils.GetValidationErrors(err)...)
	}

	task, err := h.taskService.CreateTask(c.UserContext(), actor.UserID, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// Update is gated by the task's creator, not its assignee. The payload
// is validated before the task is loaded, so a malformed request yields
// 400 even for ids that do not exist.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	actor, err := utils.GetActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation(apperror.FieldError{Field: "request", Message: "Invalid request body"})
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return apperror.Validation(utils.GetValidationErrors(err)...)
	}

	task, err := h.taskService.GetTask(c.UserContext(), id)
	if err != nil {
		return err
	}

	if !policy.CanUpdateTask(actor, task) {
		return apperror.Forbidden("You can only update tasks you created")
	}

	updated, err := h.taskService.UpdateTask(c.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(updated))
}

// Delete is admin-only; the role gate sits on the route. A miss on an
// existing role still returns 404 when the id is unknown.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	deleted, err := h.taskService.DeleteTask(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Task not found")
	}

	return utils.NoContentResponse(c)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation(apperror.FieldError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	return id, nil
}
