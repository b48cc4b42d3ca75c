package serviceimpl

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/ports"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.TaskEventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, creatorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	var fields []apperror.FieldError
	fields = appendTextViolations(fields, req.Title, req.Description)

	priority, err := models.ParseTaskPriority(req.Priority)
	if err != nil {
		fields = append(fields, apperror.FieldError{
			Field:   "Priority",
			Message: "Priority must be one of: LOW, MEDIUM, HIGH, URGENT",
		})
	}

	if req.AssigneeID == uuid.Nil {
		fields = append(fields, apperror.FieldError{Field: "AssigneeID", Message: "AssigneeID is required"})
	}

	if len(fields) > 0 {
		return nil, apperror.Validation(fields...)
	}

	now := time.Now().UTC()
	assigneeID := req.AssigneeID
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		AssigneeID:  &assigneeID,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, apperror.Internal(err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "creator_id", creatorID)

	if s.events != nil {
		s.events.TaskCreated(ctx, task)
	}

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "task_id", id, "error", err)
		return nil, apperror.Internal(err)
	}
	if task == nil {
		return nil, apperror.NotFound("Task not found")
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	var fields []apperror.FieldError
	fields = appendTextViolations(fields, req.Title, req.Description)

	status, err := models.ParseTaskStatus(req.Status)
	if err != nil {
		fields = append(fields, apperror.FieldError{
			Field:   "Status",
			Message: "Status must be one of: PENDING, IN_PROGRESS, COMPLETED, CANCELLED",
		})
	}

	priority, err := models.ParseTaskPriority(req.Priority)
	if err != nil {
		fields = append(fields, apperror.FieldError{
			Field:   "Priority",
			Message: "Priority must be one of: LOW, MEDIUM, HIGH, URGENT",
		})
	}

	if len(fields) > 0 {
		return nil, apperror.Validation(fields...)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "task_id", id, "error", err)
		return nil, apperror.Internal(err)
	}
	if task == nil {
		return nil, apperror.NotFound("Task not found")
	}

	// Full replace of the mutable fields; CreatorID and CreatedAt are
	// never rewritten.
	task.Title = req.Title
	task.Description = req.Description
	task.Status = status
	task.Priority = priority
	task.AssigneeID = req.AssigneeID
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, apperror.Internal(err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)

	if s.events != nil {
		s.events.TaskUpdated(ctx, task)
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "task_id", id, "error", err)
		return false, apperror.Internal(err)
	}
	if task == nil {
		return false, nil
	}

	rows, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return false, apperror.Internal(err)
	}
	if rows == 0 {
		return false, nil
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)

	if s.events != nil {
		s.events.TaskDeleted(ctx, task)
	}

	return true, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, status *models.TaskStatus, assigneeID *uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, status, assigneeID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, apperror.Internal(err)
	}
	return tasks, nil
}

// Limits count runes, matching the `max=` validator tags on the DTOs.
func appendTextViolations(fields []apperror.FieldError, title, description string) []apperror.FieldError {
	if title == "" {
		fields = append(fields, apperror.FieldError{Field: "Title", Message: "Title is required"})
	} else if utf8.RuneCountInString(title) > 200 {
		fields = append(fields, apperror.FieldError{Field: "Title", Message: "Title cannot exceed 200 characters"})
	}

	if description == "" {
		fields = append(fields, apperror.FieldError{Field: "Description", Message: "Description is required"})
	} else if utf8.RuneCountInString(description) > 1000 {
		fields = append(fields, apperror.FieldError{Field: "Description", Message: "Description cannot exceed 1000 characters"})
	}

	return fields
}
