package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, creatorID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// UpdateTask replaces title, description, status, priority and
	// assignee unconditionally and refreshes UpdatedAt.
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	// DeleteTask reports false when the id did not exist.
	DeleteTask(ctx context.Context, id uuid.UUID) (bool, error)
	ListTasks(ctx context.Context, status *models.TaskStatus, assigneeID *uuid.UUID) ([]*models.Task, error)
}
