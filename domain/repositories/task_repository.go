package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// TaskRepository lookups return (nil, nil) when no row matches;
// errors are reserved for store failures.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// Delete reports how many rows were removed; zero means the id
	// did not exist.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// List filters by exact status and/or assignee; nil means
	// unfiltered. Order is the store's natural order.
	List(ctx context.Context, status *models.TaskStatus, assigneeID *uuid.UUID) ([]*models.Task, error)
}
