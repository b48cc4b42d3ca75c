package ports

import (
	"context"

	"taskmanager/domain/models"
)

// TaskEventPublisher emits task lifecycle events after successful
// mutations. Implementations must not fail the mutation: publish
// errors are logged and swallowed.
type TaskEventPublisher interface {
	TaskCreated(ctx context.Context, task *models.Task)
	TaskUpdated(ctx context.Context, task *models.Task)
	TaskDeleted(ctx context.Context, task *models.Task)
}
