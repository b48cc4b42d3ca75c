package services

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// UserService is the read-only user directory. There are no user
// mutation endpoints.
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}
