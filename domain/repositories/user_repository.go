package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// UserRepository lookups return (nil, nil) when no row matches;
// errors are reserved for store failures.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmailOrUsername matches the email exactly and the
	// username case-insensitively.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}
