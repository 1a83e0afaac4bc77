// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"commentbox/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user using the provided DBExecutor. A username
	// collision is reported as util.ErrDuplicateEntry.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
}
