// internal/repository/user_repo.go
package repository

import (
	"context"

	"rideflow/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, q DBExecutor, id string) (*domain.User, error)
	// GetUserByEmail retrieves a user by their unique email.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
