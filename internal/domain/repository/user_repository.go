// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user session records.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUser overwrites an existing user record.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes a user record. Orders referencing the user are
	// untouched; history is append-only.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
