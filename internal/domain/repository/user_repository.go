// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vendir/internal/domain/entity"
	"vendir/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateMobile is returned when the mobile number is already registered.
	ErrDuplicateMobile = errors.New("mobile number already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateUserRole changes a user's role.
	UpdateUserRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// DeleteUser removes a user row. Dependent vendor data must be removed
	// first inside the same transaction.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ListUsers returns all users ordered by creation time descending.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
