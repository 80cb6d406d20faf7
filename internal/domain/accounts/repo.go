package accounts

import (
	"context"

	"dentman/internal/core/id"
)

// Repository defines the interface for User persistence.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, id id.ID) (*User, error)

	// GetByEmail retrieves user by email (unique).
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update modifies an existing user (with optimistic locking).
	Update(ctx context.Context, user *User) error

	// ExistsByEmail checks if a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
