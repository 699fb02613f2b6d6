package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for the user collection. All methods
// are pass-throughs to the store: failures propagate to the caller
// unmodified and nothing is retried.
type Repository interface {
	// List returns a page of users in insertion order. An offset past the
	// end of the collection yields an empty slice, not an error.
	List(ctx context.Context, offset, limit int) ([]User, error)

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail matches the stored email case-sensitively and returns
	// ErrUserNotFound when absent. Used for login and uniqueness checks.
	FindByEmail(ctx context.Context, email string) (*User, error)

	Create(ctx context.Context, u *User) error

	// Update persists email and full name only; returns ErrUserNotFound
	// when no row matched.
	Update(ctx context.Context, u *User) error

	// Delete removes the row permanently; returns ErrUserNotFound when no
	// row matched, so a second delete of the same id fails.
	Delete(ctx context.Context, id uuid.UUID) error
}
