package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract above the repository. It has no
// HTTP knowledge; handlers translate its errors to statuses.
type Service interface {
	List(ctx context.Context, offset, limit int) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists is the uniqueness pre-check. It is not atomic with the
	// subsequent write: two concurrent registrations for the same email
	// can both pass it. Accepted and documented, not silently fixed.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Register hashes the password and persists the new user.
	Register(ctx context.Context, email, password, fullName string) (*User, error)

	// Authenticate returns ErrInvalidCredentials for an unknown email and
	// for a wrong password alike.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	Update(ctx context.Context, id uuid.UUID, email, fullName string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
