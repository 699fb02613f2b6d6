package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/user"
	"bookshelf-backend/pkg/hash"
)

// userService implements user.Service. It is stateless: every call builds
// its result from the repository, nothing is shared between requests.
type userService struct {
	repo   user.Repository
	hasher hash.Hasher
}

func NewUserService(repo user.Repository, hasher hash.Hasher) user.Service {
	return &userService{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]user.User, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return true, nil
}

// Register hashes the password before anything is persisted. The caller is
// expected to have run the uniqueness check already; Register itself does
// not repeat it, so the check-then-write pair stays non-atomic.
func (s *userService) Register(ctx context.Context, email, password, fullName string) (*user.User, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return newUser, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, email, fullName string) error {
	return s.repo.Update(ctx, &user.User{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		UpdatedAt: time.Now(),
	})
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
