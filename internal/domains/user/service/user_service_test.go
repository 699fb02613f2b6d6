package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/user"
)

// memoryRepository is an in-memory user.Repository for unit tests.
type memoryRepository struct {
	users   []*user.User
	failAll error
}

func (m *memoryRepository) List(_ context.Context, offset, limit int) ([]user.User, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	if offset >= len(m.users) {
		return []user.User{}, nil
	}
	end := offset + limit
	if end > len(m.users) {
		end = len(m.users)
	}
	page := make([]user.User, 0, end-offset)
	for _, u := range m.users[offset:end] {
		page = append(page, *u)
	}
	return page, nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memoryRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memoryRepository) Create(_ context.Context, u *user.User) error {
	if m.failAll != nil {
		return m.failAll
	}
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryRepository) Update(_ context.Context, u *user.User) error {
	if m.failAll != nil {
		return m.failAll
	}
	for _, existing := range m.users {
		if existing.ID == u.ID {
			existing.Email = u.Email
			existing.FullName = u.FullName
			existing.UpdatedAt = u.UpdatedAt
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if m.failAll != nil {
		return m.failAll
	}
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

// fakeHasher keeps tests fast and makes stored hashes easy to assert on.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, fakeHasher{})
}

func TestRegisterHashesPasswordBeforePersist(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), "amy@example.com", "s3cret-pass", "Amy Pond")
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.Equal(t, "hashed:s3cret-pass", stored.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.Equal(t, u.ID, stored.ID)
	assert.Equal(t, "Amy Pond", stored.FullName)
}

func TestEmailExists(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo)

	exists, err := svc.EmailExists(context.Background(), "amy@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Register(context.Background(), "amy@example.com", "s3cret-pass", "Amy Pond")
	require.NoError(t, err)

	exists, err = svc.EmailExists(context.Background(), "amy@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// Case-sensitive as stored.
	exists, err = svc.EmailExists(context.Background(), "AMY@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmailExistsPropagatesStorageErrors(t *testing.T) {
	boom := fmt.Errorf("connection refused")
	svc := newTestService(&memoryRepository{failAll: boom})

	_, err := svc.EmailExists(context.Background(), "amy@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAuthenticate(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "amy@example.com", "s3cret-pass", "Amy Pond")
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "amy@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "amy@example.com", u.Email)

	// Unknown email and wrong password yield the same sentinel so callers
	// cannot tell which one happened.
	_, errUnknown := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret-pass")
	_, errWrong := svc.Authenticate(context.Background(), "amy@example.com", "wrong-pass")
	assert.ErrorIs(t, errUnknown, user.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, user.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestUpdateAndDelete(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), "amy@example.com", "s3cret-pass", "Amy Pond")
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), u.ID, "amy.pond@example.com", "Amelia Pond"))

	updated, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "amy.pond@example.com", updated.Email)
	assert.Equal(t, "Amelia Pond", updated.FullName)
	// Update never touches the stored credential.
	assert.Equal(t, "hashed:s3cret-pass", updated.PasswordHash)

	require.NoError(t, svc.Delete(context.Background(), u.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), u.ID), user.ErrUserNotFound)
}

// The uniqueness pre-check and the insert are two separate operations with
// no lock or transaction between them. Two registrations that both pass the
// check before either writes will both be persisted. This test pins that
// down as a known boundary condition, not as a guaranteed invariant.
func TestUniquenessCheckThenWriteIsNotAtomic(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo)

	ctx := context.Background()

	existsA, err := svc.EmailExists(ctx, "race@example.com")
	require.NoError(t, err)
	existsB, err := svc.EmailExists(ctx, "race@example.com")
	require.NoError(t, err)
	assert.False(t, existsA)
	assert.False(t, existsB)

	_, err = svc.Register(ctx, "race@example.com", "password-one", "First Caller")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "race@example.com", "password-two", "Second Caller")
	require.NoError(t, err)

	all, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2, "duplicate emails can slip through between check and write")
}
