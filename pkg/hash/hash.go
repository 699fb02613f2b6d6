// Package hash wraps bcrypt behind a small interface so that services
// depend on a credential hasher, not on a specific algorithm.
package hash

import "golang.org/x/crypto/bcrypt"

// bcrypt cost 12: slow enough to resist brute force, fast enough per request.
const cost = 12

// Hasher computes and verifies salted one-way password hashes.
type Hasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when the password matches the stored hash.
	// The comparison is constant-time.
	Compare(hashed, password string) error
}

type bcryptHasher struct{}

// NewBcrypt returns the bcrypt-backed Hasher used in production.
func NewBcrypt() Hasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (bcryptHasher) Compare(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
