// Package cryptox wraps the password hashing primitive used for stored
// credentials.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt hashes.
const MaxPasswordBytes = 72

var (
	// ErrMismatch is returned by Compare when the password does not match.
	ErrMismatch = errors.New("password mismatch")
	// ErrTooLong is returned by Hash for passwords over MaxPasswordBytes.
	ErrTooLong = errors.New("password exceeds 72 bytes")
)

// PasswordHasher hashes and checks passwords with bcrypt.
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher returns a hasher with the given bcrypt cost. A cost
// outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// equal-cost hash compared against when the account does not exist
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)

	return &PasswordHasher{cost: cost, dummy: dummy}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports ErrMismatch when password does not produce hash. Any
// other error means the stored hash is unusable.
func (h *PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// CompareDummy burns the same time as a real Compare. Used on lookups of
// unknown accounts so response timing does not reveal registered emails.
func (h *PasswordHasher) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}
