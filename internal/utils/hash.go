package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing marks infrastructure-level hashing failures (malformed stored
// hash, cost out of range). A plain password mismatch is not an error.
var ErrHashing = errors.New("password hashing failed")

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(b), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
// A mismatch returns (false, nil); anything else wrong with the stored hash
// returns an ErrHashing-wrapped error. bcrypt's comparison is constant-time.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrHashing, err)
}
