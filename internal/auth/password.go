package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt embeds a fresh random salt and the cost factor in every hash it
// produces, so verification needs nothing beyond the stored hash itself.
const hashCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of the plaintext password.
// The plaintext must never be stored or logged.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a plaintext password against a stored hash.
// The comparison inside bcrypt is constant-time; a nil error means match.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
