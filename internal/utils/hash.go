package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from a plaintext password.
//
// cost is the bcrypt cost factor; zero or any value below bcrypt.MinCost
// selects bcrypt.DefaultCost. Because bcrypt embeds a per-call random salt,
// hashing the same password twice produces two different strings, both of
// which verify correctly.
//
// Returns an error only if the underlying library fails (e.g. the cost is
// above bcrypt.MaxCost).
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password, hashed with the salt and cost
// embedded in hash, matches hash.
//
// Any failure (wrong password, malformed or truncated hash) yields false;
// the function never returns an error or panics. The comparison itself is
// constant-time inside bcrypt.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
