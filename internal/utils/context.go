// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// JWT token generation and validation, and HTTP response writing.
package utils

import (
	"context"

	"github.com/adhd-assistant/api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the resolved user for the lifetime of a request. Used together
// with GetCurrentUserFromContext for type-safe retrieval.
var CurrentUserCtxKey = contextKey("currentUser")

// GetCurrentUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: a user was stored by the auth middleware
//   - ok == false: value is missing or has an unexpected type
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
