package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated at creation
	// and immutable afterwards.
	ID uuid.UUID `json:"id"`

	// Email is the unique login identifier. Stored case-sensitive.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Username is an optional display name, 2-50 characters when present.
	Username *string `json:"username,omitempty"`

	// IsActive reports whether the account may log in and use tokens.
	// Defaults to true; a disabled account cannot obtain or use tokens.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the record.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch describes a partial update of a user record. Only non-nil
// fields are applied; updated_at is refreshed regardless.
//
// IsActive is not reachable from the HTTP surface. It exists for
// administrative tooling and for exercising the disabled-account paths.
type UserPatch struct {
	Username *string
	IsActive *bool
}

// IsEmpty reports whether the patch carries no field changes.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.IsActive == nil
}
