package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/adhd-assistant/api/models"
)

// UserRepository is the data-access contract for user accounts. All
// operations are atomic single-record reads and writes; the unique index
// on email is the authoritative guard against duplicate registration.
type UserRepository interface {
	// CreateUser inserts a new user record with a freshly generated ID and
	// returns the persisted record. Returns ErrEmailAlreadyTaken when the
	// email is already registered.
	CreateUser(ctx context.Context, email, passwordHash string, username *string) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateUser applies the non-nil fields of patch to the record,
	// refreshes updated_at, and returns the persisted post-update record.
	UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error)

	// EmailExists reports whether a user with the given email is registered.
	// A best-effort pre-check: the unique index remains the final arbiter
	// at insert time.
	EmailExists(ctx context.Context, email string) (bool, error)
}
