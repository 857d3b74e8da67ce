package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/adhd-assistant/api/models"
)

// AuthService is the authentication engine: account registration,
// credential login, token refresh and profile management.
type AuthService interface {
	// Register validates the submitted credentials, hashes the password and
	// creates the account. Returns ErrEmailAlreadyExists for a taken email
	// and a validation error (wrapping ErrInvalidDataProvided) for weak
	// passwords, malformed emails or out-of-range usernames.
	Register(ctx context.Context, email, password string, username *string) (models.User, error)

	// Login verifies the credentials and issues a fresh access/refresh
	// token pair. Absent user, wrong password and deactivated account all
	// collapse into ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	// Any failure collapses into ErrInvalidToken.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// CurrentUser resolves an access token into the active user it was
	// issued for. Any failure collapses into ErrInvalidToken.
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)

	// UpdateProfile changes the mutable profile fields of the user and
	// returns the updated record.
	UpdateProfile(ctx context.Context, userID uuid.UUID, username *string) (models.User, error)
}
