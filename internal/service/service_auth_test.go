package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/store"
	"github.com/adhd-assistant/api/internal/utils"
	"github.com/adhd-assistant/api/models"
)

type mockUserRepository struct {
	createUser      func(ctx context.Context, email, passwordHash string, username *string) (models.User, error)
	findUserByEmail func(ctx context.Context, email string) (models.User, error)
	findUserByID    func(ctx context.Context, id uuid.UUID) (models.User, error)
	updateUser      func(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error)
	emailExists     func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, email, passwordHash string, username *string) (models.User, error) {
	return m.createUser(ctx, email, passwordHash, username)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmail(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.findUserByID(ctx, id)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error) {
	return m.updateUser(ctx, id, patch)
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExists(ctx, email)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:    "test-secret-key",
		TokenAlgorithm:  "HS256",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		BcryptCost:      bcrypt.MinCost,
	}
}

func newTestAuthService(users store.UserRepository) AuthService {
	return NewAuthService(users, testAppConfig(), logger.Nop())
}

func activeUser(id uuid.UUID, password string) models.User {
	hash, _ := utils.HashPassword(password, bcrypt.MinCost)
	return models.User{
		ID:           id,
		Email:        "dana@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func TestAuthService_Register(t *testing.T) {
	id := uuid.New()
	var gotHash string
	users := &mockUserRepository{
		emailExists: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createUser: func(ctx context.Context, email, passwordHash string, username *string) (models.User, error) {
			gotHash = passwordHash
			return models.User{ID: id, Email: email, PasswordHash: passwordHash, Username: username, IsActive: true}, nil
		},
	}
	svc := newTestAuthService(users)

	username := "dana"
	user, err := svc.Register(context.Background(), "dana@example.com", "Sup3r$ecret", &username)
	require.NoError(t, err)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.True(t, utils.VerifyPassword("Sup3r$ecret", gotHash))
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	users := &mockUserRepository{
		emailExists: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "dana@example.com", "Sup3r$ecret", nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Register_LostInsertRace(t *testing.T) {
	users := &mockUserRepository{
		emailExists: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createUser: func(ctx context.Context, email, passwordHash string, username *string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyTaken
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "dana@example.com", "Sup3r$ecret", nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Register_WeakPasswords(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name     string
		password string
		want     error
	}{
		{name: "too short", password: "Ab1!", want: ErrPasswordTooShort},
		{name: "too long", password: "Ab1!" + strings.Repeat("x", 125), want: ErrPasswordTooLong},
		{name: "no uppercase", password: "sup3r$ecret", want: ErrPasswordNoUppercase},
		{name: "no lowercase", password: "SUP3R$ECRET", want: ErrPasswordNoLowercase},
		{name: "no digit", password: "Super$ecret", want: ErrPasswordNoDigit},
		{name: "no symbol", password: "Sup3rSecret", want: ErrPasswordNoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), "dana@example.com", tt.password, nil)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, email := range []string{"", "not-an-email", "dana@", "Dana <dana@example.com>"} {
		_, err := svc.Register(context.Background(), email, "Sup3r$ecret", nil)
		assert.ErrorIs(t, err, ErrEmailIsNotValid, "email %q", email)
	}
}

func TestAuthService_Register_InvalidUsername(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, username := range []string{"x", strings.Repeat("x", 51)} {
		username := username
		_, err := svc.Register(context.Background(), "dana@example.com", "Sup3r$ecret", &username)
		assert.ErrorIs(t, err, ErrUsernameLengthOutOfRange)
	}
}

func TestAuthService_Login(t *testing.T) {
	id := uuid.New()
	users := &mockUserRepository{
		findUserByEmail: func(ctx context.Context, email string) (models.User, error) {
			return activeUser(id, "Sup3r$ecret"), nil
		},
	}
	svc := newTestAuthService(users)

	pair, err := svc.Login(context.Background(), "dana@example.com", "Sup3r$ecret")
	require.NoError(t, err)

	access, err := utils.ValidateAndParseJWTToken(pair.Access.SignedString, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, models.AccessToken, access.Type)
	assert.Equal(t, id, access.UserID)

	refresh, err := utils.ValidateAndParseJWTToken(pair.Refresh.SignedString, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, models.RefreshToken, refresh.Type)
	assert.Equal(t, id, refresh.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmail: func(ctx context.Context, email string) (models.User, error) {
			return activeUser(uuid.New(), "Sup3r$ecret"), nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "dana@example.com", "WrongPass1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmail: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "ghost@example.com", "Sup3r$ecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmail: func(ctx context.Context, email string) (models.User, error) {
			user := activeUser(uuid.New(), "Sup3r$ecret")
			user.IsActive = false
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "dana@example.com", "Sup3r$ecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	id := uuid.New()
	users := &mockUserRepository{
		findUserByID: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			require.Equal(t, id, userID)
			return activeUser(id, "Sup3r$ecret"), nil
		},
	}
	svc := newTestAuthService(users)

	refresh, err := utils.GenerateJWTToken(id, models.RefreshToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), refresh.SignedString)
	require.NoError(t, err)

	access, err := utils.ValidateAndParseJWTToken(pair.Access.SignedString, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, id, access.UserID)
	assert.Equal(t, models.AccessToken, access.Type)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	id := uuid.New()
	svc := newTestAuthService(&mockUserRepository{})

	access, err := utils.GenerateJWTToken(id, models.AccessToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	refresh, err := utils.GenerateJWTToken(uuid.New(), models.RefreshToken, -time.Second, "test-secret-key")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Refresh_DeactivatedAccount(t *testing.T) {
	id := uuid.New()
	users := &mockUserRepository{
		findUserByID: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			user := activeUser(id, "Sup3r$ecret")
			user.IsActive = false
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	refresh, err := utils.GenerateJWTToken(id, models.RefreshToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_CurrentUser(t *testing.T) {
	id := uuid.New()
	users := &mockUserRepository{
		findUserByID: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			return activeUser(id, "Sup3r$ecret"), nil
		},
	}
	svc := newTestAuthService(users)

	access, err := utils.GenerateJWTToken(id, models.AccessToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), access.SignedString)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestAuthService_CurrentUser_RefreshTokenRejected(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	refresh, err := utils.GenerateJWTToken(uuid.New(), models.RefreshToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), refresh.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_CurrentUser_MalformedToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.CurrentUser(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_CurrentUser_UnknownUser(t *testing.T) {
	users := &mockUserRepository{
		findUserByID: func(ctx context.Context, userID uuid.UUID) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	access, err := utils.GenerateJWTToken(uuid.New(), models.AccessToken, time.Hour, "test-secret-key")
	require.NoError(t, err)

	_, err = svc.CurrentUser(context.Background(), access.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	id := uuid.New()
	users := &mockUserRepository{
		updateUser: func(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (models.User, error) {
			require.Equal(t, id, userID)
			require.NotNil(t, patch.Username)
			require.Nil(t, patch.IsActive)
			user := activeUser(id, "Sup3r$ecret")
			user.Username = patch.Username
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	username := "dana-renamed"
	user, err := svc.UpdateProfile(context.Background(), id, &username)
	require.NoError(t, err)

	require.NotNil(t, user.Username)
	assert.Equal(t, "dana-renamed", *user.Username)
}

func TestAuthService_UpdateProfile_InvalidUsername(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	username := "x"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &username)
	assert.ErrorIs(t, err, ErrUsernameLengthOutOfRange)
}

func TestAuthService_UpdateProfile_UserGone(t *testing.T) {
	users := &mockUserRepository{
		updateUser: func(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	username := "dana"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &username)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
