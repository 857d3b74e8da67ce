package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/internal/store"
	"github.com/adhd-assistant/api/internal/utils"
	"github.com/adhd-assistant/api/models"
)

type authService struct {
	logger *logger.Logger
	users  store.UserRepository
	cfg    config.App
}

// NewAuthService returns an AuthService backed by the given user repository.
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{users: users, cfg: cfg, logger: logger}
}

func (s *authService) Register(ctx context.Context, email, password string, username *string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return models.User{}, err
	}
	if username != nil {
		if err := validateUsername(*username); err != nil {
			return models.User{}, err
		}
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	passwordHash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("error occurred during password hashing")
		return models.User{}, err
	}

	user, err := s.users.CreateUser(ctx, email, passwordHash, username)
	if err != nil {
		// the unique index is the arbiter when two registrations race
		if errors.Is(err, store.ErrEmailAlreadyTaken) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("new user registered")

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		return models.TokenPair{}, err
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		log.Info().Str("user_id", user.ID.String()).Msg("login attempt with wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Str("user_id", user.ID.String()).Msg("login attempt for deactivated account")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return s.issueTokenPair(user.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	user, err := s.resolveUserFromToken(ctx, refreshToken, models.RefreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}

	return s.issueTokenPair(user.ID)
}

func (s *authService) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	return s.resolveUserFromToken(ctx, accessToken, models.AccessToken)
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, username *string) (models.User, error) {
	if username != nil {
		if err := validateUsername(*username); err != nil {
			return models.User{}, err
		}
	}

	user, err := s.users.UpdateUser(ctx, userID, models.UserPatch{Username: username})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}

	return user, nil
}

// resolveUserFromToken decodes the token, enforces the expected token type
// and loads the active user it was issued for. Token or account problems
// collapse into ErrInvalidToken; infrastructure errors pass through.
func (s *authService) resolveUserFromToken(ctx context.Context, tokenString string, want models.TokenType) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey)
	if err != nil {
		log.Info().Err(err).Msg("token failed validation")
		return models.User{}, ErrInvalidToken
	}

	if token.Type != want {
		log.Info().
			Str("got", string(token.Type)).
			Str("want", string(want)).
			Msg("token of wrong type presented")
		return models.User{}, ErrInvalidToken
	}

	user, err := s.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}

	if !user.IsActive {
		log.Info().Str("user_id", user.ID.String()).Msg("token presented for deactivated account")
		return models.User{}, ErrInvalidToken
	}

	return user, nil
}

func (s *authService) issueTokenPair(userID uuid.UUID) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(userID, models.AccessToken, s.cfg.AccessTokenTTL, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("error occurred during access token generation")
		return models.TokenPair{}, err
	}

	refresh, err := utils.GenerateJWTToken(userID, models.RefreshToken, s.cfg.RefreshTokenTTL, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("error occurred during refresh token generation")
		return models.TokenPair{}, err
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}
