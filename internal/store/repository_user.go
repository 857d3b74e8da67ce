package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository returns a UserRepository backed by the given database.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) CreateUser(ctx context.Context, email, passwordHash string, username *string) (models.User, error) {
	log := logger.FromContext(ctx)

	id := uuid.New()
	row := r.db.QueryRowContext(ctx, createUser, id, email, passwordHash, username)
	if err := row.Err(); err != nil {
		if isUniqueViolation(err) {
			log.Info().Str("email", email).Msg("attempt to register an already taken email")
			return models.User{}, ErrEmailAlreadyTaken
		}
		log.Error().Err(err).Msg("error occurred during user insert")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			log.Info().Str("email", email).Msg("attempt to register an already taken email")
			return models.User{}, ErrEmailAlreadyTaken
		}
		log.Error().Err(err).Msg("error occurred during user insert")
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Err(); err != nil {
		log.Error().Err(err).Msg("error occurred during user lookup by email")
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Error().Err(err).Msg("error occurred during user lookup by email")
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, id)
	if err := row.Err(); err != nil {
		log.Error().Err(err).Msg("error occurred during user lookup by id")
		return models.User{}, fmt.Errorf("find user by id: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Error().Err(err).Msg("error occurred during user lookup by id")
		return models.User{}, fmt.Errorf("find user by id: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, patch, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("error occurred during update query build")
		return models.User{}, fmt.Errorf("build update user query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Error().Err(err).Msg("error occurred during user update")
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Error().Err(err).Msg("error occurred during user update")
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNoUserWasFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Username,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	return user, err
}
