package store

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/adhd-assistant/api/models"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, username)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, username, is_active, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, username, is_active, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, username, is_active, created_at, updated_at
    FROM users
    WHERE id = $1;`
)

// buildUpdateUserQuery assembles an UPDATE statement covering only the
// fields present in the patch. Dollar placeholders are understood by both
// supported drivers.
func buildUpdateUserQuery(id uuid.UUID, patch models.UserPatch, now time.Time) (string, []any, error) {
	builder := squirrel.Update(models.User{}.TableName()).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, email, password_hash, username, is_active, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if patch.Username != nil {
		builder = builder.Set("username", *patch.Username)
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
	}

	return builder.ToSql()
}
