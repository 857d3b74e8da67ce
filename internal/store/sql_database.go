package store

import (
	"database/sql"

	"github.com/adhd-assistant/api/internal/logger"
	"github.com/adhd-assistant/api/migrations"
)

// DB wraps a sql.DB handle together with the goose dialect of the driver
// it was opened with, so migrations run against the right SQL flavor.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
