package store

import (
	"context"
	"strings"

	"github.com/adhd-assistant/api/internal/config"
	"github.com/adhd-assistant/api/internal/logger"
)

// Repositories bundles all data-access repositories behind one handle.
type Repositories struct {
	UserRepository

	db *DB
}

// NewRepositories connects to the database named by the storage DSN, runs
// pending migrations and wires the repositories. The DSN scheme selects
// the driver: postgres:// and postgresql:// open PostgreSQL, everything
// else is treated as a SQLite file path.
func NewRepositories(ctx context.Context, cfg config.DB, log *logger.Logger) (*Repositories, error) {
	db, err := connect(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Error().Err(err).Msg("error occurred during database migration")
		return nil, err
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.db.Close()
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}
