package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/adhd-assistant/api/internal/logger"
)

// NewConnectSQLite opens a SQLite database file, creating it when absent.
// Used for local development and integration testing; the query layer is
// shared with PostgreSQL.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")

	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("unable to create SQLite database file")
		return nil, errors.Join(ErrUnableToConnectToDB, err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Error().Err(err).Msg("error occurred during connection to SQLite")
		return nil, errors.Join(ErrUnableToConnectToDB, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("SQLite database is unreachable")
		return nil, errors.Join(ErrUnableToConnectToDB, err)
	}

	return &DB{DB: conn, dialect: "sqlite3", logger: log}, nil
}

func createLocalDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	return file.Close()
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
