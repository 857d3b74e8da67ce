package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/adhd-assistant/api/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection pool through the pgx
// stdlib driver and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Error().Err(err).Msg("error occurred during connection to PostgreSQL")
		return nil, errors.Join(ErrUnableToConnectToDB, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("PostgreSQL is unreachable")
		return nil, errors.Join(ErrUnableToConnectToDB, err)
	}

	return &DB{DB: conn, dialect: "pgx", logger: log}, nil
}

func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
