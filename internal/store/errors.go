package store

import "errors"

var (
	ErrUnableToConnectToDB = errors.New("unable to connect to database")
	ErrUnsupportedDSN      = errors.New("unsupported database DSN")
	ErrEmailAlreadyTaken   = errors.New("email is already taken")
	ErrNoUserWasFound      = errors.New("no user was found")
)

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}
