package config

import (
	"time"
)

// Defaults applied by [configBuilder.build] to fields left unset by every
// configuration source.
const (
	// DefaultTokenAlgorithm is the only signing algorithm the service accepts.
	DefaultTokenAlgorithm = "HS256"

	// DefaultAccessTokenTTL is the lifetime of a newly issued access token.
	DefaultAccessTokenTTL = 30 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of a newly issued refresh token.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = "localhost:8080"

	// DefaultRequestTimeout bounds the handling of a single inbound request.
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// authentication backend. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token secrets, algorithm,
	// token lifetimes, and password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and credential hashing.
type App struct {
	// TokenSignKey is the secret key used to sign and verify every JWT
	// issued by the service. Must be kept confidential. Rotating it
	// invalidates all outstanding tokens.
	// Env: APP_SECRET_KEY
	TokenSignKey string `env:"SECRET_KEY"`

	// TokenAlgorithm is the JWT signing algorithm. Only "HS256" is
	// accepted; the field exists so that a misconfigured deployment fails
	// loudly at startup instead of silently signing with the wrong method.
	// Env: APP_ALGORITHM
	TokenAlgorithm string `env:"ALGORITHM"`

	// AccessTokenTTL specifies how long an access token remains valid
	// after issuance (e.g. "30m").
	// Env: APP_ACCESS_TOKEN_TTL
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL"`

	// RefreshTokenTTL specifies how long a refresh token remains valid
	// after issuance (e.g. "168h" for 7 days).
	// Env: APP_REFRESH_TOKEN_TTL
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`

	// BcryptCost is the bcrypt cost factor for password hashing.
	// Zero selects the library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Debug switches the log level to debug.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" scheme selects the pgx driver; a plain file path or
	// "sqlite://" prefix selects the SQLite driver (local development).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the cross-origin hosts permitted by the CORS
	// middleware. Comma-separated in the environment variable.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source receive the package defaults before
// validation runs.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
