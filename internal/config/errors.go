package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key, an unsupported signing
	// algorithm, or non-positive token lifetimes).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
