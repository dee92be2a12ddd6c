package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing or invalid token, session or
	// password-hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver or
	// an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener or rate-limit
	// settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrClientServerURLRequired indicates the client has no server URL.
	ErrClientServerURLRequired = errors.New("client server URL is required")
	// ErrClientTimeoutInvalid indicates a non-positive client timeout.
	ErrClientTimeoutInvalid = errors.New("client request timeout must be positive")
)
