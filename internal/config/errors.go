package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration cannot be used to start the service.
var (
	// ErrInvalidServerPort indicates an HTTP port outside 1..65535.
	ErrInvalidServerPort = errors.New("invalid server port")
	// ErrInvalidDBPort indicates a database port outside 1..65535.
	ErrInvalidDBPort = errors.New("invalid database port")
	// ErrUnsupportedDBDriver indicates a driver other than pgx or sqlite3.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrEmptyDBName indicates an empty database name (or sqlite file path).
	ErrEmptyDBName = errors.New("database name is empty")
	// ErrEmptyVaultSecretPath indicates an empty KV secret path.
	ErrEmptyVaultSecretPath = errors.New("vault secret path is empty")
)
