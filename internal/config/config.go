// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// user registry service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener settings.
	Server Server

	// DB holds the relational database settings used when the secrets
	// manager cannot provide credentials, plus the non-secret connection
	// parameters (host, port, database name) that are always taken from here.
	DB DB `envPrefix:"DB_"`

	// Vault holds the secrets manager settings.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by GET /api/version.
	// When empty the build version injected at link time is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port the HTTP server listens on (all interfaces).
	// Env: PORT
	Port int `env:"PORT" envDefault:"3000"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "pgx" (PostgreSQL) or
	// "sqlite3" (local file, Name is the file path).
	// Env: DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"pgx"`

	// Host is the database server host name.
	// Env: DB_HOST
	Host string `env:"HOST" envDefault:"localhost"`

	// Port is the database server port.
	// Env: DB_PORT
	Port int `env:"PORT" envDefault:"5432"`

	// Name is the database name (or file path for sqlite3).
	// Env: DB_NAME
	Name string `env:"NAME" envDefault:"devops_assesment"`

	// User is the fallback database user.
	// Env: DB_USER
	User string `env:"USER" envDefault:"postgres"`

	// Password is the fallback database password. Never logged.
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD" envDefault:"q12345" json:"-"`

	// SSLMode is passed to the PostgreSQL driver as sslmode.
	// Env: DB_SSL_MODE
	SSLMode string `env:"SSL_MODE" envDefault:"disable"`

	// ProbeInterval is the period of the background database probe that
	// refreshes the registry_db_up gauge. Zero disables the probe.
	// Env: DB_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" envDefault:"15s"`
}

// Vault holds settings of the HashiCorp Vault secrets manager.
type Vault struct {
	// URL is the Vault server address.
	// Env: VAULT_URL
	URL string `env:"URL" envDefault:"http://localhost:8200"`

	// Token is the Vault access token sent as X-Vault-Token. Never logged.
	// Env: VAULT_TOKEN
	Token string `env:"TOKEN" json:"-"`

	// SecretPath is the KV v2 path of the database secret.
	// Env: VAULT_SECRET_PATH
	SecretPath string `env:"SECRET_PATH" envDefault:"secret/data/database"`

	// Timeout overrides the HTTP client timeout; zero keeps the client
	// library default.
	// Env: VAULT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Required disables the fallback to environment credentials.
	// Env: VAULT_REQUIRED
	Required bool `env:"REQUIRED"`
}

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
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
