package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p port the HTTP server listens on
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-db-driver database driver (pgx or sqlite3)
//	-db-host database host
//	-db-port database port
//	-db-name database name (file path for sqlite3)
//	-db-user fallback database user
//	-db-ssl-mode PostgreSQL sslmode
//	-vault-url Vault address
//	-vault-secret-path Vault KV v2 secret path
//	-vault-timeout Vault request timeout (e.g. "5s")
//	-vault-required fail startup instead of falling back to env credentials
//	-c/-config json file path with configs
//
// Secrets (DB_PASSWORD, VAULT_TOKEN) have no flags.
func ParseFlags() *StructuredConfig {
	var port, dbPort int
	var shutdownTimeout, vaultTimeout time.Duration
	var dbDriver, dbHost, dbName, dbUser, dbSSLMode string
	var vaultURL, vaultSecretPath string
	var vaultRequired bool
	var jsonConfigPath string

	flag.IntVar(&port, "p", 0, "HTTP server port")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	flag.StringVar(&dbHost, "db-host", "", "Database host")
	flag.IntVar(&dbPort, "db-port", 0, "Database port")
	flag.StringVar(&dbName, "db-name", "", "Database name")
	flag.StringVar(&dbUser, "db-user", "", "Fallback database user")
	flag.StringVar(&dbSSLMode, "db-ssl-mode", "", "PostgreSQL sslmode")
	flag.StringVar(&vaultURL, "vault-url", "", "Vault address")
	flag.StringVar(&vaultSecretPath, "vault-secret-path", "", "Vault KV v2 secret path")
	flag.DurationVar(&vaultTimeout, "vault-timeout", 0, "Vault request timeout (e.g., 5s)")
	flag.BoolVar(&vaultRequired, "vault-required", false, "Do not fall back to env credentials")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		DB: DB{
			Driver:  dbDriver,
			Host:    dbHost,
			Port:    dbPort,
			Name:    dbName,
			User:    dbUser,
			SSLMode: dbSSLMode,
		},
		Vault: Vault{
			URL:        vaultURL,
			SecretPath: vaultSecretPath,
			Timeout:    vaultTimeout,
			Required:   vaultRequired,
		},
		JSONFilePath: jsonConfigPath,
	}
}
