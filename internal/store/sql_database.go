package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/migrations"
	"github.com/MKhiriev/go-user-registry/models"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a database/sql pool together with its driver name and the
// driver-specific error classification.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the store selected by cfg.Driver.
// For SQLite cfg.Database is the file path (or ":memory:").
func NewConnect(ctx context.Context, cfg models.DatabaseConfig, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.Database, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate ensures the schema exists by applying the embedded migrations of
// the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Ping runs a trivial query against the store.
func (db *DB) Ping(ctx context.Context) error {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == config.DriverPostgres {
		return sq.Dollar
	}

	return sq.Question
}
