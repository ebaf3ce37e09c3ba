package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/adapter"
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/metrics"
	"github.com/MKhiriev/go-user-registry/models"
)

type dbConfigResolver struct {
	secrets adapter.SecretsAdapter

	db            config.DB
	vaultRequired bool

	mu     sync.Mutex
	cached *models.DatabaseConfig

	logger *logger.Logger
}

// NewDBConfigResolver builds a resolver that reads credentials through
// secrets and combines them with the connection parameters of dbCfg.
//
// When the secrets manager fails, the resolver falls back to dbCfg.User and
// dbCfg.Password unless vaultCfg.Required is set.
func NewDBConfigResolver(secrets adapter.SecretsAdapter, dbCfg config.DB, vaultCfg config.Vault, logger *logger.Logger) DBConfigResolver {
	return &dbConfigResolver{
		secrets:       secrets,
		db:            dbCfg,
		vaultRequired: vaultCfg.Required,
		logger:        logger,
	}
}

// Resolve returns the cached configuration if one exists. Otherwise it asks
// the secrets manager for credentials and caches the result, including an
// environment fallback. An error is returned (and nothing cached) only when
// the fallback is disabled.
func (r *dbConfigResolver) Resolve(ctx context.Context) (models.DatabaseConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return *r.cached, nil
	}

	resolved := models.DatabaseConfig{
		Driver:   r.db.Driver,
		Host:     r.db.Host,
		Port:     r.db.Port,
		Database: r.db.Name,
		SSLMode:  r.db.SSLMode,
	}

	creds, err := r.secrets.ReadDBCredentials(ctx)
	switch {
	case err == nil:
		resolved.User = creds.Username
		resolved.Password = creds.Password
		resolved.Source = models.DBConfigSourceVault
		metrics.DBConfigFallback.Set(0)

		r.logger.Info().Str("func", "*dbConfigResolver.Resolve").
			Str("source", resolved.Source).
			Msg("database credentials read from vault")

	case r.vaultRequired:
		r.logger.Err(err).Str("func", "*dbConfigResolver.Resolve").
			Msg("failed to read database credentials from vault and fallback is disabled")
		return models.DatabaseConfig{}, fmt.Errorf("%w: %w", ErrConfigUnavailable, err)

	default:
		r.logger.Err(err).Str("func", "*dbConfigResolver.Resolve").
			Msg("failed to read database credentials from vault")

		resolved.User = r.db.User
		resolved.Password = r.db.Password
		resolved.Source = models.DBConfigSourceEnv
		metrics.DBConfigFallback.Set(1)

		r.logger.Warn().Str("func", "*dbConfigResolver.Resolve").
			Str("source", resolved.Source).
			Str("user", resolved.User).
			Msg("using database credentials from environment")
	}

	r.cached = &resolved
	return resolved, nil
}
