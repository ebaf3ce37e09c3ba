// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidServerPort, cfg.Server.Port)
	}

	switch cfg.DB.Driver {
	case DriverPostgres:
		if cfg.DB.Port < 1 || cfg.DB.Port > maxPort {
			return fmt.Errorf("%w: %d", ErrInvalidDBPort, cfg.DB.Port)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDBDriver, cfg.DB.Driver)
	}

	if cfg.DB.Name == "" {
		return ErrEmptyDBName
	}

	// the Vault address is not checked here: a bad address is a secrets
	// failure handled by the resolver fallback

	if cfg.Vault.SecretPath == "" {
		return ErrEmptyVaultSecretPath
	}

	return nil
}
