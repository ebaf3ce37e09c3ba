// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sources a [DatabaseConfig] can be resolved from.
const (
	// DBConfigSourceVault marks credentials read from the secrets manager.
	DBConfigSourceVault = "vault"

	// DBConfigSourceEnv marks credentials taken from environment variables
	// (or their hardcoded defaults) after the secrets manager failed.
	DBConfigSourceEnv = "env"
)

// DatabaseConfig holds the resolved connection parameters of the relational
// store. It is built once during bootstrap and never refreshed.
//
// Password is excluded from JSON so the value can be logged safely.
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"-"`
	SSLMode  string `json:"ssl_mode"`

	// Source reports where User and Password came from:
	// [DBConfigSourceVault] or [DBConfigSourceEnv].
	Source string `json:"source"`
}

// IsFallback reports whether the credentials were not taken from the
// secrets manager.
func (c DatabaseConfig) IsFallback() bool {
	return c.Source != DBConfigSourceVault
}

// DBCredentials is the username/password pair stored in the secrets manager.
type DBCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
