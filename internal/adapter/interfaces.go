// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides access to the external secrets manager.
//
// The primary abstraction is [SecretsAdapter], which decouples the service
// layer from the secrets backend. The package ships a HashiCorp Vault KV v2
// implementation over HTTP ([NewVaultAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrNotFound] for 404). Transport failures wrap [ErrVaultUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secrets_adapter_mock.go -package=mock

// SecretsAdapter reads database credentials from a secrets manager.
type SecretsAdapter interface {
	// ReadDBCredentials fetches the username and password stored at the
	// configured secret path. Returns an error if the backend cannot be
	// reached, answers with a non-2xx status, or the payload lacks either
	// field.
	ReadDBCredentials(ctx context.Context) (models.DBCredentials, error)
}
