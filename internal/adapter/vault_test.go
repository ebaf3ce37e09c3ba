// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) SecretsAdapter {
	t.Helper()
	cfg := config.Vault{
		URL:        serverURL,
		Token:      "root-token",
		SecretPath: "secret/data/database",
		Timeout:    2 * time.Second,
	}

	a, err := NewVaultAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func vaultServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── ReadDBCredentials ───────────────────────────────────────────────────────

func TestReadDBCredentials_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/secret/data/database", r.URL.Path)
		assert.Equal(t, "root-token", r.Header.Get("X-Vault-Token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"request_id": "8f7a",
			"data": {
				"data": {"username": "registry", "password": "s3cret"},
				"metadata": {"version": 3}
			}
		}`))
	}))
	defer srv.Close()

	creds, err := newTestAdapter(t, srv.URL).ReadDBCredentials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "registry", creds.Username)
	assert.Equal(t, "s3cret", creds.Password)
}

func TestReadDBCredentials_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"sealed", http.StatusServiceUnavailable, ErrServiceUnavailable},
		{"teapot", http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := vaultServer(t, tt.status, `{"errors":[]}`)

			_, err := newTestAdapter(t, srv.URL).ReadDBCredentials(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadDBCredentials_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"kv v1 shape", `{"data":{"username":"u","password":"p"}}`},
		{"missing password", `{"data":{"data":{"username":"u"}}}`},
		{"missing username", `{"data":{"data":{"password":"p"}}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := vaultServer(t, http.StatusOK, tt.body)

			_, err := newTestAdapter(t, srv.URL).ReadDBCredentials(context.Background())

			assert.ErrorIs(t, err, ErrMalformedSecret)
		})
	}
}

func TestReadDBCredentials_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ReadDBCredentials(context.Background())

	assert.ErrorIs(t, err, ErrVaultUnreachable)
}

func TestReadDBCredentials_ContextCanceled(t *testing.T) {
	srv := vaultServer(t, http.StatusOK, `{"data":{"data":{"username":"u","password":"p"}}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).ReadDBCredentials(ctx)

	assert.ErrorIs(t, err, ErrVaultUnreachable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadDBCredentials_NoTokenHeaderWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Vault-Token"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"data":{"data":{"username":"u","password":"p"}}}`))
	}))
	defer srv.Close()

	a, err := NewVaultAdapter(config.Vault{URL: srv.URL, SecretPath: "/secret/data/database/"}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ReadDBCredentials(context.Background())
	require.NoError(t, err)
}

// ── constructor helpers ─────────────────────────────────────────────────────

func TestNewVaultAdapter_InvalidURL(t *testing.T) {
	_, err := NewVaultAdapter(config.Vault{URL: "   "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewVaultAdapter(config.Vault{URL: "http://"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewVaultAdapter(config.Vault{URL: "://bad"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewSecretsAdapter_InvalidURLFailsOnRead(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			secrets := NewSecretsAdapter(config.Vault{URL: raw, SecretPath: "secret/data/database"}, logger.Nop())
			require.NotNil(t, secrets)

			creds, err := secrets.ReadDBCredentials(context.Background())
			assert.ErrorIs(t, err, ErrInvalidAddress)
			assert.Empty(t, creds)
		})
	}
}

func TestNewSecretsAdapter_AddressWithoutScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/database", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"data":{"username":"u","password":"p"}}}`))
	}))
	defer srv.Close()

	secrets := NewSecretsAdapter(config.Vault{
		URL:        strings.TrimPrefix(srv.URL, "http://"),
		SecretPath: "secret/data/database",
	}, logger.Nop())

	creds, err := secrets.ReadDBCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DBCredentials{Username: "u", Password: "p"}, creds)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://localhost:8200", "http://localhost:8200"},
		{"http://localhost:8200/", "http://localhost:8200"},
		{"vault:8200", "http://vault:8200"},
		{"  https://vault.internal  ", "https://vault.internal"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSecretURLPath(t *testing.T) {
	assert.Equal(t, "/v1/secret/data/database", secretURLPath("secret/data/database"))
	assert.Equal(t, "/v1/secret/data/database", secretURLPath("/secret/data/database/"))
	assert.Equal(t, "/v1/kv/data/app", secretURLPath(" kv/data/app "))
}
