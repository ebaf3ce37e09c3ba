package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

const vaultTokenHeader = "X-Vault-Token"

type vaultAdapter struct {
	client     *utils.HTTPClient
	secretPath string

	logger *logger.Logger
}

// vaultKVv2Response is the envelope of a KV v2 read: the secret's own
// key/value pairs live under data.data.
type vaultKVv2Response struct {
	Data struct {
		Data struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"data"`
	} `json:"data"`
}

// NewVaultAdapter constructs a Vault KV v2 implementation of [SecretsAdapter].
// It normalises the base URL from cfg.URL and configures the HTTP client with
// the token header and request timeout (zero keeps the client default).
//
// Returns an error if cfg.URL is empty or cannot be parsed.
func NewVaultAdapter(cfg config.Vault, log *logger.Logger) (SecretsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
		utils.WithHeader(vaultTokenHeader, cfg.Token),
	)

	return &vaultAdapter{
		client:     client,
		secretPath: secretURLPath(cfg.SecretPath),
		logger:     log,
	}, nil
}

// NewSecretsAdapter is [NewVaultAdapter] for bootstrap: a construction error
// is returned by every ReadDBCredentials call instead, so an invalid address
// goes through the same fallback as an unreachable Vault.
func NewSecretsAdapter(cfg config.Vault, log *logger.Logger) SecretsAdapter {
	secrets, err := NewVaultAdapter(cfg, log)
	if err != nil {
		log.Err(err).Str("func", "NewSecretsAdapter").Str("url", cfg.URL).Msg("vault adapter is not configured")
		return unavailableAdapter{err: err}
	}

	return secrets
}

type unavailableAdapter struct {
	err error
}

func (a unavailableAdapter) ReadDBCredentials(context.Context) (models.DBCredentials, error) {
	return models.DBCredentials{}, a.err
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func secretURLPath(secretPath string) string {
	return "/v1/" + strings.Trim(strings.TrimSpace(secretPath), "/")
}

// ReadDBCredentials implements [SecretsAdapter]. It GETs /v1/<secret path>
// and extracts username and password from data.data.
func (v *vaultAdapter) ReadDBCredentials(ctx context.Context) (models.DBCredentials, error) {
	log := v.logger.GetChildLogger()
	log.Debug().Str("path", v.secretPath).Msg("reading database credentials from vault")

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(v.secretPath)
	if err != nil {
		return models.DBCredentials{}, fmt.Errorf("%w: %w", ErrVaultUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DBCredentials{}, err
	}

	var secret vaultKVv2Response
	if err = json.Unmarshal(resp.Body(), &secret); err != nil {
		return models.DBCredentials{}, fmt.Errorf("%w: %w", ErrMalformedSecret, err)
	}

	creds := models.DBCredentials{
		Username: secret.Data.Data.Username,
		Password: secret.Data.Data.Password,
	}
	if creds.Username == "" || creds.Password == "" {
		return models.DBCredentials{}, fmt.Errorf("%w: username or password missing at %s", ErrMalformedSecret, v.secretPath)
	}

	return creds, nil
}
