package service

import "errors"

var (
	// ErrValidation wraps every input validation failure (missing username or email).
	ErrValidation = errors.New("validation failed")

	// ErrConfigUnavailable is returned by the resolver when the secrets
	// manager failed and the environment fallback is disabled.
	ErrConfigUnavailable = errors.New("database configuration unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
