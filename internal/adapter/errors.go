package adapter

import "errors"

var (
	ErrVaultUnreachable    = errors.New("vault unreachable")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("vault token unauthorized")
	ErrForbidden           = errors.New("vault token forbidden")
	ErrNotFound            = errors.New("secret not found")
	ErrInternalServerError = errors.New("vault internal server error")
	ErrServiceUnavailable  = errors.New("vault unavailable or sealed")
	ErrUnexpectedStatus    = errors.New("unexpected vault response status")
	ErrMalformedSecret     = errors.New("malformed secret payload")
	ErrInvalidAddress      = errors.New("invalid vault address")
)
