// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user registry handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Clients never
// receive internal error details.
package app

const (
	// MsgUsernameAndEmailRequired is returned when a registration lacks the
	// username or the email field.
	MsgUsernameAndEmailRequired = "Username and email are required"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUserAlreadyExists is returned when the username or email is taken.
	MsgUserAlreadyExists = "Username or email already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"
)
