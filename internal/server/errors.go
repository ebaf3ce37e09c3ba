// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen is returned by RunServer when the listener cannot be bound
	// or stops with an error.
	ErrListen = errors.New("error serving HTTP")
)
