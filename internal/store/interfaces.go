// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// ListUsers returns every user ordered by ascending id.
	// An empty registry yields an empty, non-nil slice.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser inserts user and returns the stored record with the
	// generated id and created_at. Returns [ErrUserAlreadyExists] when the
	// username or email is taken, or an error wrapping [ErrStoreUnavailable]
	// for any other failure.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// HealthChecker probes the store.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator classifies driver errors for logging and mapping.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
