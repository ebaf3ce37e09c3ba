package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

type HealthService interface {
	// Check probes the store and reports the outcome with the probe time.
	Check(ctx context.Context) models.HealthResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DBConfigResolver produces the connection parameters of the store.
// The first successful result is cached for the lifetime of the resolver.
type DBConfigResolver interface {
	Resolve(ctx context.Context) (models.DatabaseConfig, error)
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
