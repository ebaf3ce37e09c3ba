package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	UserService    UserService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, clock clockwork.Clock, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger))

	return &Services{
		UserService:    userService,
		HealthService:  NewHealthService(storages.HealthChecker, clock, logger),
		AppInfoService: appInfoService,
	}, nil
}
