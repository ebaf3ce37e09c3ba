package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/metrics"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/jonboulle/clockwork"
)

type healthService struct {
	checker store.HealthChecker
	clock   clockwork.Clock

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, clock clockwork.Clock, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		clock:   clock,
		logger:  logger,
	}
}

func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	err := h.checker.Ping(ctx)
	timestamp := models.FormatHealthTimestamp(h.clock.Now())

	if err != nil {
		metrics.DBUp.Set(0)
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database health probe failed")

		return models.HealthResponse{
			Status:    models.HealthStatusUnhealthy,
			Timestamp: timestamp,
			Database:  models.DatabaseDisconnected,
		}
	}

	metrics.DBUp.Set(1)
	return models.HealthResponse{
		Status:    models.HealthStatusHealthy,
		Timestamp: timestamp,
		Database:  models.DatabaseConnected,
	}
}
