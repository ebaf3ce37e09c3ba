package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/metrics"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/jonboulle/clockwork"
)

// dbProbeWorker periodically pings the database and keeps the
// registry_db_up gauge current between health requests.
type dbProbeWorker struct {
	checker  store.HealthChecker
	interval time.Duration
	clock    clockwork.Clock

	logger *logger.Logger
}

func NewDBProbeWorker(checker store.HealthChecker, interval time.Duration, clock clockwork.Clock, logger *logger.Logger) Worker {
	return &dbProbeWorker{
		checker:  checker,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (w *dbProbeWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Str("func", "*dbProbeWorker.Run").Msg("database probe disabled")
		return
	}

	ticker := w.clock.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				w.probe(ctx)
			}
		}
	}()
}

func (w *dbProbeWorker) probe(ctx context.Context) {
	if err := w.checker.Ping(ctx); err != nil {
		metrics.DBUp.Set(0)
		w.logger.Warn().Err(err).Str("func", "*dbProbeWorker.probe").Msg("database probe failed")
		return
	}
	metrics.DBUp.Set(1)
}
