package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/adapter"
	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/handler"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/server"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/workers"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/jonboulle/clockwork"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("user-registry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	secrets := adapter.NewSecretsAdapter(cfg.Vault, log)

	dbConfig, err := service.NewDBConfigResolver(secrets, cfg.DB, cfg.Vault, log).Resolve(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving database config")
	}
	log.Info().Any("db_config", dbConfig).Msg("database config resolved")

	db, err := store.NewConnect(ctx, dbConfig, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("database is not reachable")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error ensuring database schema")
	}

	clock := clockwork.NewRealClock()
	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workers.NewWorkers(
		workers.NewDBProbeWorker(storages.HealthChecker, cfg.DB.ProbeInterval, clock, log),
	).Run(workersCtx)

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
