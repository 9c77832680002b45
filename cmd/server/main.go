package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/handler"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/server"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/internal/store"
	"github.com/MKhiriev/coffee-notes/internal/workers"
	"github.com/MKhiriev/coffee-notes/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const dbStatsInterval = 15 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())

	log := logger.NewLogger("coffee-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	backgroundWorkers := workers.NewWorkers(
		services.LikeReconcileJob,
		workers.NewDBStatsWorker(storages, m, dbStatsInterval),
	)
	backgroundWorkers.Start(ctx)
	defer backgroundWorkers.Stop()

	handlers, err := handler.NewHandlers(services, cfg.Server, m, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
