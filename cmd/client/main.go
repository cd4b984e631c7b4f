package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/client"
	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/service"
	"github.com/MKhiriev/go-timer-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("timer-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("timer-client", cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	factory := adapter.NewHTTPTimerAdapterFactory(cfg.Adapter, log)
	dialer := adapter.NewWebSocketStreamDialer(cfg.Adapter, log)

	services := service.NewClientServices(storages, factory, dialer, cfg, log)

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
