package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/client"
	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/internal/store"
	"github.com/MKhiriev/go-profile-keeper/internal/tui"
	"github.com/MKhiriev/go-profile-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Constructors are swapped in tests.
var (
	newStorages = store.NewClientStorages
	newUI       = tui.New
	newApp      = client.NewApp
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("profile-keeper-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("profile-keeper-client", cfg.App.LogFile)

	if err = run(context.Background(), cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run wires the client and blocks until the UI exits. Local storage is
// closed on every path once it has been opened.
func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := newStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, log)

	ui, err := newUI(services, buildInfo, log)
	if err != nil {
		return errors.Join(fmt.Errorf("error creating ui: %w", err), storages.Close())
	}

	app, err := newApp(ui, storages, log)
	if err != nil {
		return errors.Join(fmt.Errorf("init client app error: %w", err), storages.Close())
	}

	return app.Run(ctx)
}
