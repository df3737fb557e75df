package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/tui"
)

type App struct {
	ui       UI
	storages io.Closer

	logger *logger.Logger
}

func NewApp(ui UI, storages io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	if storages == nil {
		return nil, errors.New("client: storages are required")
	}

	return &App{ui: ui, storages: storages, logger: logger}, nil
}

// Run blocks until the UI exits. A deliberate quit is not an error. Storage
// is closed in every case.
func (a *App) Run(ctx context.Context) (err error) {
	a.logger.Info().Msg("client started")

	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			a.logger.Warn().Err(closeErr).Msg("closing local storage failed")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
		a.logger.Info().Msg("client stopped")
	}()

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
