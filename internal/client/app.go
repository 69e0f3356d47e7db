package client

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/adapter"
	"github.com/msavelyeva/nutrikeep/internal/config"
	"github.com/msavelyeva/nutrikeep/internal/logger"
	"github.com/msavelyeva/nutrikeep/internal/service"
	"github.com/msavelyeva/nutrikeep/internal/store"
	"github.com/msavelyeva/nutrikeep/internal/tui"
)

// App owns every long-lived component of the interactive application.
type App struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.Storages
	services *service.Services
	tui      *tui.TUI
}

// NewApp builds the full component graph from the merged configuration. The
// returned App must be closed with Close once Run returns.
func NewApp(cfg *config.StructuredConfig) (*App, error) {
	// TUI владеет терминалом, поэтому логи уходят в файл.
	log := logger.NewFileLogger("nutrikeep")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	provider, err := adapter.NewOpenFoodFactsAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create food data adapter: %w", err)
	}

	services := service.NewServices(storages, provider)

	ui, err := tui.New(services, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create terminal ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		services: services,
		tui:      ui,
	}, nil
}

// Run starts the background cache refresher and blocks in the terminal UI
// until the user exits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if a.cfg.Workers.CacheRefreshInterval > 0 {
		a.services.CacheRefreshJob.Start(ctx, a.cfg.Workers.CacheRefreshInterval)
		defer a.services.CacheRefreshJob.Stop()
	}

	return a.tui.Run(ctx)
}

// Close releases the storage resources.
func (a *App) Close() error {
	return a.storages.Close()
}
