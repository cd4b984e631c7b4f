package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/service"
	"github.com/MKhiriev/go-timer-sync/internal/store"
	"github.com/MKhiriev/go-timer-sync/internal/workers"
	"github.com/MKhiriev/go-timer-sync/models"
)

type App struct {
	services *service.ClientServices
	appCfg   config.ClientApp
	workers  config.ClientWorkers
	listener service.TimerEventListener
	logger   *logger.Logger

	// mu serializes session restarts with Run's start and teardown.
	mu     sync.Mutex
	runCtx context.Context
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || services.TimerSyncService == nil || services.TimerConfigService == nil {
		return nil, errors.New("client services are not initialized")
	}

	return &App{
		services: services,
		appCfg:   cfg.App,
		workers:  cfg.Workers,
		listener: &logListener{logger: logger},
		logger:   logger,
	}, nil
}

// Run loads the account's access config, starts synchronization and blocks
// until ctx is done. A missing token is returned as an error wrapping
// service.ErrConfiguration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	access, err := a.loadAccessConfig(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	if err = a.services.TimerSyncService.Start(ctx, access, a.listener); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("start timer sync: %w", err)
	}
	a.runCtx = ctx
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.runCtx = nil
		a.services.TimerSyncService.Close()
	}()

	poller := workers.NewPoller("current-entry", a.workers.PollInterval, a.pollCurrentEntry, a.logger)
	return workers.NewWorkers(poller).Run(ctx)
}

// UpdateTimerConfig saves cfg for the account and, while Run is active,
// restarts synchronization with it. Credentials are bound when a session
// starts, so a change always means a new session.
func (a *App) UpdateTimerConfig(ctx context.Context, cfg models.AccessConfig) error {
	if err := a.services.TimerConfigService.UpdateTimerConfig(ctx, a.appCfg.AccountID, cfg); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runCtx == nil || a.runCtx.Err() != nil {
		return nil
	}

	a.services.TimerSyncService.Close()
	if err := a.services.TimerSyncService.Start(a.runCtx, cfg, a.listener); err != nil {
		return fmt.Errorf("restart timer sync: %w", err)
	}
	return nil
}

// StopCurrentEntry stops the running entry.
func (a *App) StopCurrentEntry(ctx context.Context) (models.Entry, error) {
	return a.services.TimerSyncService.StopCurrentEntry(ctx)
}

// Status returns the current view of the session.
func (a *App) Status() models.TimerState {
	return a.services.TimerSyncService.Snapshot()
}

// loadAccessConfig reads the stored document. Seed values from the
// configuration are written to the store when they differ from it.
func (a *App) loadAccessConfig(ctx context.Context) (models.AccessConfig, error) {
	stored, err := a.services.TimerConfigService.GetTimerConfig(ctx, a.appCfg.AccountID)
	if err != nil && !errors.Is(err, store.ErrTimerConfigNotFound) {
		return models.AccessConfig{}, fmt.Errorf("load timer config: %w", err)
	}

	if a.appCfg.SeedToken == "" {
		return stored, nil
	}

	seed := models.AccessConfig{Token: a.appCfg.SeedToken, Proxy: a.appCfg.SeedProxy}
	if seed == stored {
		return stored, nil
	}

	if err = a.services.TimerConfigService.UpdateTimerConfig(ctx, a.appCfg.AccountID, seed); err != nil {
		return models.AccessConfig{}, fmt.Errorf("seed timer config: %w", err)
	}
	a.logger.Info().Str("account_id", a.appCfg.AccountID).Msg("timer config seeded from configuration")

	return seed, nil
}

// pollCurrentEntry refreshes the current entry while realtime updates are
// unavailable.
func (a *App) pollCurrentEntry(ctx context.Context) error {
	state := a.services.TimerSyncService.Snapshot()
	if state.Realtime || state.Connection == models.Disconnected || state.Connection == models.Failed {
		return nil
	}

	logger.FromContext(ctx).Debug().
		Stringer("state", state.Connection).
		Msg("polling current entry without push stream")

	_, err := a.services.TimerSyncService.FetchCurrentEntry(ctx)
	return err
}
