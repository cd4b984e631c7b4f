// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/mock"
	"github.com/MKhiriev/go-timer-sync/internal/service"
	"github.com/MKhiriev/go-timer-sync/internal/store"
	"github.com/MKhiriev/go-timer-sync/models"
)

// stubSession records lifecycle calls; it stands in for the timer session.
type stubSession struct {
	mu       sync.Mutex
	started  []models.AccessConfig
	closes   int
	fetches  int
	startErr error
	state    models.TimerState
}

func (s *stubSession) Start(_ context.Context, cfg models.AccessConfig, _ service.TimerEventListener) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.started = append(s.started, cfg)
	return nil
}

func (s *stubSession) FetchCurrentEntry(context.Context) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	return nil, nil
}

func (s *stubSession) StopCurrentEntry(context.Context) (models.Entry, error) {
	return models.Entry{ID: 42, DurationSeconds: 60}, nil
}

func (s *stubSession) CurrentEntry() (models.Entry, bool) { return models.Entry{}, false }

func (s *stubSession) Snapshot() models.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *stubSession) State() models.ConnectionState { return s.Snapshot().Connection }

func (s *stubSession) LastError() error { return nil }

func (s *stubSession) Close() {
	s.mu.Lock()
	s.closes++
	s.mu.Unlock()
}

func (s *stubSession) startedConfigs() []models.AccessConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AccessConfig(nil), s.started...)
}

func (s *stubSession) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

func newTestApp(t *testing.T, appCfg config.ClientApp) (*App, *stubSession, *mock.MockTimerConfigRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockTimerConfigRepository(ctrl)
	session := &stubSession{}

	services := &service.ClientServices{
		TimerConfigService: service.NewTimerConfigService(repo, logger.Nop()),
		TimerSyncService:   session,
	}
	cfg := &config.ClientConfig{
		App:     appCfg,
		Workers: config.ClientWorkers{PollInterval: 2 * time.Millisecond},
	}

	app, err := NewApp(services, cfg, logger.Nop())
	require.NoError(t, err)
	return app, session, repo
}

func runApp(t *testing.T, app *App) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, &config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_UsesStoredConfig(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	stored := models.AccessConfig{Token: "stored", Proxy: "http://p:1"}
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(stored, nil)

	cancel, done := runApp(t, app)
	require.Eventually(t, func() bool { return len(session.startedConfigs()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, stored, session.startedConfigs()[0])

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 1, session.closes)
}

func TestApp_Run_SeedsMissingConfig(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1", SeedToken: "abc123"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{}, store.ErrTimerConfigNotFound)
	repo.EXPECT().SaveTimerConfig(gomock.Any(), "acc-1", models.AccessConfig{Token: "abc123"}).Return(nil)

	cancel, done := runApp(t, app)
	require.Eventually(t, func() bool { return len(session.startedConfigs()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, "abc123", session.startedConfigs()[0].Token)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_Run_SeedMatchingStoredIsNotSaved(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1", SeedToken: "abc123"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{Token: "abc123"}, nil)

	cancel, done := runApp(t, app)
	require.Eventually(t, func() bool { return len(session.startedConfigs()) == 1 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_Run_ConfigurationError(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{}, store.ErrTimerConfigNotFound)
	session.startErr = service.ErrConfiguration

	err := app.Run(context.Background())
	require.ErrorIs(t, err, service.ErrConfiguration)
	assert.Zero(t, session.closes)
}

func TestApp_Run_StoreError(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{}, errors.New("disk I/O error"))

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, session.startedConfigs())
}

func TestApp_Run_PollsOnlyWithoutRealtime(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{Token: "t"}, nil)
	session.state = models.TimerState{Realtime: true, Connection: models.Subscribed}

	cancel, done := runApp(t, app)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, session.fetchCount(), "no polling while realtime")

	session.mu.Lock()
	session.state = models.TimerState{Realtime: false, Connection: models.Reconnecting}
	session.mu.Unlock()

	require.Eventually(t, func() bool { return session.fetchCount() >= 2 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_UpdateTimerConfig_RestartsRunningSession(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{Token: "old"}, nil)
	repo.EXPECT().SaveTimerConfig(gomock.Any(), "acc-1", models.AccessConfig{Token: "new"}).Return(nil)

	cancel, done := runApp(t, app)
	require.Eventually(t, func() bool { return len(session.startedConfigs()) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		app.mu.Lock()
		defer app.mu.Unlock()
		return app.runCtx != nil
	}, time.Second, time.Millisecond)

	require.NoError(t, app.UpdateTimerConfig(context.Background(), models.AccessConfig{Token: "new"}))

	started := session.startedConfigs()
	require.Len(t, started, 2)
	assert.Equal(t, "new", started[1].Token)
	assert.Equal(t, models.UpdateStatusSuccess, app.services.TimerConfigService.UpdateStatus())

	cancel()
	require.NoError(t, <-done)
}

func TestApp_UpdateTimerConfig_NotRunningOnlySaves(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().SaveTimerConfig(gomock.Any(), "acc-1", models.AccessConfig{Token: "new"}).Return(nil)

	require.NoError(t, app.UpdateTimerConfig(context.Background(), models.AccessConfig{Token: "new"}))
	assert.Empty(t, session.startedConfigs())
	assert.Zero(t, session.closes)
}

func TestApp_StopCurrentEntry(t *testing.T) {
	app, _, _ := newTestApp(t, config.ClientApp{AccountID: "acc-1"})

	got, err := app.StopCurrentEntry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
}

func TestApp_UpdateTimerConfig_AfterRunReturned(t *testing.T) {
	app, session, repo := newTestApp(t, config.ClientApp{AccountID: "acc-1"})
	repo.EXPECT().GetTimerConfig(gomock.Any(), "acc-1").Return(models.AccessConfig{Token: "old"}, nil)
	repo.EXPECT().SaveTimerConfig(gomock.Any(), "acc-1", models.AccessConfig{Token: "new"}).Return(nil)

	cancel, done := runApp(t, app)
	require.Eventually(t, func() bool { return len(session.startedConfigs()) == 1 }, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	require.NoError(t, app.UpdateTimerConfig(context.Background(), models.AccessConfig{Token: "new"}))
	assert.Len(t, session.startedConfigs(), 1, "no session may be started once Run returned")
	assert.Equal(t, 1, session.closes)
}
