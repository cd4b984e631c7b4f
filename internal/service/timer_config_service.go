package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/store"
	"github.com/MKhiriev/go-timer-sync/models"
)

type timerConfigService struct {
	repo   store.TimerConfigRepository
	logger *logger.Logger

	mu        sync.RWMutex
	status    models.UpdateStatus
	updateErr error
}

// NewTimerConfigService creates a [TimerConfigService] backed by repo. The
// update status starts at [models.UpdateStatusInit].
func NewTimerConfigService(repo store.TimerConfigRepository, logger *logger.Logger) TimerConfigService {
	return &timerConfigService{
		repo:   repo,
		logger: logger,
		status: models.UpdateStatusInit,
	}
}

func (s *timerConfigService) GetTimerConfig(ctx context.Context, accountID string) (models.AccessConfig, error) {
	return s.repo.GetTimerConfig(ctx, accountID)
}

// UpdateTimerConfig implements [TimerConfigService]. Values are trimmed before
// saving. An empty token is accepted so a user can clear their credentials;
// the session refuses to start with it.
func (s *timerConfigService) UpdateTimerConfig(ctx context.Context, accountID string, cfg models.AccessConfig) error {
	s.setStatus(models.UpdateStatusUpdating, nil)

	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.Proxy = strings.TrimSpace(cfg.Proxy)

	if err := s.repo.SaveTimerConfig(ctx, accountID, cfg); err != nil {
		err = fmt.Errorf("%w: %w", ErrUpdateTimerConfig, err)
		s.setStatus(models.UpdateStatusError, err)
		s.logger.Err(err).
			Str("func", "timerConfigService.UpdateTimerConfig").
			Str("account_id", accountID).
			Msg("failed to save timer config")
		return err
	}

	s.setStatus(models.UpdateStatusSuccess, nil)
	s.logger.Info().
		Str("func", "timerConfigService.UpdateTimerConfig").
		Str("account_id", accountID).
		Bool("has_token", cfg.HasToken()).
		Bool("has_proxy", cfg.Proxy != "").
		Msg("timer config saved")
	return nil
}

func (s *timerConfigService) UpdateStatus() models.UpdateStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *timerConfigService) UpdateError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updateErr
}

func (s *timerConfigService) setStatus(status models.UpdateStatus, err error) {
	s.mu.Lock()
	s.status = status
	s.updateErr = err
	s.mu.Unlock()
}
