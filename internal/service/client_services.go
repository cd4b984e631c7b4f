package service

import (
	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/store"
)

type ClientServices struct {
	TimerConfigService TimerConfigService
	TimerSyncService   TimerSyncService
}

func NewClientServices(
	storages *store.ClientStorages,
	factory adapter.TimerAdapterFactory,
	dialer adapter.StreamDialer,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		TimerConfigService: NewTimerConfigService(storages.TimerConfigRepository, logger),
		TimerSyncService:   NewTimerSession(cfg.App.AccountID, factory, dialer, cfg.Adapter, cfg.Workers, logger),
	}
}
