package config

import (
	"fmt"
	"time"
)

// ClientApp holds account-level settings of the client runtime.
type ClientApp struct {
	// AccountID keys the config document and tags every log entry.
	AccountID string
	// SeedToken and SeedProxy are written to the config store when they
	// differ from the stored document.
	SeedToken string
	SeedProxy string
	// LogPath is the file the client logger appends to.
	LogPath string
}

// ClientAdapter holds provider endpoints used by the transports.
type ClientAdapter struct {
	// APIAddress is the base URL of the REST API.
	APIAddress string
	// StreamAddress is the websocket URL of the push stream.
	StreamAddress string
	// RequestTimeout bounds each REST call.
	RequestTimeout time.Duration
	// HandshakeTimeout bounds the websocket handshake.
	HandshakeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains reconnect loop and fallback poller settings.
type ClientWorkers struct {
	ReconnectInitialInterval time.Duration
	ReconnectMaxInterval     time.Duration
	PollInterval             time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AccountID: cfg.App.AccountID,
			SeedToken: cfg.App.Token,
			SeedProxy: cfg.App.Proxy,
			LogPath:   cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			APIAddress:       cfg.Adapter.APIAddress,
			StreamAddress:    cfg.Adapter.StreamAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			HandshakeTimeout: cfg.Adapter.HandshakeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ReconnectInitialInterval: cfg.Workers.ReconnectInitialInterval,
			ReconnectMaxInterval:     cfg.Workers.ReconnectMaxInterval,
			PollInterval:             cfg.Workers.PollInterval,
		},
	}
}
