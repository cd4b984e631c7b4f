// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the account the client synchronizes and, optionally, an
	// access config used to seed the config document store.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local config document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds provider endpoints and outbound timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds reconnect loop and fallback polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account-level settings.
type App struct {
	// AccountID identifies the config document and the session.
	// Env: APP_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// Token is written to the stored access config when it differs from it.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Proxy seeds the stored proxy together with Token.
	// Env: APP_PROXY
	Proxy string `env:"PROXY"`

	// LogPath is the file the client logger appends to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite config document store.
type DB struct {
	// DSN is the SQLite file path (e.g. "timer.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds provider endpoints and timeouts for outbound calls.
type Adapter struct {
	// APIAddress is the base URL of the provider REST API.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// StreamAddress is the websocket URL of the provider push stream.
	// Env: ADAPTER_STREAM_ADDRESS
	StreamAddress string `env:"STREAM_ADDRESS"`

	// RequestTimeout bounds every REST call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HandshakeTimeout bounds the websocket handshake.
	// Env: ADAPTER_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Workers holds settings for the reconnect loop and the fallback poller.
type Workers struct {
	// ReconnectInitialInterval is the wait before the first redial after a
	// close. Zero redials immediately.
	// Env: WORKERS_RECONNECT_INITIAL_INTERVAL
	ReconnectInitialInterval time.Duration `env:"RECONNECT_INITIAL_INTERVAL"`

	// ReconnectMaxInterval caps the exponential backoff between redials.
	// Env: WORKERS_RECONNECT_MAX_INTERVAL
	ReconnectMaxInterval time.Duration `env:"RECONNECT_MAX_INTERVAL"`

	// PollInterval is how often the current entry is fetched while the push
	// stream is down.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Returns an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
