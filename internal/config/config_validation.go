// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values that were set
// and are malformed are rejected; missing values are caught on the client
// view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.HandshakeTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.ReconnectInitialInterval < 0 || cfg.Workers.ReconnectMaxInterval < 0 || cfg.Workers.PollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if !hasScheme(cfg.Adapter.APIAddress, "http", "https") ||
		!hasScheme(cfg.Adapter.StreamAddress, "ws", "wss") ||
		cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReconnectMaxInterval == 0 ||
		cfg.Workers.ReconnectInitialInterval > cfg.Workers.ReconnectMaxInterval ||
		cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if strings.TrimSpace(cfg.App.AccountID) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func hasScheme(raw string, schemes ...string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return true
		}
	}
	return false
}
