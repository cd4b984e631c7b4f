// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence: a SQLite-backed
// document store holding one access config document per account.
package store

import (
	"context"

	"github.com/MKhiriev/go-timer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TimerConfigRepository reads and writes the per-account access config
// document ({"token"?: string, "proxy"?: string}).
type TimerConfigRepository interface {
	// GetTimerConfig returns the document stored for accountID, or
	// [ErrTimerConfigNotFound] when none was saved yet.
	GetTimerConfig(ctx context.Context, accountID string) (models.AccessConfig, error)

	// SaveTimerConfig replaces the document stored for accountID.
	SaveTimerConfig(ctx context.Context, accountID string, cfg models.AccessConfig) error
}
