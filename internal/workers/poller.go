// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-timer-sync/internal/logger"
)

// PollFunc is one iteration of a [Poller]. Errors are logged, never fatal.
type PollFunc func(ctx context.Context) error

// Poller calls a PollFunc on a fixed interval.
type Poller struct {
	name     string
	interval time.Duration
	poll     PollFunc
	logger   *logger.Logger
}

// NewPoller creates a Poller. A non-positive interval defaults to one minute.
func NewPoller(name string, interval time.Duration, poll PollFunc, logger *logger.Logger) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{
		name:     name,
		interval: interval,
		poll:     poll,
		logger:   logger,
	}
}

// Run implements [Worker].
func (p *Poller) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := p.poll(ctx); err != nil && ctx.Err() == nil {
				p.logger.Warn().Err(err).
					Str("func", "Poller.Run").
					Str("worker", p.name).
					Msg("poll failed")
			}
		}
	}
}
