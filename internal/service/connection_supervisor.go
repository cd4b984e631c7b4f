// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/models"
)

// SubscriptionHandler receives the lifecycle and data notifications of a
// [ConnectionSupervisor]. All methods are called from the supervisor's loop
// goroutine, one at a time; the loop does not continue until they return.
type SubscriptionHandler interface {
	// OnStartSubscribe is called after each successful dial.
	OnStartSubscribe()

	// OnEndSubscribe is called after a live stream ends, before the next
	// dial. It is not called when the supervisor is closed.
	OnEndSubscribe()

	// OnError is called for dial failures and error frames. Both wrap
	// [ErrConnection] and neither is fatal.
	OnError(err error)

	// OnMessage is called for insert, update and delete frames.
	OnMessage(msg models.StreamMessage)
}

// ConnectionSupervisor owns the push stream of one session. A single loop
// goroutine dials, reads and redials, so there is never more than one dial in
// flight and never more than one live stream.
type ConnectionSupervisor struct {
	dialer  adapter.StreamDialer
	handler SubscriptionHandler
	workers config.ClientWorkers
	logger  *logger.Logger

	state atomic.Int32

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewConnectionSupervisor constructs an idle supervisor. Reconnect delays grow
// exponentially from workers.ReconnectInitialInterval up to
// workers.ReconnectMaxInterval and restart from the initial value after every
// successful subscription.
func NewConnectionSupervisor(dialer adapter.StreamDialer, handler SubscriptionHandler, workers config.ClientWorkers, logger *logger.Logger) *ConnectionSupervisor {
	if workers.ReconnectMaxInterval <= 0 {
		workers.ReconnectMaxInterval = config.DefaultReconnectMaxInterval
	}

	s := &ConnectionSupervisor{
		dialer:  dialer,
		handler: handler,
		workers: workers,
		logger:  logger,
	}
	s.setState(models.Disconnected)
	return s
}

// State returns the current connection state.
func (s *ConnectionSupervisor) State() models.ConnectionState {
	return models.ConnectionState(s.state.Load())
}

func (s *ConnectionSupervisor) setState(state models.ConnectionState) {
	prev := models.ConnectionState(s.state.Swap(int32(state)))
	if prev != state {
		s.logger.Debug().
			Str("func", "ConnectionSupervisor.setState").
			Stringer("from", prev).
			Stringer("state", state).
			Msg("connection state changed")
	}
}

// Open starts the dial loop with access. It returns immediately; the outcome
// is reported through the handler. The loop stops when ctx is cancelled or
// Close is called.
func (s *ConnectionSupervisor) Open(ctx context.Context, access models.AccessConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		select {
		case <-s.done:
			// the loop ended with its parent ctx
			s.cancel()
		default:
			return ErrSupervisorAlreadyOpen
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.setState(models.Connecting)
	go func() {
		defer close(done)
		s.run(loopCtx, access)
		s.setState(models.Disconnected)
	}()

	return nil
}

// Close cancels the loop, including a pending reconnect delay, closes the live
// stream and waits for the loop to exit. It is safe to call more than once and
// must not be called from a handler method.
func (s *ConnectionSupervisor) Close() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	s.setState(models.Disconnected)
}

func (s *ConnectionSupervisor) run(ctx context.Context, access models.AccessConfig) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.workers.ReconnectInitialInterval
	b.MaxInterval = s.workers.ReconnectMaxInterval
	b.Reset()

	for {
		stream, err := s.dialer.Dial(ctx, access)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn().Err(err).Str("func", "ConnectionSupervisor.run").Msg("push stream dial failed")
			s.handler.OnError(fmt.Errorf("%w: %w", ErrConnection, err))
			if !sleep(ctx, b.NextBackOff()) {
				return
			}
			continue
		}

		s.setState(models.Subscribed)
		b.Reset()
		s.handler.OnStartSubscribe()

		s.receive(ctx, stream)
		if ctx.Err() != nil {
			return
		}

		s.setState(models.Reconnecting)
		s.handler.OnEndSubscribe()
		if !sleep(ctx, b.NextBackOff()) {
			return
		}
	}
}

// receive reads frames until the stream ends or ctx is cancelled.
func (s *ConnectionSupervisor) receive(ctx context.Context, stream adapter.Stream) {
	stop := context.AfterFunc(ctx, func() { _ = stream.Close() })
	defer stop()
	defer stream.Close()

	for {
		msg, err := stream.Receive()
		if err != nil {
			if errors.Is(err, adapter.ErrMalformedFrame) {
				s.logger.Warn().Err(err).Str("func", "ConnectionSupervisor.receive").Msg("dropping malformed frame")
				continue
			}
			if ctx.Err() == nil {
				s.logger.Info().Err(err).Str("func", "ConnectionSupervisor.receive").Msg("push stream closed by remote")
			}
			return
		}

		switch msg.Kind {
		case models.StreamPing:
			s.logger.Debug().Str("func", "ConnectionSupervisor.receive").Msg("ping")
		case models.StreamError:
			s.handler.OnError(fmt.Errorf("%w: %s", ErrConnection, msg.Message))
		case models.StreamInsert, models.StreamUpdate, models.StreamDelete:
			s.handler.OnMessage(msg)
		default:
			s.logger.Debug().Str("func", "ConnectionSupervisor.receive").Msg("ignoring unrelated frame")
		}
	}
}

// sleep waits for d or until ctx is done, reporting whether the full delay
// elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
