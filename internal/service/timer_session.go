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

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/internal/utils"
	"github.com/MKhiriev/go-timer-sync/models"
)

type actorOp func(ctx context.Context)

// TimerSession keeps the current entry of one account in sync with the
// provider.
//
// Every cache mutation, REST call and listener notification runs on a single
// actor goroutine. Push callbacks from the [ConnectionSupervisor] and public
// calls only enqueue work for it, so a refetch triggered by a push event
// never interleaves with a user-initiated stop. Push events are treated as
// invalidation signals: the cache only ever holds what the last successful
// fetch returned.
type TimerSession struct {
	accountID      string
	factory        adapter.TimerAdapterFactory
	requestTimeout time.Duration
	baseLogger     *logger.Logger
	ids            *utils.UUIDGenerator

	cache      *CurrentEntryCache
	supervisor *ConnectionSupervisor

	ops     chan actorOp
	refetch chan struct{}

	// lifecycle serializes Start and Close.
	lifecycle sync.Mutex

	// mu guards runCtx, cancel and access.
	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
	access models.AccessConfig
	wg     sync.WaitGroup

	// Set by Start before the goroutines launch.
	listener TimerEventListener
	logger   *logger.Logger

	// Owned by the actor goroutine.
	timerAdapter adapter.TimerAdapter

	failed   atomic.Bool
	realtime atomic.Bool

	errMu   sync.RWMutex
	lastErr error
}

// NewTimerSession constructs an idle session for accountID. REST adapters are
// built with factory whenever credentials are bound, push streams are opened
// with dialer.
func NewTimerSession(
	accountID string,
	factory adapter.TimerAdapterFactory,
	dialer adapter.StreamDialer,
	adapterCfg config.ClientAdapter,
	workers config.ClientWorkers,
	log *logger.Logger,
) *TimerSession {
	requestTimeout := adapterCfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	s := &TimerSession{
		accountID:      accountID,
		factory:        factory,
		requestTimeout: requestTimeout,
		baseLogger:     log,
		logger:         log,
		ids:            utils.NewUUIDGenerator(),
		cache:          NewCurrentEntryCache(),
		ops:            make(chan actorOp, 16),
		refetch:        make(chan struct{}, 1),
		listener:       nopListener{},
	}
	s.supervisor = NewConnectionSupervisor(dialer, &sessionSubscription{s: s}, workers, log.WithAccount(accountID, ""))

	return s
}

// Start validates cfg and, if usable, binds it and begins synchronization.
//
// A config without a token puts the session into [models.Failed], reports
// the error to listener and returns an error wrapping [ErrConfiguration]
// without any network activity. Listener methods must not call Start or
// Close.
func (s *TimerSession) Start(ctx context.Context, cfg models.AccessConfig, listener TimerEventListener) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if listener == nil {
		listener = nopListener{}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	prevCtx := s.runCtx
	s.mu.Unlock()
	if prevCtx != nil {
		if prevCtx.Err() == nil {
			return ErrSessionAlreadyStarted
		}
		// the parent ctx of the previous run ended without Close
		s.shutdown()
	}

	access, err := ValidateAccessConfig(cfg)
	if err != nil {
		s.failed.Store(true)
		s.baseLogger.Warn().Err(err).
			Str("func", "TimerSession.Start").
			Str("account_id", s.accountID).
			Msg("timer sync refused to start")
		listener.OnError(err)
		return err
	}

	timerAdapter, err := s.factory(access)
	if err != nil {
		s.failed.Store(true)
		err = fmt.Errorf("%w: %w", ErrConfiguration, err)
		listener.OnError(err)
		return err
	}

	s.failed.Store(false)
	s.realtime.Store(false)
	s.cache.Clear()
	s.setLastError(nil)
	s.drainQueues()

	s.listener = listener
	s.logger = s.baseLogger.WithAccount(s.accountID, s.ids.Generate())
	s.timerAdapter = timerAdapter

	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.runCtx, s.cancel, s.access = runCtx, cancel, access
	s.mu.Unlock()

	if err = s.supervisor.Open(runCtx, access); err != nil {
		cancel()
		s.mu.Lock()
		s.runCtx, s.cancel = nil, nil
		s.mu.Unlock()
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(runCtx)
		s.release(runCtx)
	}()

	s.logger.Info().Str("func", "TimerSession.Start").Msg("timer sync started")
	return nil
}

// Close tears down the push connection and the actor and waits for both. The
// cache keeps its last value. It is safe to call more than once; the session
// may be started again afterwards.
func (s *TimerSession) Close() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.shutdown()
}

// shutdown cancels the current run and waits for the actor to release it.
func (s *TimerSession) shutdown() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// release runs on the actor goroutine once runCtx is done, whether through
// Close or through the parent ctx, and returns the session to idle.
func (s *TimerSession) release(runCtx context.Context) {
	s.supervisor.Close()
	s.realtime.Store(false)

	s.mu.Lock()
	if s.runCtx == runCtx {
		s.cancel()
		s.runCtx, s.cancel = nil, nil
	}
	s.mu.Unlock()

	s.logger.Info().Str("func", "TimerSession.release").Msg("timer sync stopped")
}

// FetchCurrentEntry asks the provider for the running entry and replaces the
// cache with the answer; nil means nothing is running. On failure the cache
// is left as it was and the error is recorded for [TimerSession.LastError].
func (s *TimerSession) FetchCurrentEntry(ctx context.Context) (*models.Entry, error) {
	if !s.hasToken() {
		return nil, ErrEmptyToken
	}

	var (
		entry *models.Entry
		err   error
	)
	if submitErr := s.submit(ctx, func(runCtx context.Context) {
		entry, err = s.fetchCurrent(runCtx)
	}); submitErr != nil {
		return nil, submitErr
	}

	return entry, err
}

// StopCurrentEntry stops the cached entry on the provider and clears the
// cache. Without a bound token it returns [ErrEmptyToken]; with an empty cache
// it returns [ErrEmptyCurrentEntry]. Neither case makes a remote call.
func (s *TimerSession) StopCurrentEntry(ctx context.Context) (models.Entry, error) {
	if !s.hasToken() {
		return models.Entry{}, ErrEmptyToken
	}

	var (
		stopped models.Entry
		err     error
	)
	if submitErr := s.submit(ctx, func(runCtx context.Context) {
		stopped, err = s.stopCurrent(runCtx)
	}); submitErr != nil {
		return models.Entry{}, submitErr
	}

	return stopped, err
}

// CurrentEntry returns a copy of the cached entry.
func (s *TimerSession) CurrentEntry() (models.Entry, bool) {
	return s.cache.Get()
}

// State returns [models.Failed] after a refused Start and the supervisor's
// connection state otherwise.
func (s *TimerSession) State() models.ConnectionState {
	if s.failed.Load() {
		return models.Failed
	}
	return s.supervisor.State()
}

// LastError returns the error of the most recent remote call, or nil if it
// succeeded.
func (s *TimerSession) LastError() error {
	s.errMu.RLock()
	defer s.errMu.RUnlock()
	return s.lastErr
}

// Snapshot returns a read-only view of the session.
func (s *TimerSession) Snapshot() models.TimerState {
	state := models.TimerState{
		Err:        s.LastError(),
		Realtime:   s.realtime.Load(),
		Connection: s.State(),
	}
	if entry, ok := s.cache.Get(); ok {
		state.CurrentEntry = &entry
	}
	return state
}

func (s *TimerSession) setLastError(err error) {
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
}

func (s *TimerSession) hasToken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runCtx != nil && s.access.HasToken()
}

// run is the actor loop.
func (s *TimerSession) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case op := <-s.ops:
			op(ctx)
		case <-s.refetch:
			if _, err := s.fetchCurrent(ctx); err != nil && ctx.Err() == nil {
				s.listener.OnError(err)
			}
		}
	}
}

// submit runs op on the actor and waits for it to finish.
func (s *TimerSession) submit(ctx context.Context, op actorOp) error {
	runCtx := s.currentRunCtx()
	if runCtx == nil {
		return ErrSessionClosed
	}

	done := make(chan struct{})
	if err := s.enqueue(ctx, runCtx, func(opCtx context.Context) {
		defer close(done)
		op(opCtx)
	}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-runCtx.Done():
		// the actor may have picked the op before exiting
		select {
		case <-done:
			return nil
		default:
			return ErrSessionClosed
		}
	}
}

// post enqueues op without waiting for it to run.
func (s *TimerSession) post(ctx context.Context, op actorOp) error {
	runCtx := s.currentRunCtx()
	if runCtx == nil {
		return ErrSessionClosed
	}
	return s.enqueue(ctx, runCtx, op)
}

func (s *TimerSession) enqueue(ctx, runCtx context.Context, op actorOp) error {
	select {
	case s.ops <- op:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-runCtx.Done():
		return ErrSessionClosed
	}
}

func (s *TimerSession) currentRunCtx() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runCtx
}

// requestRefetch schedules a reconciling fetch. Requests made while one is
// already pending collapse into it.
func (s *TimerSession) requestRefetch() {
	select {
	case s.refetch <- struct{}{}:
	default:
	}
}

// drainQueues drops work left over from a previous run.
func (s *TimerSession) drainQueues() {
	for {
		select {
		case <-s.refetch:
		case <-s.ops:
		default:
			return
		}
	}
}

// fetchCurrent runs on the actor.
func (s *TimerSession) fetchCurrent(ctx context.Context) (*models.Entry, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	entry, err := s.timerAdapter.FetchCurrentEntry(reqCtx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchCurrentEntry, mapAdapterError(err))
		s.setLastError(err)
		s.logger.Err(err).Str("func", "TimerSession.fetchCurrent").Msg("failed to fetch current entry")
		return nil, err
	}

	s.setLastError(nil)
	if entry == nil {
		s.cache.Clear()
		s.logger.Debug().Str("func", "TimerSession.fetchCurrent").Msg("no entry running")
		return nil, nil
	}

	prev, hadPrev := s.cache.Get()
	s.cache.Set(*entry)
	if !hadPrev || !prev.SameAs(*entry) {
		s.logger.Info().
			Str("func", "TimerSession.fetchCurrent").
			Int64("entry_id", entry.ID).
			Msg("current entry changed")
	} else {
		s.logger.Debug().
			Str("func", "TimerSession.fetchCurrent").
			Int64("entry_id", entry.ID).
			Msg("current entry refreshed")
	}

	current := *entry
	return &current, nil
}

// stopCurrent runs on the actor.
func (s *TimerSession) stopCurrent(ctx context.Context) (models.Entry, error) {
	current, ok := s.cache.Get()
	if !ok {
		return models.Entry{}, ErrEmptyCurrentEntry
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	stopped, err := s.timerAdapter.StopEntry(reqCtx, current.ID)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrStopCurrentEntry, mapAdapterError(err))
		s.setLastError(err)
		s.logger.Err(err).
			Str("func", "TimerSession.stopCurrent").
			Int64("entry_id", current.ID).
			Msg("failed to stop current entry")
		return models.Entry{}, err
	}

	s.cache.Clear()
	s.setLastError(nil)
	s.logger.Info().
		Str("func", "TimerSession.stopCurrent").
		Int64("entry_id", stopped.ID).
		Msg("current entry stopped")

	return stopped, nil
}

// rebuildAdapter runs on the actor. A failed rebuild keeps the previous
// adapter.
func (s *TimerSession) rebuildAdapter() {
	timerAdapter, err := s.factory(s.access)
	if err != nil {
		s.logger.Err(err).Str("func", "TimerSession.rebuildAdapter").Msg("failed to rebuild timer adapter")
		return
	}
	s.timerAdapter = timerAdapter
}

// sessionSubscription adapts the session to [SubscriptionHandler]. Its
// methods run on the supervisor's goroutine.
type sessionSubscription struct {
	s *TimerSession
}

func (h *sessionSubscription) OnStartSubscribe() {
	s := h.s
	s.realtime.Store(true)
	_ = s.post(context.Background(), func(context.Context) {
		s.listener.OnStartSubscribe()
		s.requestRefetch()
	})
}

func (h *sessionSubscription) OnEndSubscribe() {
	s := h.s
	s.realtime.Store(false)
	err := s.submit(context.Background(), func(context.Context) {
		s.rebuildAdapter()
		s.listener.OnEndSubscribe()
	})
	if err != nil && !errors.Is(err, ErrSessionClosed) {
		s.logger.Err(err).Str("func", "sessionSubscription.OnEndSubscribe").Msg("failed to rebuild session")
	}
}

func (h *sessionSubscription) OnError(err error) {
	s := h.s
	_ = s.post(context.Background(), func(context.Context) {
		s.listener.OnError(err)
	})
}

func (h *sessionSubscription) OnMessage(msg models.StreamMessage) {
	s := h.s
	if msg.Entry == nil {
		s.logger.Warn().Str("func", "sessionSubscription.OnMessage").Stringer("kind", msg.Kind).Msg("dropping event without payload")
		return
	}

	translate := adapter.TranslateEntry
	if msg.Kind == models.StreamDelete {
		translate = adapter.TranslateDeleted
	}

	entry, err := translate(*msg.Entry)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionSubscription.OnMessage").Stringer("kind", msg.Kind).Msg("dropping untranslatable event")
		return
	}

	s.logger.Debug().
		Str("func", "sessionSubscription.OnMessage").
		Stringer("kind", msg.Kind).
		Int64("entry_id", entry.ID).
		Msg("push event received")

	_ = s.post(context.Background(), func(context.Context) {
		switch msg.Kind {
		case models.StreamInsert:
			s.listener.OnInsertEntry(entry)
		case models.StreamUpdate:
			s.listener.OnUpdateEntry(entry)
		case models.StreamDelete:
			s.listener.OnDeleteEntry(entry)
		}
	})
	s.requestRefetch()
}
