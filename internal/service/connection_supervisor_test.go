// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/models"
)

var fastWorkers = config.ClientWorkers{
	ReconnectInitialInterval: time.Millisecond,
	ReconnectMaxInterval:     5 * time.Millisecond,
}

func newTestSupervisor(t *testing.T, dialer adapter.StreamDialer, workers config.ClientWorkers) (*ConnectionSupervisor, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	s := NewConnectionSupervisor(dialer, h, workers, logger.Nop())
	t.Cleanup(s.Close)
	return s, h
}

func TestConnectionSupervisor_Open_Subscribes(t *testing.T) {
	dialer := newFakeDialer()
	s, h := newTestSupervisor(t, dialer, fastWorkers)
	access := models.AccessConfig{Token: "abc123", Proxy: "http://proxy:3128"}

	assert.Equal(t, models.Disconnected, s.State())
	require.NoError(t, s.Open(context.Background(), access))

	dialer.next(t)
	require.Eventually(t, func() bool {
		starts, _, _, _ := h.counts()
		return starts == 1
	}, waitTimeout, time.Millisecond)

	assert.Equal(t, models.Subscribed, s.State())
	assert.Equal(t, access, dialer.lastAccess())
}

func TestConnectionSupervisor_Open_Twice(t *testing.T) {
	dialer := newFakeDialer()
	s, _ := newTestSupervisor(t, dialer, fastWorkers)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	err := s.Open(context.Background(), models.AccessConfig{Token: "t"})
	require.ErrorIs(t, err, ErrSupervisorAlreadyOpen)
}

func TestConnectionSupervisor_DialFailure_RetriedAndReported(t *testing.T) {
	dialer := newFakeDialer()
	dialer.failFirst = 2
	s, h := newTestSupervisor(t, dialer, fastWorkers)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	dialer.next(t)

	require.Eventually(t, func() bool {
		starts, _, _, _ := h.counts()
		return starts == 1
	}, waitTimeout, time.Millisecond)

	errs := h.errors()
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrConnection)
		assert.ErrorIs(t, err, adapter.ErrStreamDial)
	}
	assert.EqualValues(t, 3, dialer.dials.Load())
}

func TestConnectionSupervisor_RemoteClose_Reconnects(t *testing.T) {
	dialer := newFakeDialer()
	s, h := newTestSupervisor(t, dialer, fastWorkers)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	first := dialer.next(t)
	require.Eventually(t, func() bool {
		starts, _, _, _ := h.counts()
		return starts == 1
	}, waitTimeout, time.Millisecond)

	first.drop()
	second := dialer.next(t)

	require.Eventually(t, func() bool {
		starts, ends, _, _ := h.counts()
		return starts == 2 && ends == 1
	}, waitTimeout, time.Millisecond)

	assert.True(t, first.isClosed(), "dropped stream must be released")
	assert.False(t, second.isClosed())
	assert.EqualValues(t, 1, dialer.maxOpen.Load(), "never more than one live stream")
	assert.Equal(t, models.Subscribed, s.State())
}

func TestConnectionSupervisor_Frames(t *testing.T) {
	dialer := newFakeDialer()
	s, h := newTestSupervisor(t, dialer, fastWorkers)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	st := dialer.next(t)

	st.push(models.StreamMessage{Kind: models.StreamPing})
	st.pushErr(fmt.Errorf("%w: not json", adapter.ErrMalformedFrame))
	st.push(models.StreamMessage{Kind: models.StreamOther})
	st.push(models.StreamMessage{Kind: models.StreamError, Message: "rate limited"})
	st.push(models.StreamMessage{Kind: models.StreamInsert, Entry: rawEntry(1, "a", "2024-01-01T10:00:00Z", -1)})
	st.push(models.StreamMessage{Kind: models.StreamDelete, Entry: &models.RawTimeEntry{ID: ptr(int64(1))}})

	require.Eventually(t, func() bool {
		_, _, _, msgs := h.counts()
		return msgs == 2
	}, waitTimeout, time.Millisecond)

	msgs := h.messages()
	assert.Equal(t, models.StreamInsert, msgs[0].Kind)
	assert.Equal(t, models.StreamDelete, msgs[1].Kind)

	errs := h.errors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrConnection)
	assert.Contains(t, errs[0].Error(), "rate limited")

	starts, ends, _, _ := h.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 0, ends, "malformed and error frames keep the connection")
	assert.Equal(t, models.Subscribed, s.State())
	assert.EqualValues(t, 1, dialer.dials.Load())
}

func TestConnectionSupervisor_Close(t *testing.T) {
	dialer := newFakeDialer()
	s, h := newTestSupervisor(t, dialer, fastWorkers)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	st := dialer.next(t)
	require.Eventually(t, func() bool {
		starts, _, _, _ := h.counts()
		return starts == 1
	}, waitTimeout, time.Millisecond)

	s.Close()
	s.Close()

	assert.True(t, st.isClosed())
	assert.Equal(t, models.Disconnected, s.State())
	assert.EqualValues(t, 0, dialer.open.Load())

	_, ends, _, _ := h.counts()
	assert.Equal(t, 0, ends, "explicit close is not a remote close")

	// reopen after close
	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	dialer.next(t)
}

func TestConnectionSupervisor_Close_CancelsPendingRetry(t *testing.T) {
	dialer := newFakeDialer()
	dialer.failFirst = 1 << 30
	s, h := newTestSupervisor(t, dialer, config.ClientWorkers{
		ReconnectInitialInterval: time.Hour,
		ReconnectMaxInterval:     time.Hour,
	})

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	require.Eventually(t, func() bool {
		_, _, errs, _ := h.counts()
		return errs == 1
	}, waitTimeout, time.Millisecond)
	assert.Equal(t, models.Connecting, s.State())

	closed := make(chan struct{})
	go func() {
		s.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(waitTimeout):
		t.Fatal("Close did not cancel the reconnect delay")
	}
	assert.EqualValues(t, 1, dialer.dials.Load())
}

func TestConnectionSupervisor_ContextCancel_StopsLoop(t *testing.T) {
	dialer := newFakeDialer()
	s, _ := newTestSupervisor(t, dialer, fastWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Open(ctx, models.AccessConfig{Token: "t"}))
	st := dialer.next(t)

	cancel()
	require.Eventually(t, st.isClosed, waitTimeout, time.Millisecond)
	require.Eventually(t, func() bool { return s.State() == models.Disconnected }, waitTimeout, time.Millisecond)

	require.NoError(t, s.Open(context.Background(), models.AccessConfig{Token: "t"}))
	dialer.next(t)
}
