// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// time-tracking provider.
//
// [TimerAdapter] is the REST side (fetch and stop the current entry) and is
// implemented on top of resty. [StreamDialer] opens the push stream and is
// implemented on top of gorilla/websocket. Both bind the access token and
// proxy at construction time; changing either means building new values.
//
// Error values defined in errors.go let callers use [errors.Is] regardless of
// the transport (e.g. [ErrUnauthorized] for 401, [ErrStreamClosed] when the
// push connection ends).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-timer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TimerAdapter is the provider REST API as seen by the timer session.
type TimerAdapter interface {
	// FetchCurrentEntry returns the entry currently running, or nil when no
	// entry is running.
	FetchCurrentEntry(ctx context.Context) (*models.Entry, error)

	// StopEntry stops the entry identified by entryID and returns it as
	// reported by the provider after the stop.
	StopEntry(ctx context.Context, entryID int64) (models.Entry, error)
}

// TimerAdapterFactory builds a [TimerAdapter] bound to one access config.
// Construction must not perform network I/O.
type TimerAdapterFactory func(access models.AccessConfig) (TimerAdapter, error)

// Stream is one live push connection.
type Stream interface {
	// Receive blocks until the next frame arrives. It returns an error
	// wrapping [ErrStreamClosed] once the connection is gone and an error
	// wrapping [ErrMalformedFrame] for a frame that could not be decoded; the
	// stream stays usable after the latter.
	Receive() (models.StreamMessage, error)

	// Close releases the connection. It is safe to call concurrently with
	// Receive and more than once.
	Close() error
}

// StreamDialer opens push connections.
type StreamDialer interface {
	// Dial connects and authenticates with access.Token, honouring
	// access.Proxy when set.
	Dial(ctx context.Context, access models.AccessConfig) (Stream, error)
}
