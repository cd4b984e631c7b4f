// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-timer-sync/internal/config"
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/models"
	"github.com/gorilla/websocket"
)

const (
	frameAuthenticate = "authenticate"
	framePing         = "ping"
	framePong         = "pong"
	frameError        = "error"

	modelTimeEntry = "time_entry"

	pongWriteTimeout = 5 * time.Second
	authWriteTimeout = 5 * time.Second
)

// streamFrame is the JSON shape of every frame on the push stream. Control
// frames use Type; data frames use Action, Model and Data.
type streamFrame struct {
	Type     string               `json:"type,omitempty"`
	APIToken string               `json:"api_token,omitempty"`
	Message  string               `json:"message,omitempty"`
	Action   string               `json:"action,omitempty"`
	Model    string               `json:"model,omitempty"`
	Data     *models.RawTimeEntry `json:"data,omitempty"`
}

type wsStreamDialer struct {
	address          string
	handshakeTimeout time.Duration
	logger           *logger.Logger
}

// NewWebSocketStreamDialer returns a [StreamDialer] connecting to
// adapterCfg.StreamAddress.
func NewWebSocketStreamDialer(adapterCfg config.ClientAdapter, logger *logger.Logger) StreamDialer {
	return &wsStreamDialer{
		address:          adapterCfg.StreamAddress,
		handshakeTimeout: adapterCfg.HandshakeTimeout,
		logger:           logger,
	}
}

// Dial implements [StreamDialer]. After the handshake it sends the
// authenticate frame carrying the API token.
func (d *wsStreamDialer) Dial(ctx context.Context, access models.AccessConfig) (Stream, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: d.handshakeTimeout,
	}
	if access.Proxy != "" {
		proxyURL, err := url.Parse(access.Proxy)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid proxy: %w", ErrStreamDial, err)
		}
		dialer.Proxy = http.ProxyURL(proxyURL)
	}

	conn, _, err := dialer.DialContext(ctx, d.address, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamDial, err)
	}

	_ = conn.SetWriteDeadline(authDeadline(ctx, time.Now()))
	if err = conn.WriteJSON(streamFrame{Type: frameAuthenticate, APIToken: access.Token}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: authenticate: %w", ErrStreamDial, err)
	}
	_ = conn.SetWriteDeadline(time.Time{})

	d.logger.Debug().Str("func", "wsStreamDialer.Dial").Str("address", d.address).Msg("push stream connected")

	return &wsStream{conn: conn}, nil
}

// authDeadline bounds the authenticate write by authWriteTimeout, or by the
// ctx deadline when that comes first.
func authDeadline(ctx context.Context, now time.Time) time.Time {
	deadline := now.Add(authWriteTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

type wsStream struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// Receive implements [Stream]. Ping frames are answered with a pong before
// being returned to the caller.
func (s *wsStream) Receive() (models.StreamMessage, error) {
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return models.StreamMessage{}, fmt.Errorf("%w: %w", ErrStreamClosed, err)
	}

	var frame streamFrame
	if err = json.Unmarshal(data, &frame); err != nil {
		return models.StreamMessage{}, fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}

	switch frame.Type {
	case framePing:
		if err = s.pong(); err != nil {
			return models.StreamMessage{}, fmt.Errorf("%w: pong: %w", ErrStreamClosed, err)
		}
		return models.StreamMessage{Kind: models.StreamPing}, nil
	case frameError:
		return models.StreamMessage{Kind: models.StreamError, Message: frame.Message}, nil
	}

	if frame.Model != modelTimeEntry {
		return models.StreamMessage{Kind: models.StreamOther}, nil
	}

	var kind models.StreamMessageKind
	switch frame.Action {
	case "INSERT":
		kind = models.StreamInsert
	case "UPDATE":
		kind = models.StreamUpdate
	case "DELETE":
		kind = models.StreamDelete
	default:
		return models.StreamMessage{Kind: models.StreamOther}, nil
	}
	if frame.Data == nil {
		return models.StreamMessage{}, fmt.Errorf("%w: %s frame without data", ErrMalformedFrame, frame.Action)
	}

	return models.StreamMessage{Kind: kind, Entry: frame.Data}, nil
}

func (s *wsStream) pong() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(pongWriteTimeout))
	return s.conn.WriteJSON(streamFrame{Type: framePong})
}

// Close implements [Stream].
func (s *wsStream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
