// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionState describes where a push subscription is in its lifecycle.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Subscribed
	Reconnecting
	// Failed is only reached when synchronization is refused before any
	// connection attempt (e.g. missing token).
	Failed
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Subscribed:
		return "subscribed"
	case Reconnecting:
		return "reconnecting"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
