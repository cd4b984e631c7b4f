// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StreamMessageKind classifies a frame received over the push stream.
type StreamMessageKind int

const (
	StreamOther StreamMessageKind = iota
	StreamInsert
	StreamUpdate
	StreamDelete
	StreamPing
	StreamError
)

func (k StreamMessageKind) String() string {
	switch k {
	case StreamInsert:
		return "insert"
	case StreamUpdate:
		return "update"
	case StreamDelete:
		return "delete"
	case StreamPing:
		return "ping"
	case StreamError:
		return "error"
	default:
		return "other"
	}
}

// StreamMessage is a decoded push frame. Entry is set for insert, update and
// delete frames; Message is set for error frames.
type StreamMessage struct {
	Kind    StreamMessageKind
	Entry   *RawTimeEntry
	Message string
}
