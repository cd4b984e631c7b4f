// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entry is the canonical time entry record kept by the client.
//
// DurationSeconds follows the provider convention: a negative value means the
// entry is still running and no stop has been recorded yet.
type Entry struct {
	ID              int64
	Description     string
	StartedAt       time.Time
	DurationSeconds int64
}

// IsRunning reports whether the entry has no recorded stop.
func (e Entry) IsRunning() bool {
	return e.DurationSeconds < 0
}

// SameAs reports whether e and other describe the same remote entry.
// Entries are compared by ID only; other fields may differ between revisions.
func (e Entry) SameAs(other Entry) bool {
	return e.ID == other.ID
}
