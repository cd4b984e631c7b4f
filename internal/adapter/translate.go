// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-timer-sync/models"
)

// TranslateEntry maps a provider payload to an [models.Entry]. Every field
// must be present; an empty description is accepted but a missing one is
// not. Errors wrap [ErrTranslation].
func TranslateEntry(raw models.RawTimeEntry) (models.Entry, error) {
	switch {
	case raw.ID == nil:
		return models.Entry{}, missingField("id")
	case raw.Description == nil:
		return models.Entry{}, missingField("description")
	case raw.Start == nil:
		return models.Entry{}, missingField("start")
	case raw.Duration == nil:
		return models.Entry{}, missingField("duration")
	}

	start, err := time.Parse(time.RFC3339, *raw.Start)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: start %q: %w", ErrTranslation, *raw.Start, err)
	}

	return models.Entry{
		ID:              *raw.ID,
		Description:     *raw.Description,
		StartedAt:       start,
		DurationSeconds: *raw.Duration,
	}, nil
}

// TranslateDeleted maps the payload of a delete frame. Delete frames may carry
// only the id, so a full translation is attempted first and the id-only form
// is the fallback.
func TranslateDeleted(raw models.RawTimeEntry) (models.Entry, error) {
	if entry, err := TranslateEntry(raw); err == nil {
		return entry, nil
	}
	if raw.ID == nil {
		return models.Entry{}, missingField("id")
	}
	return models.Entry{ID: *raw.ID}, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing field %q", ErrTranslation, name)
}
