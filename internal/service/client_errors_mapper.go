// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so the provider's
// message is kept.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return err
}
