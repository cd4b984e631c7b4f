// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied values before the client uses them
// to reach the provider. Each Validator reports the first rule that fails as
// a sentinel error, optionally limited to the named fields.
package validators

import "context"

// Validator checks a value, or only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
