// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by the client
// (e.g. TIMER_APP_TOKEN, TIMER_CONFIG).
const EnvPrefix = "TIMER_"

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags, all under
// [EnvPrefix].
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
