// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates opts from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on
// [Options].
//
// Returns a wrapped error if env.Parse fails.
func parseEnv(opts any) error {
	err := env.Parse(opts)
	if err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
