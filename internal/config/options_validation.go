// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged [Options] before they are used at startup.
func (o *Options) validate() error {
	if _, err := zerolog.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLogLevel, o.LogLevel, err)
	}

	return nil
}
