// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSerializeResponse is returned when a configured server cannot be
	// turned into a wire payload. It points at a config defect and is fatal
	// at startup.
	ErrSerializeResponse = errors.New("error serializing discovery response")
)
