// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/jellyfin-discover/internal/config"
	"github.com/MKhiriev/jellyfin-discover/internal/handler"
	"github.com/MKhiriev/jellyfin-discover/internal/server"
	"github.com/MKhiriev/jellyfin-discover/internal/service"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: 0},
		{name: "config deserialize", err: fmt.Errorf("%w: %w", config.ErrDeserialize, cause), expected: 100},
		{name: "bind", err: fmt.Errorf("%w: %w", server.ErrBind, cause), expected: 101},
		{name: "receive", err: fmt.Errorf("%w: %w", server.ErrReceive, cause), expected: 102},
		{name: "response serialize", err: fmt.Errorf("%w: %w", service.ErrSerializeResponse, cause), expected: 103},
		{name: "send", err: fmt.Errorf("%w: %w", handler.ErrSend, cause), expected: 104},
		{name: "config serialize", err: fmt.Errorf("%w: %w", config.ErrSerialize, cause), expected: 105},
		{name: "config io", err: fmt.Errorf("%w: %w", config.ErrIO, cause), expected: 106},
		{name: "invalid log level", err: fmt.Errorf("building options: %w", config.ErrInvalidLogLevel), expected: 107},
		{name: "invalid flags", err: fmt.Errorf("%w: %w", config.ErrInvalidOptions, cause), expected: 107},
		{name: "unknown", err: cause, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestExitCodes_AreDistinct(t *testing.T) {
	seen := make(map[int]error, len(exitCodes))
	for _, c := range exitCodes {
		prev, dup := seen[c.code]
		assert.False(t, dup, "exit code %d used for both %v and %v", c.code, prev, c.kind)
		assert.NotEqual(t, 0, c.code)
		assert.NotEqual(t, ExitFailure, c.code)
		seen[c.code] = c.kind
	}
}
