// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", zerolog.InfoLevel)
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", zerolog.DebugLevel)
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", zerolog.DebugLevel)
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role", zerolog.InfoLevel) // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_SetsGlobalLevel verifies that NewLogger applies the
// requested level globally.
func TestNewLogger_SetsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	NewLogger("level-role", zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

// TestNewLogger_FiltersBelowLevel verifies that entries below the configured
// level are dropped.
func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	l := NewLogger("filter-role", zerolog.InfoLevel)
	l.Logger = l.Output(&buf)

	l.Trace().Msg("per-datagram detail")
	l.Debug().Msg("startup milestone")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sample config created")
	assert.NotEmpty(t, buf.String())
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("src", "192.168.1.20:51000").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "192.168.1.20:51000", entry["src"])
}

func TestConnectedToJournal(t *testing.T) {
	orig := journalEnabled
	t.Cleanup(func() { journalEnabled = orig })

	tests := []struct {
		name          string
		journalStream string
		socketUp      bool
		expected      bool
	}{
		{name: "no stream, no socket", journalStream: "", socketUp: false, expected: false},
		{name: "no stream, socket up", journalStream: "", socketUp: true, expected: false},
		{name: "stream, no socket", journalStream: "8:12345", socketUp: false, expected: false},
		{name: "stream and socket", journalStream: "8:12345", socketUp: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JOURNAL_STREAM", tt.journalStream)
			socketUp := tt.socketUp
			journalEnabled = func() bool { return socketUp }

			assert.Equal(t, tt.expected, ConnectedToJournal())
		})
	}
}

func TestNewSystemLogger_FallsBackToStderr(t *testing.T) {
	orig := journalEnabled
	t.Cleanup(func() { journalEnabled = orig })
	journalEnabled = func() bool { return false }
	t.Setenv("JOURNAL_STREAM", "")

	l := NewSystemLogger("fallback", zerolog.InfoLevel, "1.0.3")
	require.NotNil(t, l)
}
