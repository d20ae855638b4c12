// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/jellyfin-discover/internal/logger"
)

// Load resolves path against the working directory and reads the Config
// stored there.
//
// If nothing exists at the resolved path, a [SampleConfig] is written to it
// and returned, so the first run of the daemon leaves behind a file for the
// operator to edit.
//
// Errors wrap [ErrDeserialize], [ErrSerialize] or [ErrIO]. None of them are
// retried.
func Load(path string, log *logger.Logger) (*Config, error) {
	log.Trace().Str("schema_version", SchemaVersion).Msg("loading config")

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %w", ErrIO, path, err)
	}

	_, err = os.Stat(absPath)
	switch {
	case err == nil:
		log.Trace().Str("path", absPath).Msg("using existing config file")
		return readConfig(absPath)
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", absPath).Msg("creating sample config, edit it and restart")
		return createSampleConfig(absPath)
	default:
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
}

func readConfig(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return Decode(bytes.NewReader(contents))
}

func createSampleConfig(path string) (*Config, error) {
	cfg := SampleConfig()

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return cfg, nil
}
