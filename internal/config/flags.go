// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses command-line options from args (without the program
// name).
//
// Flags:
//
//	-c/-config   TOML config file path
//	-log-level   log level (trace, debug, info, warn, error)
func ParseFlags(args []string) (*Options, error) {
	var configPath string
	var logLevel string

	fs := flag.NewFlagSet("jellyfin-discover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configPath, "c", "", "TOML config file path")
	fs.StringVar(&configPath, "config", "", "TOML config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
	}, nil
}
