// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

const (
	// DefaultConfigPath is used when neither JDU_CONF nor -config is set.
	// It is resolved relative to the working directory.
	DefaultConfigPath = "discover.toml"

	// DefaultLogLevel is used when neither JDU_LOG nor -log-level is set.
	DefaultLogLevel = "info"
)

// Options holds process-level settings that decide where the discovery
// configuration lives and how verbose the logs are.
//
// Struct tags:
//   - env — environment variable name (caarlos0/env).
type Options struct {
	// ConfigPath is the path of the TOML config file.
	// Env: JDU_CONF
	ConfigPath string `env:"JDU_CONF"`

	// LogLevel is a zerolog level name ("trace", "debug", "info", ...).
	// Env: JDU_LOG
	LogLevel string `env:"JDU_LOG"`
}

// Level returns the parsed LogLevel. Options returned by [GetOptions] are
// already validated; an unparsable level falls back to info.
func (o *Options) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(o.LogLevel)
	if err != nil || o.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

func defaultOptions() *Options {
	return &Options{
		ConfigPath: DefaultConfigPath,
		LogLevel:   DefaultLogLevel,
	}
}

// GetOptions loads, merges and validates the process options from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Defaults
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withEnv().
		withFlags(args).
		withDefaults().
		build()
}
