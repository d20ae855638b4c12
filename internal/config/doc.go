// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the process options and the persisted discovery
// configuration.
//
// Process options (config file path, log level) are assembled from several
// sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// The discovery configuration itself (port and advertised servers) lives in
// a TOML file. [Load] reads it, or writes a sample file on first run so an
// operator has something to edit.
package config
