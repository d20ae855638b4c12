// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Error kinds returned by [Load], [Decode] and [Config.Encode]. Returned
// errors wrap one of these together with the underlying cause, so callers
// should match with [errors.Is].
var (
	// ErrDeserialize indicates that the config file exists but its content
	// is not a valid configuration (malformed TOML, wrong types, port out
	// of range).
	ErrDeserialize = errors.New("error deserializing config")
	// ErrSerialize indicates that an in-memory config could not be encoded.
	ErrSerialize = errors.New("error serializing config")
	// ErrIO indicates a filesystem failure while resolving, reading or
	// writing the config file.
	ErrIO = errors.New("config file I/O error")
)

var (
	// ErrInvalidOptions is returned by [GetOptions] when the environment or
	// the command line cannot be turned into usable [Options].
	ErrInvalidOptions = errors.New("invalid options")
	// ErrInvalidLogLevel is a more specific [ErrInvalidOptions] for a log
	// level zerolog does not understand.
	ErrInvalidLogLevel = fmt.Errorf("%w: invalid log level", ErrInvalidOptions)
)
