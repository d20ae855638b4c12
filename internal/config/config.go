// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/jellyfin-discover/models"
)

const (
	// SchemaVersion is written into every config file. It is kept for
	// forward compatibility and is not interpreted on load.
	SchemaVersion = "1"

	// DefaultPort is the UDP port Jellyfin clients probe.
	DefaultPort uint16 = 7359
)

// Config is the persisted discovery configuration.
//
// Example file:
//
//	version = "1"
//	port = 7359
//
//	[[server]]
//	url = "http://jellyfin-test.local"
//	id = "CHANGEME"
//	name = "Test Jellyfin Server"
type Config struct {
	// Version is the config schema version, currently always "1".
	Version string `toml:"version"`

	// Port is the UDP port the responder binds on 0.0.0.0.
	Port uint16 `toml:"port"`

	// Servers is the ordered list of advertised servers. Responses are
	// sent in this order.
	Servers []models.Server `toml:"server"`
}

// NewConfig returns a Config for the current schema version.
func NewConfig(port uint16, servers ...models.Server) *Config {
	return &Config{
		Version: SchemaVersion,
		Port:    port,
		Servers: servers,
	}
}

// SampleConfig returns the config written on first run: the default port
// and a single placeholder server the operator is expected to replace.
func SampleConfig() *Config {
	return NewConfig(DefaultPort, models.NewServer(
		"http://jellyfin-test.local",
		"CHANGEME",
		"Test Jellyfin Server",
	))
}

// requiredKeys must be present in every config file. A missing port would
// otherwise decode as 0 and bind a random port.
var requiredKeys = []string{"version", "port", "server"}

// Decode reads a TOML-encoded Config from r.
func Decode(r io.Reader) (*Config, error) {
	cfg := new(Config)
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}

	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return nil, fmt.Errorf("%w: missing required key %q", ErrDeserialize, key)
		}
	}

	return cfg, nil
}

// Encode writes cfg to w in TOML.
func (cfg *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	return nil
}
