// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Server describes one upstream media server advertised to discovery
// clients. It is read from the config file and never mutated afterwards.
type Server struct {
	// URL is the address clients should connect to
	// (e.g. "http://jellyfin.local:8096").
	URL string `toml:"url"`

	// ID is the stable server identifier reported to clients.
	// Expected to be non-empty, but not validated.
	ID string `toml:"id"`

	// Name is the human-readable label shown in client server pickers.
	Name string `toml:"name"`
}

// NewServer constructs a [Server] from its url, id and name.
func NewServer(url, id, name string) Server {
	return Server{
		URL:  url,
		ID:   id,
		Name: name,
	}
}
