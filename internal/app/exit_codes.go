// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app maps the daemon's fatal error kinds to process exit codes.
//
// Every fallible startup or transport step returns an error wrapping one
// sentinel; the entry point logs it and exits with [ExitCode]. Supervisors
// (systemd, s6, docker) can tell failures apart by status alone.
package app

import (
	"errors"

	"github.com/MKhiriev/jellyfin-discover/internal/config"
	"github.com/MKhiriev/jellyfin-discover/internal/handler"
	"github.com/MKhiriev/jellyfin-discover/internal/server"
	"github.com/MKhiriev/jellyfin-discover/internal/service"
)

const (
	// ExitFailure is used for errors without a dedicated code.
	ExitFailure = 1

	// ExitConfigDeserialize means the config file exists but is malformed.
	ExitConfigDeserialize = 100

	// ExitBind means the UDP port could not be bound.
	ExitBind = 101

	// ExitReceive means reading a datagram failed.
	ExitReceive = 102

	// ExitResponseSerialize means a configured server could not be encoded.
	ExitResponseSerialize = 103

	// ExitSend means a response datagram could not be sent.
	ExitSend = 104

	// ExitConfigSerialize means the sample config could not be encoded.
	ExitConfigSerialize = 105

	// ExitConfigIO means the config file could not be read or written.
	ExitConfigIO = 106

	// ExitInvalidOptions means the environment or flags were unusable.
	ExitInvalidOptions = 107
)

var exitCodes = []struct {
	kind error
	code int
}{
	{config.ErrDeserialize, ExitConfigDeserialize},
	{config.ErrSerialize, ExitConfigSerialize},
	{config.ErrIO, ExitConfigIO},
	{config.ErrInvalidOptions, ExitInvalidOptions},
	{server.ErrBind, ExitBind},
	{server.ErrReceive, ExitReceive},
	{service.ErrSerializeResponse, ExitResponseSerialize},
	{handler.ErrSend, ExitSend},
}

// ExitCode returns the process exit status for err. A nil error maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	for _, c := range exitCodes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}

	return ExitFailure
}
