// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBind is returned by [Listen] when the UDP port cannot be bound
	// (port in use, privileged port, invalid address).
	ErrBind = errors.New("error binding UDP socket")

	// ErrReceive is returned by [UDPServer.Serve] when reading a datagram
	// fails.
	ErrReceive = errors.New("error receiving datagram")
)
