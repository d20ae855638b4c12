// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

import (
	"context"
	"net"

	"github.com/MKhiriev/jellyfin-discover/internal/handler"
)

// PacketConn is the subset of net.PacketConn the server uses.
type PacketConn interface {
	// ReadFrom reads one datagram into p. Bytes beyond len(p) are
	// discarded by the transport.
	ReadFrom(p []byte) (n int, addr net.Addr, err error)

	// WriteTo sends p as one datagram to addr.
	WriteTo(p []byte, addr net.Addr) (n int, err error)

	// Close closes the connection and unblocks a pending ReadFrom.
	Close() error

	// LocalAddr returns the bound address.
	LocalAddr() net.Addr
}

// Handler processes one received datagram. A non-nil error stops the
// server.
type Handler interface {
	Handle(ctx context.Context, w handler.ResponseWriter, datagram []byte, src net.Addr) error
}
