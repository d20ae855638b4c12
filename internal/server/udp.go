// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/MKhiriev/jellyfin-discover/internal/handler"
	"github.com/MKhiriev/jellyfin-discover/internal/logger"
)

// Listen binds a UDP socket on 0.0.0.0:port. Port 0 picks a free port.
func Listen(port uint16) (net.PacketConn, error) {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(int(port)))

	conn, err := net.ListenPacket("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrBind, addr, err)
	}

	return conn, nil
}

// UDPServer runs the discovery loop over a bound PacketConn. Datagrams are
// handled strictly one at a time, in arrival order.
type UDPServer struct {
	conn    PacketConn
	handler Handler
	logger  *logger.Logger
}

// NewUDPServer returns a server reading from conn and passing every
// datagram to h.
func NewUDPServer(conn PacketConn, h Handler, logger *logger.Logger) *UDPServer {
	return &UDPServer{
		conn:    conn,
		handler: h,
		logger:  logger,
	}
}

// Serve runs the receive loop until a receive or handler error occurs, or
// until ctx is cancelled. Cancellation closes the connection and returns
// ctx.Err(); every other return is fatal.
//
// Each iteration reads into a freshly zeroed buffer of [handler.ProbeSize]
// bytes, so a short datagram is padded with zeros and a long one is
// truncated.
func (s *UDPServer) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	s.logger.Debug().Stringer("addr", s.conn.LocalAddr()).Msg("discovery loop started")

	for {
		buf := make([]byte, handler.ProbeSize)

		n, src, err := s.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %w", ErrReceive, err)
		}

		log := s.logger.With().Stringer("src", src).Logger()
		log.Trace().Int("bytes", n).Msg("ingested datagram")

		if err := s.handler.Handle(log.WithContext(ctx), s.conn, buf, src); err != nil {
			return err
		}
	}
}
