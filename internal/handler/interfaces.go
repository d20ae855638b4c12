// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

//go:generate mockgen -source=interfaces.go -destination=../mock/response_writer_mock.go -package=mock

import "net"

// ResponseWriter sends one datagram to addr. *net.UDPConn and any
// net.PacketConn satisfy it.
type ResponseWriter interface {
	WriteTo(p []byte, addr net.Addr) (int, error)
}
