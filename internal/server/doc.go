// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server owns the UDP socket of the discovery responder.
//
// It binds the port, reads one datagram at a time into a fixed-size buffer
// and hands each datagram to a [Handler] before reading the next one. Any
// transport error ends the loop; the caller is expected to exit.
package server
