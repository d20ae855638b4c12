// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler answers Jellyfin discovery probes.
package handler

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/jellyfin-discover/internal/logger"
	"github.com/MKhiriev/jellyfin-discover/models"
)

// Discovery replies to valid probes with the preconstructed payloads.
// It holds no mutable state and is safe to share.
type Discovery struct {
	payloads []models.Payload
}

// NewDiscovery returns a handler that answers every probe with payloads,
// in order.
func NewDiscovery(payloads []models.Payload) *Discovery {
	return &Discovery{payloads: payloads}
}

// Handle checks datagram and, if it is a probe, writes every payload to src
// as a separate datagram. Anything else is logged at trace level and
// ignored.
//
// The first failed write aborts with [ErrSend]; remaining payloads are not
// sent.
func (h *Discovery) Handle(ctx context.Context, w ResponseWriter, datagram []byte, src net.Addr) error {
	log := logger.FromContext(ctx)

	if !IsProbe(datagram) {
		log.Trace().Hex("datagram", datagram).Msg("invalid discovery")
		return nil
	}

	log.Trace().Msg("valid discovery")

	for i, p := range h.payloads {
		if _, err := w.WriteTo(p, src); err != nil {
			return fmt.Errorf("%w: payload #%d to %s: %w", ErrSend, i, src, err)
		}
		log.Trace().Int("payload", i).Msg("sent response")
	}

	return nil
}
