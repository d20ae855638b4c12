// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the startup-time business logic of the daemon.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/jellyfin-discover/models"
)

// PreconstructResponses serializes one [models.Response] per server, in
// input order. The result is computed once and shared read-only by every
// iteration of the discovery loop.
//
// The first server that cannot be encoded aborts the whole call with
// [ErrSerializeResponse]; nothing is skipped.
func PreconstructResponses(servers []models.Server) ([]models.Payload, error) {
	payloads := make([]models.Payload, 0, len(servers))

	for i, s := range servers {
		// encoding/json would silently replace invalid bytes with U+FFFD
		if !utf8.ValidString(s.URL) || !utf8.ValidString(s.ID) || !utf8.ValidString(s.Name) {
			return nil, fmt.Errorf("%w: server #%d contains invalid UTF-8", ErrSerializeResponse, i)
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(models.NewResponse(s)); err != nil {
			return nil, fmt.Errorf("%w: server #%d: %w", ErrSerializeResponse, i, err)
		}

		payloads = append(payloads, bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	}

	return payloads, nil
}
