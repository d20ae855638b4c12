// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON record sent back to a client for every configured
// server. Keys are PascalCase because that is what Jellyfin clients parse.
type Response struct {
	Address string `json:"Address"`
	ID      string `json:"Id"`
	Name    string `json:"Name"`

	// EndpointAddress is reserved and always nil, encoded as JSON null.
	EndpointAddress *string `json:"EndpointAddress"`
}

// NewResponse builds the [Response] advertised for s.
func NewResponse(s Server) Response {
	return Response{
		Address:         s.URL,
		ID:              s.ID,
		Name:            s.Name,
		EndpointAddress: nil,
	}
}

// Payload is one serialized [Response], ready to be written as a single
// datagram. Payloads are built once at startup and only read afterwards.
type Payload []byte
