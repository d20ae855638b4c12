// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/jellyfin-discover/models"
)

func TestPreconstructResponses_OrderAndContent(t *testing.T) {
	// Arrange
	servers := make([]models.Server, 0, 5)
	for i := 0; i < 5; i++ {
		servers = append(servers, models.NewServer(
			fmt.Sprintf("http://jellyfin-%d.local:8096", i),
			fmt.Sprintf("id-%d", i),
			fmt.Sprintf("Server %d", i),
		))
	}

	// Act
	payloads, err := PreconstructResponses(servers)

	// Assert
	require.NoError(t, err)
	require.Len(t, payloads, len(servers))

	for i, p := range payloads {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(p, &decoded))

		assert.Equal(t, servers[i].URL, decoded["Address"])
		assert.Equal(t, servers[i].ID, decoded["Id"])
		assert.Equal(t, servers[i].Name, decoded["Name"])

		endpoint, present := decoded["EndpointAddress"]
		assert.True(t, present, "EndpointAddress must be present")
		assert.Nil(t, endpoint)
	}
}

func TestPreconstructResponses_ExactBytes(t *testing.T) {
	payloads, err := PreconstructResponses([]models.Server{
		models.NewServer("http://jellyfin-test.local", "CHANGEME", "Test Jellyfin Server"),
	})

	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t,
		`{"Address":"http://jellyfin-test.local","Id":"CHANGEME","Name":"Test Jellyfin Server","EndpointAddress":null}`,
		string(payloads[0]),
	)
}

func TestPreconstructResponses_Empty(t *testing.T) {
	payloads, err := PreconstructResponses(nil)

	require.NoError(t, err)
	assert.Empty(t, payloads)
}

func TestPreconstructResponses_EscapesSpecialCharacters(t *testing.T) {
	payloads, err := PreconstructResponses([]models.Server{
		models.NewServer("http://a", "x", `Kid's "Den" <4K> ñ`),
	})
	require.NoError(t, err)

	var decoded models.Response
	require.NoError(t, json.Unmarshal(payloads[0], &decoded))
	assert.Equal(t, `Kid's "Den" <4K> ñ`, decoded.Name)
}

func TestPreconstructResponses_NoHTMLEscaping(t *testing.T) {
	payloads, err := PreconstructResponses([]models.Server{
		models.NewServer("http://a/?x=1&y=2", "x", "Cinema <4K>"),
	})

	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t,
		`{"Address":"http://a/?x=1&y=2","Id":"x","Name":"Cinema <4K>","EndpointAddress":null}`,
		string(payloads[0]),
	)
}

func TestPreconstructResponses_InvalidUTF8(t *testing.T) {
	payloads, err := PreconstructResponses([]models.Server{
		models.NewServer("http://ok", "ok", "ok"),
		models.NewServer("http://bad", "bad", "broken \xff name"),
	})

	require.Error(t, err)
	assert.Nil(t, payloads)
	assert.ErrorIs(t, err, ErrSerializeResponse)
	assert.Contains(t, err.Error(), "server #1")
}
