// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "bytes"

// ProbeSize is the receive buffer size and the exact length of every
// accepted probe. Longer datagrams are truncated to it by the transport.
const ProbeSize = 22

const (
	probeLower = "who is JellyfinServer?"
	probeUpper = "Who is JellyfinServer?"
)

// Both probes must be exactly ProbeSize bytes long; any mismatch makes one
// of these conversions overflow uint and fails the build.
const (
	_ = uint(len(probeLower) - ProbeSize)
	_ = uint(ProbeSize - len(probeLower))
	_ = uint(len(probeUpper) - ProbeSize)
	_ = uint(ProbeSize - len(probeUpper))
)

var probes = [...][]byte{
	[]byte(probeLower),
	[]byte(probeUpper),
}

// IsProbe reports whether buf is, byte for byte, one of the two accepted
// discovery probes. There is no trimming and no case folding beyond the two
// literals.
func IsProbe(buf []byte) bool {
	for _, p := range probes {
		if bytes.Equal(buf, p) {
			return true
		}
	}
	return false
}
