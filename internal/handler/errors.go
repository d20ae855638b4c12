// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrSend is returned by [Discovery.Handle] when a response datagram could
// not be written. It is treated as fatal: a socket that cannot send is
// assumed broken for every future client too.
var ErrSend = errors.New("error sending discovery response")
