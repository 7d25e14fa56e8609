// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package oidc

import "errors"

var (
	// ErrServiceUnavailable covers network and parse failures talking to
	// the identity provider. Callers surface it as a generic server
	// error without detail.
	ErrServiceUnavailable = errors.New("identity provider unavailable")

	// ErrKeyNotFound means the token's key identifier has no match in
	// the provider's key set. Callers surface it as an authentication
	// failure.
	ErrKeyNotFound = errors.New("no matching signing key found")
)
