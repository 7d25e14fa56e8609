// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package oidc

import (
	"context"
	"net/http"
)

// HTTPClientInterface abstracts the HTTP client used for discovery and
// key-set fetches so tests and callers can swap transports. The
// standard http.Client satisfies it.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

type DiscoveryInterface interface {
	// Fetch retrieves the provider metadata document for the given
	// server base URL. It is called fresh on every login, no caching.
	Fetch(ctx context.Context, serverBaseURL string) (*Configuration, error)
}

type KeyResolverInterface interface {
	// Resolve returns the public key that signed rawToken, looked up by
	// the token's header key identifier in the key set at jwksURI.
	Resolve(ctx context.Context, jwksURI, rawToken string) (any, error)
}
