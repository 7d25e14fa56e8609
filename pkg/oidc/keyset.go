// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package oidc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
)

// userAgent identifies the service to the provider's key-set endpoint.
// Some providers reject anonymous-looking clients.
const userAgent = "brics-auth-service/1.0"

var _ KeyResolverInterface = (*KeyResolver)(nil)

// KeyResolver fetches the provider's JWKS and selects the key matching
// the kid in the token header. The key set is fetched fresh on every
// resolution so rotated keys are picked up immediately.
type KeyResolver struct {
	client HTTPClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *KeyResolver) Resolve(ctx context.Context, jwksURI, rawToken string) (any, error) {
	ctx, span := r.tracer.Start(ctx, "oidc.KeyResolver.Resolve")
	defer span.End()

	kid, err := keyID(rawToken)
	if err != nil {
		r.logger.Debugf("unable to extract key id from token: %s", err)
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, err)
	}

	set, err := r.fetchKeySet(ctx, jwksURI)
	if err != nil {
		return nil, err
	}

	key, found := set.LookupKeyID(kid)
	if !found {
		r.logger.Debugf("key id %q not present in key set at %s", kid, jwksURI)
		return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		r.logger.Errorf("failed to materialize signing key %q: %s", kid, err)
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, err)
	}

	return raw, nil
}

func (r *KeyResolver) fetchKeySet(ctx context.Context, jwksURI string) (jwk.Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jwksURI, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorf("failed to fetch key set from %s: %s", jwksURI, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Errorf("key-set endpoint %s returned status %d", jwksURI, resp.StatusCode)
		return nil, fmt.Errorf("%w: key set returned status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	set, err := jwk.Parse(body)
	if err != nil {
		r.logger.Errorf("failed to parse key set from %s: %s", jwksURI, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return set, nil
}

// keyID reads the kid header without verifying the token, verification
// happens later against the resolved key.
func keyID(rawToken string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return "", fmt.Errorf("token header missing kid")
	}

	return kid, nil
}

func NewKeyResolver(client HTTPClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KeyResolver {
	r := new(KeyResolver)

	r.client = client
	if r.client == nil {
		r.client = NewHTTPClient()
	}

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
