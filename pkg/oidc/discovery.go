// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
)

const wellKnownPath = "/.well-known/openid-configuration"

// maxMetadataSize bounds provider responses, discovery documents and
// key sets are small.
const maxMetadataSize = 1 << 20

// Configuration is the subset of the provider metadata document the
// login pipeline needs.
type Configuration struct {
	SigningAlgorithms []string `json:"id_token_signing_alg_values_supported"`
	JWKSURI           string   `json:"jwks_uri"`
}

// NewHTTPClient returns the default outbound client: otel-instrumented
// with a 10 second timeout. Verification either completes or fails
// within that window, no retries.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}
}

var _ DiscoveryInterface = (*DiscoveryClient)(nil)

type DiscoveryClient struct {
	client HTTPClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DiscoveryClient) Fetch(ctx context.Context, serverBaseURL string) (*Configuration, error) {
	ctx, span := d.tracer.Start(ctx, "oidc.DiscoveryClient.Fetch")
	defer span.End()

	url := strings.TrimRight(serverBaseURL, "/") + wellKnownPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.logger.Errorf("failed to build discovery request: %s", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Errorf("failed to fetch OIDC config from %s: %s", url, err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		d.logger.Errorf("discovery endpoint %s returned status %d", url, resp.StatusCode)
		return nil, fmt.Errorf("%w: discovery returned status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize))
	if err != nil {
		d.logger.Errorf("failed to read discovery response: %s", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	config := new(Configuration)
	if err := json.Unmarshal(body, config); err != nil {
		d.logger.Errorf("failed to parse discovery response: %s", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return config, nil
}

func NewDiscoveryClient(client HTTPClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DiscoveryClient {
	d := new(DiscoveryClient)

	d.client = client
	if d.client == nil {
		d.client = NewHTTPClient()
	}

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
