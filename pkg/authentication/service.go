// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/pkg/oidc"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	config *Config

	discovery oidc.DiscoveryInterface
	keys      oidc.KeyResolverInterface
	verifier  VerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate turns a raw bearer token into a verified identity.
// Discovery and the key set are fetched fresh on every call, trading
// latency for always-current keys. Every step is terminal on failure,
// nothing is retried.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*Identity, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Authenticate")
	defer span.End()

	providerConfig, err := s.discovery.Fetch(ctx, s.config.OidcServer)
	if err != nil {
		return nil, err
	}

	signingKey, err := s.keys.Resolve(ctx, providerConfig.JWKSURI, rawToken)
	if err != nil {
		return nil, err
	}

	claims, err := s.verifier.Verify(
		ctx,
		rawToken,
		signingKey,
		providerConfig.SigningAlgorithms,
		s.config.Audience,
		s.config.OidcServer,
		s.config.Leeway,
	)
	if err != nil {
		return nil, err
	}

	username, _ := claims["short_name"].(string)
	if username == "" {
		return nil, missingClaimError("short_name")
	}

	return &Identity{
		Username: username,
		Projects: NormalizeProjects(claims, s.logger),
	}, nil
}

func NewService(
	config *Config,
	discovery oidc.DiscoveryInterface,
	keys oidc.KeyResolverInterface,
	verifier VerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.config = config
	s.discovery = discovery
	s.keys = keys
	s.verifier = verifier

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
