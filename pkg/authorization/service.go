// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	platform string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DeriveState reduces the normalized projects claim to the subset
// usable on the configured platform. An empty result is an
// authorization failure, a verified identity with zero usable projects
// must not get a session.
func (s *Service) DeriveState(ctx context.Context, projects types.ProjectsClaim) (types.AuthorizationState, error) {
	_, span := s.tracer.Start(ctx, "authorization.Service.DeriveState")
	defer span.End()

	state := DeriveAuthorizationState(projects, s.platform)
	if len(state) == 0 {
		s.logger.Debugf("no projects with resources on platform %q", s.platform)
		return nil, ErrNoValidPlatform
	}

	return state, nil
}

// DeriveAuthorizationState scans each project's resources in original
// order and keeps the first one whose name equals platform. Later
// resources for the same platform are ignored, at most one grant per
// project. Projects without a match contribute nothing.
func DeriveAuthorizationState(projects types.ProjectsClaim, platform string) types.AuthorizationState {
	state := types.AuthorizationState{}

	for id, project := range projects {
		for _, resource := range project.Resources {
			if resource.Name == platform {
				state[id] = types.ProjectGrant{
					Name:     project.Name,
					Username: resource.Username,
				}
				break
			}
		}
	}

	return state
}

func NewService(platform string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.platform = platform

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
