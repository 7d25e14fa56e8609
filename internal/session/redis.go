// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/internal/types"
)

const keyPrefix = "brics-auth-service:session:"

var ErrSessionNotFound = errors.New("session not found")

// NewSession mints a session for a freshly authenticated user.
func NewSession(username string, state types.AuthorizationState) *Session {
	return &Session{
		ID:            uuid.NewString(),
		Username:      username,
		BricsProjects: state,
		CreatedAt:     time.Now().UTC(),
	}
}

var _ StoreInterface = (*Store)(nil)

// Store persists sessions in redis as JSON with a fixed TTL. The
// brics_projects mapping round-trips unchanged through a save/load
// cycle.
type Store struct {
	client redis.UniversalClient
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Store.Get")
	defer span.End()

	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Errorf("failed to read session %s: %s", id, err)
		return nil, err
	}

	session := new(Session)
	if err := json.Unmarshal(payload, session); err != nil {
		s.logger.Errorf("failed to decode session %s: %s", id, err)
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}

	return session, nil
}

func (s *Store) Save(ctx context.Context, session *Session) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.Save")
	defer span.End()

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		s.logger.Errorf("failed to persist session %s: %s", session.ID, err)
		return err
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.Delete")
	defer span.End()

	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		s.logger.Errorf("failed to delete session %s: %s", id, err)
		return err
	}

	return nil
}

func NewStore(client redis.UniversalClient, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = client
	s.ttl = ttl

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
