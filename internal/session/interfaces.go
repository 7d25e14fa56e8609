// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"time"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

// Session is the per-login persisted state. BricsProjects is written
// once by the login flow and read-only afterwards, replacement happens
// only on the next login.
type Session struct {
	ID            string                   `json:"id"`
	Username      string                   `json:"username"`
	BricsProjects types.AuthorizationState `json:"brics_projects"`
	CreatedAt     time.Time                `json:"created_at"`
}

type StoreInterface interface {
	Get(context.Context, string) (*Session, error)
	Save(context.Context, *Session) error
	Delete(context.Context, string) error
}
