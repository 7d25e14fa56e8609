// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

type VerifierInterface interface {
	// Verify validates signature and claims of rawToken against
	// signingKey, accepting only algorithms in allowedAlgorithms.
	Verify(ctx context.Context, rawToken string, signingKey any, allowedAlgorithms []string, audience, issuer string, leeway time.Duration) (jwt.MapClaims, error)
}

type ServiceInterface interface {
	// Authenticate runs the discovery, key-resolution, verification and
	// claim-normalization pipeline for a raw bearer token.
	Authenticate(ctx context.Context, rawToken string) (*Identity, error)
}

// Identity is the outcome of a successful token verification: the
// session username and the canonicalized projects claim.
type Identity struct {
	Username string
	Projects types.ProjectsClaim
}
