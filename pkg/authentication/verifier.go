// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
)

// requiredClaims must all be present for a token to be accepted,
// regardless of what else verifies.
var requiredClaims = []string{"aud", "exp", "iss", "iat", "short_name", "projects"}

var _ VerifierInterface = (*JWTVerifier)(nil)

type JWTVerifier struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Verify checks the token signature and claims. The accepted signature
// algorithms come from the provider's discovery document, never from
// the token header, which blocks algorithm-substitution attacks.
//
// Time claims use leeway with asymmetric boundaries: iat passes while
// iat <= now+leeway, exp passes only while exp > now-leeway.
func (v *JWTVerifier) Verify(ctx context.Context, rawToken string, signingKey any, allowedAlgorithms []string, audience, issuer string, leeway time.Duration) (jwt.MapClaims, error) {
	_, span := v.tracer.Start(ctx, "authentication.JWTVerifier.Verify")
	defer span.End()

	token, err := jwt.Parse(
		rawToken,
		func(*jwt.Token) (any, error) { return signingKey, nil },
		jwt.WithValidMethods(allowedAlgorithms),
		jwt.WithAudience(audience),
		jwt.WithIssuer(issuer),
		jwt.WithLeeway(leeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		verr := errorFromJWT(err)
		v.logger.Debugf("token verification failed: %s", verr.Reason)
		return nil, verr
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, newError(ReasonInvalidToken, nil)
	}

	for _, claim := range requiredClaims {
		if _, present := claims[claim]; !present {
			v.logger.Debugf("token rejected, claim %q missing", claim)
			return nil, missingClaimError(claim)
		}
	}

	return claims, nil
}

func NewJWTVerifier(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return &JWTVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
