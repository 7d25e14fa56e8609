// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	trace "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_oidc.go -source=../oidc/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_session.go github.com/isambard-sc/brics-auth-service/internal/session StoreInterface
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authz.go -mock_names ServiceInterface=MockAuthzServiceInterface github.com/isambard-sc/brics-auth-service/pkg/authorization ServiceInterface

const (
	testAudience = "zenith-jupyter"
	testIssuer   = "https://keycloak.example.org/realms/test"
)

var testSigningKey = []byte("test-hmac-key")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return raw
}

func baseClaims(now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"aud":        testAudience,
		"iss":        testIssuer,
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
		"short_name": "user1",
		"projects":   map[string]any{},
	}
}

func TestJWTVerifierVerify(t *testing.T) {
	now := time.Now()
	// nowSec is truncated to the second so boundary cases land exactly on
	// now±leeway rather than a fraction away from it.
	nowSec := now.Truncate(time.Second)
	leeway := 5 * time.Second

	tests := []struct {
		name     string
		claims   func() jwt.MapClaims
		rawToken string
		leeway   time.Duration
		allowed  []string

		expectedReason string
	}{
		{
			name:   "Valid token",
			claims: func() jwt.MapClaims { return baseClaims(now) },
		},
		{
			name: "Expired beyond leeway",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["exp"] = now.Add(-leeway - 2*time.Second).Unix()
				return claims
			},
			expectedReason: ReasonExpired,
		},
		{
			name: "Expired within leeway",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["exp"] = now.Add(-leeway + 2*time.Second).Unix()
				return claims
			},
		},
		{
			name: "Issued in future beyond leeway",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["iat"] = now.Add(leeway + 2*time.Second).Unix()
				return claims
			},
			expectedReason: ReasonNotYetValidIat,
		},
		{
			name: "Issued in future within leeway",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["iat"] = now.Add(leeway - 2*time.Second).Unix()
				return claims
			},
		},
		{
			// The iat boundary is inclusive: iat == now+leeway verifies.
			name: "Issued exactly at the leeway boundary",
			claims: func() jwt.MapClaims {
				claims := baseClaims(nowSec)
				claims["iat"] = nowSec.Add(leeway).Unix()
				return claims
			},
		},
		{
			// The exp boundary is exclusive: exp == now-leeway is expired.
			name: "Expired exactly at the leeway boundary",
			claims: func() jwt.MapClaims {
				claims := baseClaims(nowSec)
				claims["exp"] = nowSec.Add(-leeway).Unix()
				return claims
			},
			expectedReason: ReasonExpired,
		},
		{
			name: "Fractional leeway accepts inside window",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["iat"] = now.Add(1 * time.Second).Unix()
				return claims
			},
			leeway: 2500 * time.Millisecond,
		},
		{
			name: "Fractional leeway rejects outside window",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["iat"] = now.Add(4 * time.Second).Unix()
				return claims
			},
			leeway:         2500 * time.Millisecond,
			expectedReason: ReasonNotYetValidIat,
		},
		{
			name: "Wrong audience",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["aud"] = "another-service"
				return claims
			},
			expectedReason: ReasonInvalidAudience,
		},
		{
			name: "Wrong issuer",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				claims["iss"] = "https://rogue.example.org"
				return claims
			},
			expectedReason: ReasonInvalidIssuer,
		},
		{
			name:           "Algorithm not allowed by provider",
			claims:         func() jwt.MapClaims { return baseClaims(now) },
			allowed:        []string{"RS256"},
			expectedReason: ReasonSignatureInvalid,
		},
		{
			name: "Tampered signature",
			claims: func() jwt.MapClaims {
				return nil
			},
			rawToken:       signTamperedToken(t, now),
			expectedReason: ReasonSignatureInvalid,
		},
		{
			name: "Missing exp",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				delete(claims, "exp")
				return claims
			},
			expectedReason: ReasonClaimMissing,
		},
		{
			name: "Missing iat",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				delete(claims, "iat")
				return claims
			},
			expectedReason: ReasonClaimMissing + ": iat",
		},
		{
			name: "Missing short_name",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				delete(claims, "short_name")
				return claims
			},
			expectedReason: ReasonClaimMissing + ": short_name",
		},
		{
			name: "Missing projects",
			claims: func() jwt.MapClaims {
				claims := baseClaims(now)
				delete(claims, "projects")
				return claims
			},
			expectedReason: ReasonClaimMissing + ": projects",
		},
		{
			name:           "Garbage token",
			claims:         func() jwt.MapClaims { return nil },
			rawToken:       "not.a.token",
			expectedReason: ReasonMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.JWTVerifier.Verify").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			rawToken := test.rawToken
			if rawToken == "" {
				rawToken = signToken(t, test.claims())
			}

			testLeeway := test.leeway
			if testLeeway == 0 {
				testLeeway = leeway
			}
			allowed := test.allowed
			if allowed == nil {
				allowed = []string{"HS256"}
			}

			v := NewJWTVerifier(mockTracer, mockMonitor, mockLogger)

			claims, err := v.Verify(context.Background(), rawToken, testSigningKey, allowed, testAudience, testIssuer, testLeeway)

			if test.expectedReason == "" {
				if err != nil {
					t.Fatalf("expected token to verify, got %v", err)
				}
				if claims["short_name"] != "user1" {
					t.Errorf("expected short_name claim to survive, got %v", claims["short_name"])
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %T (%v)", err, err)
			}
			if verr.Reason != test.expectedReason {
				t.Errorf("expected reason %q, got %q", test.expectedReason, verr.Reason)
			}
		})
	}
}

// signTamperedToken signs with a different key so the signature check
// fails against testSigningKey.
func signTamperedToken(t *testing.T, now time.Time) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, baseClaims(now)).SignedString([]byte("other-key"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return raw
}
