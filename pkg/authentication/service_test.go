// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	trace "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/isambard-sc/brics-auth-service/internal/types"
	"github.com/isambard-sc/brics-auth-service/pkg/oidc"
)

func TestServiceAuthenticate(t *testing.T) {
	serverURL := "https://keycloak.example.org/realms/test"
	rawToken := "raw.jwt.token"
	signingKey := "public-key"
	providerConfig := &oidc.Configuration{
		SigningAlgorithms: []string{"RS256"},
		JWKSURI:           serverURL + "/protocol/openid-connect/certs",
	}
	verifiedClaims := jwt.MapClaims{
		"short_name": "user1",
		"projects": map[string]any{
			"proj1": map[string]any{
				"name": "Project One",
				"resources": []any{
					map[string]any{"name": "cluster-a", "username": "user1.proj1"},
				},
			},
		},
	}

	discoveryErr := errors.New("discovery down")
	keyErr := errors.New("no such key")
	verifyErr := newError(ReasonExpired, nil)

	tests := []struct {
		name string

		setupMocks func(*MockDiscoveryInterface, *MockKeyResolverInterface, *MockVerifierInterface)

		expectedIdentity *Identity
		expectedError    error
	}{
		{
			name: "Success",
			setupMocks: func(discovery *MockDiscoveryInterface, keys *MockKeyResolverInterface, verifier *MockVerifierInterface) {
				discovery.EXPECT().Fetch(gomock.Any(), serverURL).Return(providerConfig, nil)
				keys.EXPECT().Resolve(gomock.Any(), providerConfig.JWKSURI, rawToken).Return(signingKey, nil)
				verifier.EXPECT().Verify(gomock.Any(), rawToken, signingKey, providerConfig.SigningAlgorithms, "zenith-jupyter", serverURL, 5*time.Second).Return(verifiedClaims, nil)
			},
			expectedIdentity: &Identity{
				Username: "user1",
				Projects: types.ProjectsClaim{
					"proj1": {
						Name: "Project One",
						Resources: []types.Resource{
							{Name: "cluster-a", Username: "user1.proj1"},
						},
					},
				},
			},
		},
		{
			name: "Discovery failure",
			setupMocks: func(discovery *MockDiscoveryInterface, keys *MockKeyResolverInterface, verifier *MockVerifierInterface) {
				discovery.EXPECT().Fetch(gomock.Any(), serverURL).Return(nil, discoveryErr)
			},
			expectedError: discoveryErr,
		},
		{
			name: "Key resolution failure",
			setupMocks: func(discovery *MockDiscoveryInterface, keys *MockKeyResolverInterface, verifier *MockVerifierInterface) {
				discovery.EXPECT().Fetch(gomock.Any(), serverURL).Return(providerConfig, nil)
				keys.EXPECT().Resolve(gomock.Any(), providerConfig.JWKSURI, rawToken).Return(nil, keyErr)
			},
			expectedError: keyErr,
		},
		{
			name: "Verification failure",
			setupMocks: func(discovery *MockDiscoveryInterface, keys *MockKeyResolverInterface, verifier *MockVerifierInterface) {
				discovery.EXPECT().Fetch(gomock.Any(), serverURL).Return(providerConfig, nil)
				keys.EXPECT().Resolve(gomock.Any(), providerConfig.JWKSURI, rawToken).Return(signingKey, nil)
				verifier.EXPECT().Verify(gomock.Any(), rawToken, signingKey, providerConfig.SigningAlgorithms, "zenith-jupyter", serverURL, 5*time.Second).Return(nil, verifyErr)
			},
			expectedError: verifyErr,
		},
		{
			name: "Empty short_name",
			setupMocks: func(discovery *MockDiscoveryInterface, keys *MockKeyResolverInterface, verifier *MockVerifierInterface) {
				discovery.EXPECT().Fetch(gomock.Any(), serverURL).Return(providerConfig, nil)
				keys.EXPECT().Resolve(gomock.Any(), providerConfig.JWKSURI, rawToken).Return(signingKey, nil)
				verifier.EXPECT().Verify(gomock.Any(), rawToken, signingKey, providerConfig.SigningAlgorithms, "zenith-jupyter", serverURL, 5*time.Second).Return(jwt.MapClaims{"short_name": "", "projects": map[string]any{}}, nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockDiscovery := NewMockDiscoveryInterface(ctrl)
			mockKeys := NewMockKeyResolverInterface(ctrl)
			mockVerifier := NewMockVerifierInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Authenticate").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(mockDiscovery, mockKeys, mockVerifier)

			s := NewService(
				NewConfig(serverURL, "zenith-jupyter", 5),
				mockDiscovery,
				mockKeys,
				mockVerifier,
				mockTracer,
				mockMonitor,
				mockLogger,
			)

			identity, err := s.Authenticate(context.Background(), rawToken)

			if test.expectedIdentity != nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(identity, test.expectedIdentity) {
					t.Errorf("expected identity %v, got %v", test.expectedIdentity, identity)
				}
				return
			}

			if err == nil {
				t.Fatal("expected an error")
			}
			if test.expectedError != nil && !errors.Is(err, test.expectedError) {
				t.Errorf("expected error %v, got %v", test.expectedError, err)
			}
		})
	}
}
