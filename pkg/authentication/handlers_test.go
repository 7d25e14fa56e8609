// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	trace "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/types"
	"github.com/isambard-sc/brics-auth-service/pkg/authorization"
	"github.com/isambard-sc/brics-auth-service/pkg/oidc"
)

func TestHandleLogin(t *testing.T) {
	identity := &Identity{
		Username: "user1",
		Projects: types.ProjectsClaim{
			"proj1": {
				Name: "Project One",
				Resources: []types.Resource{
					{Name: "cluster-a", Username: "user1.proj1"},
				},
			},
		},
	}
	state := types.AuthorizationState{
		"proj1": {Name: "Project One", Username: "user1.proj1"},
	}

	tests := []struct {
		name   string
		target string
		token  string

		setupMocks func(*MockServiceInterface, *MockAuthzServiceInterface, *MockStoreInterface, *MockLoggerInterface)

		expectedStatusCode int
		expectedMessage    string
		expectedLocation   string
	}{
		{
			name:   "Missing token header",
			target: "/login",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Missing X-Auth-Id-Token header",
		},
		{
			name:   "Expired token",
			target: "/login",
			token:  "expired.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "expired.token").Return(nil, newError(ReasonExpired, nil))
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Invalid token: signature has expired",
		},
		{
			name:   "Unknown signing key",
			target: "/login",
			token:  "unknown.kid",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "unknown.kid").Return(nil, fmt.Errorf("%w: kid %q", oidc.ErrKeyNotFound, "k1"))
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedMessage:    "Invalid token: unknown signing key",
		},
		{
			name:   "No usable projects",
			target: "/login",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(nil, authorization.ErrNoValidPlatform)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedMessage:    "no projects with valid platform",
		},
		{
			name:   "Provider unavailable",
			target: "/login",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(nil, fmt.Errorf("%w: connection refused", oidc.ErrServiceUnavailable))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "internal server error",
		},
		{
			name:   "Session persistence failure",
			target: "/login",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(fmt.Errorf("redis down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "internal server error",
		},
		{
			name:   "Successful login",
			target: "/login",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, s *session.Session) error {
						if s.Username != "user1" {
							t.Errorf("expected session for user1, got %q", s.Username)
						}
						if _, ok := s.BricsProjects["proj1"]; !ok {
							t.Errorf("expected proj1 grant in session, got %v", s.BricsProjects)
						}
						return nil
					},
				)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/hub/",
		},
		{
			name:   "Relative next target honored",
			target: "/login?next=/hub/user/user1",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/hub/user/user1",
		},
		{
			name:   "Absolute next target ignored",
			target: "/login?next=https://evil.example.org/",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/hub/",
		},
		{
			name:   "Protocol-relative next target ignored",
			target: "/login?next=//evil.example.org/phish",
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/hub/",
		},
		{
			name:   "Backslash protocol-relative next target ignored",
			target: `/login?next=/\evil.example.org/phish`,
			token:  "valid.token",
			setupMocks: func(service *MockServiceInterface, authz *MockAuthzServiceInterface, store *MockStoreInterface, logger *MockLoggerInterface) {
				service.EXPECT().Authenticate(gomock.Any(), "valid.token").Return(identity, nil)
				authz.EXPECT().DeriveState(gomock.Any(), identity.Projects).Return(state, nil)
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatusCode: http.StatusFound,
			expectedLocation:   "/hub/",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthzServiceInterface(ctrl)
			mockStore := NewMockStoreInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.API.handleLogin").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(mockService, mockAuthz, mockStore, mockLogger)

			api := NewAPI(mockService, mockAuthz, mockStore, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodGet, test.target, nil)
			if test.token != "" {
				req.Header.Set(TokenHeader, test.token)
			}
			w := httptest.NewRecorder()

			api.handleLogin(w, req)

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", test.expectedStatusCode, w.Code)
			}

			if test.expectedLocation != "" {
				if location := w.Header().Get("Location"); location != test.expectedLocation {
					t.Errorf("expected redirect to %q, got %q", test.expectedLocation, location)
				}
				cookies := w.Result().Cookies()
				found := false
				for _, cookie := range cookies {
					if cookie.Name == SessionCookie && cookie.Value != "" {
						found = true
						if !cookie.Secure || !cookie.HttpOnly {
							t.Error("expected the session cookie to be Secure and HttpOnly")
						}
					}
				}
				if !found {
					t.Error("expected a session cookie to be set")
				}
				return
			}

			var response struct {
				Status  int    `json:"status"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Message != test.expectedMessage {
				t.Errorf("expected message %q, got %q", test.expectedMessage, response.Message)
			}
		})
	}
}
