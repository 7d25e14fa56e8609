// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	trace "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package spawner -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package spawner -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package spawner -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package spawner -destination ./mock_spawner.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package spawner -destination ./mock_session.go github.com/isambard-sc/brics-auth-service/internal/session StoreInterface

func testSession() *session.Session {
	return &session.Session{
		ID:       "session-1",
		Username: "user1",
		BricsProjects: types.AuthorizationState{
			"proj1.portal": {Name: "Project One", Username: "user1.proj1"},
		},
	}
}

func spawnForm() url.Values {
	return url.Values{
		"brics_project": {"proj1.portal"},
		"runtime":       {"01:00:00"},
		"ngpus":         {"2"},
	}
}

func TestHandleOptionsForm(t *testing.T) {
	tests := []struct {
		name       string
		withCookie bool

		setupStore func(*MockStoreInterface)

		expectedStatusCode int
		expectedFragment   string
	}{
		{
			name:       "Renders form from session state",
			withCookie: true,
			setupStore: func(store *MockStoreInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(testSession(), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedFragment:   `<option value="proj1.portal">`,
		},
		{
			name:               "Missing cookie",
			withCookie:         false,
			setupStore:         func(store *MockStoreInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Expired session",
			withCookie: true,
			setupStore: func(store *MockStoreInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(nil, session.ErrSessionNotFound)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockStore := NewMockStoreInterface(ctrl)
			mockScheduler := NewMockSchedulerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "spawner.API.handleOptionsForm").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupStore(mockStore)

			api := NewAPI(mockStore, mockScheduler, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodGet, "/spawn", nil)
			if test.withCookie {
				req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "session-1"})
			}
			w := httptest.NewRecorder()

			api.handleOptionsForm(w, req)

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", test.expectedStatusCode, w.Code)
			}
			if test.expectedFragment != "" && !strings.Contains(w.Body.String(), test.expectedFragment) {
				t.Errorf("expected body to contain %q, got %q", test.expectedFragment, w.Body.String())
			}
		})
	}
}

func TestHandleSpawn(t *testing.T) {
	tests := []struct {
		name string
		form url.Values

		setupMocks func(*MockStoreInterface, *MockSchedulerInterface, *MockLoggerInterface)

		expectedStatusCode int
		expectedMessage    string
		expectedJobID      string
	}{
		{
			name: "Successful submission",
			form: spawnForm(),
			setupMocks: func(store *MockStoreInterface, scheduler *MockSchedulerInterface, logger *MockLoggerInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(testSession(), nil)
				scheduler.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, request *JobRequest) (string, error) {
						if request.Username != "user1.proj1" {
							t.Errorf("expected job request for user1.proj1, got %q", request.Username)
						}
						return "job-42", nil
					},
				)
			},
			expectedStatusCode: http.StatusOK,
			expectedJobID:      "job-42",
		},
		{
			name: "Unknown project",
			form: url.Values{
				"brics_project": {"proj9"},
				"runtime":       {"01:00:00"},
				"ngpus":         {"2"},
			},
			setupMocks: func(store *MockStoreInterface, scheduler *MockSchedulerInterface, logger *MockLoggerInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(testSession(), nil)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Invalid spawner options input: unknown brics_project",
		},
		{
			name: "Unknown form key",
			form: func() url.Values {
				form := spawnForm()
				form.Set("cluster", "prod")
				return form
			}(),
			setupMocks: func(store *MockStoreInterface, scheduler *MockSchedulerInterface, logger *MockLoggerInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(testSession(), nil)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Invalid spawner options input: unknown form data keys",
		},
		{
			name: "Scheduler failure",
			form: spawnForm(),
			setupMocks: func(store *MockStoreInterface, scheduler *MockSchedulerInterface, logger *MockLoggerInterface) {
				store.EXPECT().Get(gomock.Any(), "session-1").Return(testSession(), nil)
				scheduler.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("", errors.New("slurm down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "internal server error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockStore := NewMockStoreInterface(ctrl)
			mockScheduler := NewMockSchedulerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "spawner.API.handleSpawn").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(mockStore, mockScheduler, mockLogger)

			api := NewAPI(mockStore, mockScheduler, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodPost, "/spawn", strings.NewReader(test.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "session-1"})
			w := httptest.NewRecorder()

			api.handleSpawn(w, req)

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", test.expectedStatusCode, w.Code)
			}

			var response struct {
				Status  int               `json:"status"`
				Message string            `json:"message"`
				Data    map[string]string `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if test.expectedMessage != "" && response.Message != test.expectedMessage {
				t.Errorf("expected message %q, got %q", test.expectedMessage, response.Message)
			}
			if test.expectedJobID != "" && response.Data["job_id"] != test.expectedJobID {
				t.Errorf("expected job id %q, got %q", test.expectedJobID, response.Data["job_id"])
			}
		})
	}
}
