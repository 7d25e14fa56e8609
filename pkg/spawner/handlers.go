// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/isambard-sc/brics-auth-service/internal/http/types"
	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
)

// sessionCookie must match the cookie set by the login flow.
const sessionCookie = "brics-auth-session"

type API struct {
	sessions  session.StoreInterface
	scheduler SchedulerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/spawn", a.handleOptionsForm)
	mux.Post("/spawn", a.handleSpawn)
}

// handleOptionsForm serves the HTML options form generated from the
// session's authorization state.
func (a *API) handleOptionsForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "spawner.API.handleOptionsForm")
	defer span.End()

	userSession, ok := a.currentSession(ctx, w, r)
	if !ok {
		return
	}

	form, err := MakeOptionsForm(userSession.BricsProjects)
	if err != nil {
		a.logger.Errorf("failed to render options form: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(form)); err != nil {
		a.logger.Errorf("failed to write options form: %s", err)
	}
}

// handleSpawn validates and sanitizes the submitted form against the
// session's project keys, then hands the job request to the scheduler.
func (a *API) handleSpawn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "spawner.API.handleSpawn")
	defer span.End()

	userSession, ok := a.currentSession(ctx, w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		a.writeError(w, http.StatusBadRequest, "malformed form submission")
		return
	}

	validProjects := make(map[string]struct{}, len(userSession.BricsProjects))
	for id := range userSession.BricsProjects {
		validProjects[id] = struct{}{}
	}

	options, err := InterpretFormData(r.PostForm, validProjects)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			// Client-input problem surfaced as a server error, matching
			// the hub's historical behavior.
			a.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		a.logger.Errorf("form interpretation failed: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	request, err := NewJobRequest(options, userSession.BricsProjects)
	if err != nil {
		a.logger.Errorf("failed to build job request: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jobID, err := a.scheduler.Submit(ctx, request)
	if err != nil {
		a.logger.Errorf("scheduler submission failed: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := types.Response{
		Status: http.StatusOK,
		Data:   map[string]string{"job_id": jobID},
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Errorf("failed to encode spawn response: %s", err)
	}
}

func (a *API) currentSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		a.writeError(w, http.StatusUnauthorized, "missing session cookie")
		return nil, false
	}

	userSession, err := a.sessions.Get(ctx, cookie.Value)
	if errors.Is(err, session.ErrSessionNotFound) {
		a.writeError(w, http.StatusUnauthorized, "session expired")
		return nil, false
	}
	if err != nil {
		a.logger.Errorf("failed to load session: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return userSession, true
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(types.Response{Status: status, Message: message}); err != nil {
		a.logger.Errorf("failed to encode error response: %s", err)
	}
}

func NewAPI(
	sessions session.StoreInterface,
	scheduler SchedulerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.sessions = sessions
	a.scheduler = scheduler

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
