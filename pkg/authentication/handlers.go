// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/isambard-sc/brics-auth-service/internal/http/types"
	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/pkg/authorization"
	"github.com/isambard-sc/brics-auth-service/pkg/oidc"
)

const (
	// TokenHeader carries the bearer identity token, injected by the
	// fronting proxy. Absence is a 401.
	TokenHeader = "X-Auth-Id-Token"

	// SessionCookie names the login session cookie consumed by the
	// spawner endpoints.
	SessionCookie = "brics-auth-session"

	defaultNextURL = "/hub/"
)

type API struct {
	service  ServiceInterface
	authz    authorization.ServiceInterface
	sessions session.StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/login", a.handleLogin)
}

// handleLogin runs the full login sequence: header extraction, token
// pipeline, authorization-state derivation, session persistence,
// redirect. The pipeline either completes or fails before any state is
// written, no partial session is ever exposed.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogin")
	defer span.End()

	rawToken := r.Header.Get(TokenHeader)
	if rawToken == "" {
		a.writeError(w, http.StatusUnauthorized, fmt.Sprintf("Missing %s header", TokenHeader))
		return
	}

	identity, err := a.service.Authenticate(ctx, rawToken)
	if err != nil {
		a.writeAuthError(w, err)
		return
	}

	state, err := a.authz.DeriveState(ctx, identity.Projects)
	if err != nil {
		a.writeAuthError(w, err)
		return
	}

	userSession := session.NewSession(identity.Username, state)
	if err := a.sessions.Save(ctx, userSession); err != nil {
		a.logger.Errorf("failed to persist session for %s: %s", identity.Username, err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    userSession.ID,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, nextURL(r), http.StatusFound)
}

func (a *API) writeAuthError(w http.ResponseWriter, err error) {
	var authErr *Error
	switch {
	case errors.As(err, &authErr):
		a.writeError(w, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %s", authErr.Reason))
	case errors.Is(err, oidc.ErrKeyNotFound):
		a.writeError(w, http.StatusUnauthorized, "Invalid token: unknown signing key")
	case errors.Is(err, authorization.ErrNoValidPlatform):
		a.writeError(w, http.StatusForbidden, authorization.ErrNoValidPlatform.Error())
	default:
		// Covers oidc.ErrServiceUnavailable and anything unexpected, no
		// provider detail is leaked to the client.
		a.logger.Errorf("login failed: %s", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(types.Response{Status: status, Message: message}); err != nil {
		a.logger.Errorf("failed to encode error response: %s", err)
	}
}

func nextURL(r *http.Request) string {
	next := r.URL.Query().Get("next")
	// Only relative redirect targets, anything absolute could bounce the
	// user off-site. "//host" and "/\host" are protocol-relative and
	// treated as absolute by browsers.
	if next == "" || next[0] != '/' {
		return defaultNextURL
	}
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return defaultNextURL
	}
	return next
}

func NewAPI(
	service ServiceInterface,
	authz authorization.ServiceInterface,
	sessions session.StoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.authz = authz
	a.sessions = sessions

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
