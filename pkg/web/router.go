// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
	"github.com/isambard-sc/brics-auth-service/internal/session"
	"github.com/isambard-sc/brics-auth-service/internal/tracing"
	"github.com/isambard-sc/brics-auth-service/pkg/authentication"
	"github.com/isambard-sc/brics-auth-service/pkg/authorization"
	"github.com/isambard-sc/brics-auth-service/pkg/metrics"
	"github.com/isambard-sc/brics-auth-service/pkg/spawner"
	"github.com/isambard-sc/brics-auth-service/pkg/status"
)

func NewRouter(
	authService authentication.ServiceInterface,
	authz authorization.ServiceInterface,
	sessions session.StoreInterface,
	scheduler spawner.SchedulerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		// LogFormatter will only emit when the logger is set to DEBUG level
		middleware.RequestLogger(logging.NewLogFormatter(logger)),
	)

	authentication.NewAPI(authService, authz, sessions, tracer, monitor, logger).RegisterEndpoints(router)
	spawner.NewAPI(sessions, scheduler, tracer, monitor, logger).RegisterEndpoints(router)
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Auth-Id-Token"},
			MaxAge:         300,
		},
	)
}
