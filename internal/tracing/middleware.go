// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
)

type Middleware struct {
	monitor monitoring.MonitorInterface

	logger logging.LoggerInterface
}

func (m *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(handler, "router")
}

func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		monitor: monitor,
		logger:  logger,
	}
}
