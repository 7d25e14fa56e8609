// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
)

type Middleware struct {
	monitor MonitorInterface

	logger logging.LoggerInterface
}

// ResponseTime records per-route response times, using the chi route
// pattern so path parameters do not explode metric cardinality.
func (m *Middleware) ResponseTime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}

			tags := map[string]string{
				"route":  route,
				"status": fmt.Sprintf("%d", ww.Status()),
			}
			if err := m.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); err != nil {
				m.logger.Errorf("failed to record response time: %s", err)
			}
		})
	}
}

func NewMiddleware(monitor MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		monitor: monitor,
		logger:  logger,
	}
}
