// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/metrics", promhttp.Handler().ServeHTTP)
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}
