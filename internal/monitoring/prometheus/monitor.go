// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependency   *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		m.logger.Errorf("error fetching response time metric: %s", err)
		return err
	}

	metric.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	metric, err := m.dependency.GetMetricWith(tags)
	if err != nil {
		m.logger.Errorf("error fetching dependency availability metric: %s", err)
		return err
	}

	metric.Set(value)
	return nil
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "HTTP response times partitioned by route and status code.",
		},
		[]string{"route", "status"},
	)
	m.dependency = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "Availability of upstream dependencies, 1 up 0 down.",
		},
		[]string{"component"},
	)

	prometheus.DefaultRegisterer.MustRegister(m.responseTime, m.dependency)

	return m
}
