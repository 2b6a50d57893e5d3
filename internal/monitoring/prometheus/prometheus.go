// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime    *prometheus.HistogramVec
	dependencies    *prometheus.GaugeVec
	accessDecisions *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	h, err := m.responseTime.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	h.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	g, err := m.dependencies.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	g.Set(value)
	return nil
}

func (m *Monitor) SetAccessDecisionMetric(tags map[string]string, value float64) error {
	c, err := m.accessDecisions.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	c.Add(value)
	return nil
}

func (m *Monitor) SetCacheLookupMetric(tags map[string]string, value float64) error {
	c, err := m.cacheLookups.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	c.Add(value)
	return nil
}

func (m *Monitor) labels(tags map[string]string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		l[k] = v
	}

	return l
}

func (m *Monitor) register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

// NewMonitor creates and registers the service collectors on the default registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"service", "route", "status"},
	)
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"service", "component"},
	)
	m.accessDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "village_access_decisions_total",
			Help: "admin panel access decisions, by domain kind and outcome",
		},
		[]string{"service", "kind", "decision"},
	)
	m.cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "village_cache_lookups_total",
			Help: "tenant cache lookups, by key kind and result",
		},
		[]string{"service", "kind", "result"},
	)

	m.register(m.responseTime)
	m.register(m.dependencies)
	m.register(m.accessDecisions)
	m.register(m.cacheLookups)

	return m
}
