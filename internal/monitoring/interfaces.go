// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// SetAccessDecisionMetric counts gate decisions, tagged by domain kind and outcome
	SetAccessDecisionMetric(map[string]string, float64) error
	// SetCacheLookupMetric counts tenant cache lookups, tagged by key kind and result
	SetCacheLookupMetric(map[string]string, float64) error
}
