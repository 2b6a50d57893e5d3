// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/smartvillage/village-gateway/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("village-gateway-test", logging.NewNoopLogger())

	if m.GetService() != "village-gateway-test" {
		t.Fatalf("unexpected service name %q", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET /api/village", "status": "200"}, 0.2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetAccessDecisionMetric(map[string]string{"kind": "subdomain", "decision": "deny"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetCacheLookupMetric(map[string]string{"kind": "domain", "result": "hit"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMonitorRejectsUnknownLabels(t *testing.T) {
	m := NewMonitor("village-gateway-labels", logging.NewNoopLogger())

	if err := m.SetAccessDecisionMetric(map[string]string{"unknown": "label"}, 1); err == nil {
		t.Error("expected an error for mismatched labels")
	}
}
