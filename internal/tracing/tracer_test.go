// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
)

func TestNoopTracerStartsSpans(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStartsSpans")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("noop tracer should not produce valid span contexts")
	}
}

func TestOpenTelemetryMiddlewarePassesThrough(t *testing.T) {
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/village", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}

func TestNewConfigSampleRatio(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected float64
	}{
		{ratio: 0.25, expected: 0.25},
		{ratio: 1, expected: 1},
		{ratio: 0, expected: 1},
		{ratio: -1, expected: 1},
		{ratio: 3, expected: 1},
	}

	for _, test := range tests {
		c := NewConfig(true, "", "", test.ratio, logging.NewNoopLogger())

		if c.SampleRatio != test.expected {
			t.Errorf("ratio %v: expected %v, got %v", test.ratio, test.expected, c.SampleRatio)
		}

		if c.ServiceName != "village-gateway" {
			t.Errorf("unexpected service name %q", c.ServiceName)
		}
	}
}
