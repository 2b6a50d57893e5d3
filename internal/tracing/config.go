// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/smartvillage/village-gateway/internal/logging"
)

const defaultServiceName = "village-gateway"

// Config selects the span exporter: OTLP gRPC wins over OTLP HTTP, stdout when neither is set
type Config struct {
	ServiceName      string
	OtelGRPCEndpoint string
	OtelHTTPEndpoint string
	// SampleRatio applies to root spans only, children follow their parent
	SampleRatio float64
	Logger      logging.LoggerInterface

	Enabled bool
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, sampleRatio float64, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ServiceName = defaultServiceName
	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.SampleRatio = sampleRatio
	c.Logger = logger
	c.Enabled = enabled

	if c.SampleRatio <= 0 || c.SampleRatio > 1 {
		c.SampleRatio = 1
	}

	return c
}

func NewNoopConfig() *Config {
	return &Config{ServiceName: defaultServiceName, Enabled: false}
}
