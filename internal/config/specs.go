// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string  `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string  `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool    `envconfig:"tracing_enabled" default:"true"`
	TracingRatio     float64 `envconfig:"tracing_sample_ratio" default:"1"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// BaseDomain is the main admin host, villages live on its subdomains
	BaseDomain string `envconfig:"base_domain" required:"true"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// RedisAddr empty means in-process cache and sessions, single replica only
	RedisAddr     string `envconfig:"redis_addr" default:""`
	RedisPassword string `envconfig:"redis_password" default:""`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	CacheTTL time.Duration `envconfig:"cache_ttl" default:"1h"`

	SessionTTL          time.Duration `envconfig:"session_ttl" default:"12h"`
	SessionCookieName   string        `envconfig:"session_cookie_name" default:"village_session"`
	SessionCookieSecure bool          `envconfig:"session_cookie_secure" default:"true"`

	MainLoginPath    string `envconfig:"main_login_path" default:"/admin/login"`
	VillageLoginPath string `envconfig:"village_login_path" default:"/admin/village/login"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
