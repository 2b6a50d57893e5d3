// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/smartvillage/village-gateway/internal/cache"
	"github.com/smartvillage/village-gateway/internal/db"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/access"
	"github.com/smartvillage/village-gateway/pkg/domain"
	"github.com/smartvillage/village-gateway/pkg/village"
)

// operator is the principal of CLI writes, the CLI is only reachable by whoever holds the DSN
var operator = access.SuperAdmin{Identity: access.Identity{ID: "cli", IsActive: true}}

type closer func()

// openStorage connects to the database with telemetry disabled
func openStorage() (*storage.Storage, closer, error) {
	if dsn == "" {
		return nil, nil, errors.New("no database configured, set --dsn or DSN")
	}

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("village-gateway-cli")
	logger := logging.NewNoopLogger()

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             dsn,
			MaxConns:        2,
			MinConns:        1,
			MaxConnLifetime: time.Minute,
			MaxConnIdleTime: time.Minute,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return storage.NewStorage(dbClient, tracer, monitor, logger), dbClient.Close, nil
}

// openVillageService wires the same service the admin API uses, so CLI writes
// also drop the resolver entries from the shared cache when Redis is configured
func openVillageService() (*village.Service, closer, error) {
	s, closeDB, err := openStorage()
	if err != nil {
		return nil, nil, err
	}

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("village-gateway-cli")
	logger := logging.NewNoopLogger()

	var (
		c       domain.CacheInterface = cache.NewMemoryCache()
		closeFn                       = closeDB
	)

	if redisAddr != "" {
		client := cache.NewRedisClient(redisAddr, redisPassword, redisDB)
		c = cache.NewRedisCache(client)
		closeFn = func() {
			_ = client.Close()
			closeDB()
		}
	}

	resolver := domain.NewResolver("", s, c, 0, tracer, monitor, logger)

	return village.NewService(s, resolver, tracer, monitor, logger), closeFn, nil
}
