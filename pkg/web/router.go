// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/smartvillage/village-gateway/internal/cache"
	"github.com/smartvillage/village-gateway/internal/db"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/session"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/access"
	"github.com/smartvillage/village-gateway/pkg/authentication"
	"github.com/smartvillage/village-gateway/pkg/catalog"
	"github.com/smartvillage/village-gateway/pkg/content"
	"github.com/smartvillage/village-gateway/pkg/domain"
	"github.com/smartvillage/village-gateway/pkg/gate"
	"github.com/smartvillage/village-gateway/pkg/metrics"
	"github.com/smartvillage/village-gateway/pkg/status"
	"github.com/smartvillage/village-gateway/pkg/village"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_db.go -source=../../internal/db/interfaces.go

const (
	contentPrefix  = "/api/village"
	adminAPIPrefix = "/admin/api"
)

type Config struct {
	BaseDomain string
	CacheTTL   time.Duration

	Cookie authentication.CookieConfig

	MainLoginPath    string
	VillageLoginPath string

	CORSAllowedOrigins []string
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	c cache.CacheInterface,
	sessionStore session.StoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	resolver := domain.NewResolver(cfg.BaseDomain, s, c, cfg.CacheTTL, tracer, monitor, logger)
	sessions := authentication.NewSessionManager(sessionStore, cfg.Cookie, tracer, monitor, logger)
	principals := access.NewOwnershipResolver(s, tracer, monitor, logger)

	authMiddleware := authentication.NewMiddleware(sessions, s, principals, tracer, monitor, logger)
	gateMiddleware := gate.NewMiddleware(resolver, sessions, cfg.MainLoginPath, cfg.VillageLoginPath, tracer, monitor, logger)

	loginPaths := []string{cfg.MainLoginPath}
	if cfg.VillageLoginPath != cfg.MainLoginPath {
		loginPaths = append(loginPaths, cfg.VillageLoginPath)
	}

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(
		map[string]status.PingerInterface{"database": dbClient, "cache": c},
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(
			authMiddleware.Authenticate(),
			gateMiddleware.AttachVillage(),
		)

		// public content, no session needed
		r.Route(contentPrefix, func(r chi.Router) {
			r.Use(gateMiddleware.VillageAccess())
			content.NewAPI(s, tracer, monitor, logger).RegisterEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(gateMiddleware.PanelAccess())

			authentication.NewAPI(loginPaths, sessions, s, tracer, monitor, logger).RegisterEndpoints(r)

			r.Route(adminAPIPrefix, func(r chi.Router) {
				r.Use(authMiddleware.RequirePrincipal())

				village.NewAPI(
					village.NewService(s, resolver, tracer, monitor, logger),
					tracer,
					monitor,
					logger,
				).RegisterEndpoints(r)

				catalog.NewAPI(
					catalog.NewService(s, tracer, monitor, logger),
					tracer,
					monitor,
					logger,
				).RegisterEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
