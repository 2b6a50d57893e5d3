// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/smartvillage/village-gateway/internal/cache"
	"github.com/smartvillage/village-gateway/internal/config"
	"github.com/smartvillage/village-gateway/internal/db"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring/prometheus"
	"github.com/smartvillage/village-gateway/internal/session"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/authentication"
	"github.com/smartvillage/village-gateway/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("village-gateway", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingRatio, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var (
		villageCache cache.CacheInterface
		sessionStore session.StoreInterface
	)

	if specs.RedisAddr != "" {
		redisClient := cache.NewRedisClient(specs.RedisAddr, specs.RedisPassword, specs.RedisDB)
		defer redisClient.Close()

		villageCache = cache.NewRedisCache(redisClient)
		sessionStore = session.NewRedisStore(redisClient)
		logger.Infof("Using redis at %s for the village cache and sessions", specs.RedisAddr)
	} else {
		villageCache = cache.NewMemoryCache()
		sessionStore = session.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, cache and sessions are local to this process")
	}

	router := web.NewRouter(
		web.Config{
			BaseDomain: specs.BaseDomain,
			CacheTTL:   specs.CacheTTL,
			Cookie: authentication.CookieConfig{
				Name:   specs.SessionCookieName,
				Secure: specs.SessionCookieSecure,
				TTL:    specs.SessionTTL,
			},
			MainLoginPath:      specs.MainLoginPath,
			VillageLoginPath:   specs.VillageLoginPath,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
		},
		s,
		dbClient,
		villageCache,
		sessionStore,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v for %s", specs.Port, specs.BaseDomain)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
