// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/version"
)

const (
	okValue          = "ok"
	degradedValue    = "degraded"
	unavailableValue = "unavailable"

	pingTimeout = 2 * time.Second
)

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"build_info"`
}

type Readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{Status: okValue, BuildInfo: buildInfo()}

	if err := httptypes.WriteJSON(w, http.StatusOK, status); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

// ready pings every dependency and records its availability
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	readiness := Readiness{Status: okValue, Dependencies: make(map[string]string, len(a.dependencies))}
	code := http.StatusOK

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		available := 1.0
		readiness.Dependencies[name] = okValue

		if err := a.dependencies[name].Ping(ctx); err != nil {
			a.logger.Errorf("dependency %s unavailable: %v", name, err)

			available = 0
			readiness.Dependencies[name] = unavailableValue
			readiness.Status = degradedValue
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("failed to record %s availability: %v", name, err)
		}
	}

	if err := httptypes.WriteJSON(w, code, readiness); err != nil {
		a.logger.Errorf("failed to encode readiness: %v", err)
	}
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{Version: version.Version}
	}

	b := &BuildInfo{Version: version.Version, Name: info.Main.Path}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			b.CommitHash = setting.Value
		}
	}

	return b
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
