// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"
	"net/http"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/access"
	"github.com/smartvillage/village-gateway/pkg/authentication"
	"github.com/smartvillage/village-gateway/pkg/domain"
)

const (
	MainPanelDenied    = "You do not have permission to access the main admin panel."
	VillagePanelDenied = "You do not have permission to access this village admin panel."

	VillageNotAccessible      = "Village is not accessible"
	VillageUnderMaintenance   = "Village is under maintenance"
	DefaultMaintenanceMessage = "This village is temporarily unavailable."
)

type Middleware struct {
	resolver ResolverInterface
	sessions SessionTerminatorInterface

	mainLoginPath    string
	villageLoginPath string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// AttachVillage resolves the request host and shares the outcome with every
// downstream handler, authenticated or not
func (m *Middleware) AttachVillage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "gate.Middleware.AttachVillage")
			defer span.End()

			res := m.resolver.Resolve(ctx, r.Host)

			next.ServeHTTP(w, r.WithContext(domain.WithResult(ctx, res)))
		})
	}
}

// PanelAccess gates admin panel routes. Anonymous requests pass through,
// a principal that may not administer the resolved domain is logged out and
// redirected to the login page of that panel.
func (m *Middleware) PanelAccess() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "gate.Middleware.PanelAccess")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			res := m.resolution(ctx, r)
			ctx = domain.WithResult(ctx, res)
			r = r.WithContext(ctx)

			if !principal.Active() {
				m.deny(w, r, principal, res, "inactive_principal")
				return
			}

			if !access.CanAccess(principal, res) {
				m.deny(w, r, principal, res, "access_denied")
				return
			}

			m.recordDecision(res, "allow")
			next.ServeHTTP(w, r)
		})
	}
}

// VillageAccess guards public content routes of a village
func (m *Middleware) VillageAccess() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "gate.Middleware.VillageAccess")
			defer span.End()

			res := m.resolution(ctx, r)
			village := res.Village

			if village == nil || !village.IsActive {
				m.writeError(w, http.StatusForbidden, VillageNotAccessible, "")
				return
			}

			if village.Settings.MaintenanceMode() {
				msg := village.Settings.MaintenanceMessage()
				if msg == "" {
					msg = DefaultMaintenanceMessage
				}

				m.writeError(w, http.StatusServiceUnavailable, VillageUnderMaintenance, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithResult(ctx, res)))
		})
	}
}

// deny logs the principal out before redirecting, the session must be gone
// before the response leaves so a concurrent request cannot reuse it
func (m *Middleware) deny(w http.ResponseWriter, r *http.Request, p access.Principal, res domain.Result, reason string) {
	m.logger.Security().AuthzFailure(p.UserID(), resource(res))
	m.recordDecision(res, "deny")

	if err := m.sessions.Terminate(w, r); err != nil {
		m.logger.Errorf("failed to terminate session of %s: %v", p.UserID(), err)
		m.writeError(w, http.StatusInternalServerError, "Failed to terminate session", "")
		return
	}

	m.logger.Security().SessionTerminated(p.UserID(), reason)

	message, target := VillagePanelDenied, m.villageLoginPath
	if res.IsMain() {
		message, target = MainPanelDenied, m.mainLoginPath
	}

	m.sessions.SetFlash(w, message)
	http.Redirect(w, r, target, http.StatusFound)
}

func (m *Middleware) resolution(ctx context.Context, r *http.Request) domain.Result {
	if res, ok := domain.ResultFromContext(ctx); ok {
		return res
	}

	return m.resolver.Resolve(ctx, r.Host)
}

func (m *Middleware) recordDecision(res domain.Result, decision string) {
	tags := map[string]string{"kind": res.Kind.String(), "decision": decision}
	if err := m.monitor.SetAccessDecisionMetric(tags, 1); err != nil {
		m.logger.Debugf("failed to record access decision: %v", err)
	}
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, err, message string) {
	if e := httptypes.WriteError(w, status, err, message); e != nil {
		m.logger.Errorf("failed to encode error response: %v", e)
	}
}

func resource(res domain.Result) string {
	if res.IsMain() {
		return "main_panel"
	}

	if res.Village == nil {
		return "village_panel:unresolved"
	}

	return "village_panel:" + res.Village.ID
}

func NewMiddleware(
	resolver ResolverInterface,
	sessions SessionTerminatorInterface,
	mainLoginPath, villageLoginPath string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	m := new(Middleware)

	m.resolver = resolver
	m.sessions = sessions
	m.mainLoginPath = mainLoginPath
	m.villageLoginPath = villageLoginPath

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
