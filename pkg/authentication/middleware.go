// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/session"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/access"
)

type Middleware struct {
	sessions   *SessionManager
	users      UserStoreInterface
	principals PrincipalResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate attaches the session principal to the request context.
// Requests without a valid session continue anonymously.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			sessionID, found := m.sessions.Current(r)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := m.sessions.Lookup(ctx, sessionID)
			if errors.Is(err, session.ErrSessionNotFound) {
				m.logger.Debugf("dropping stale session cookie")
				m.sessions.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			if err != nil {
				m.logger.Errorf("failed to look up session: %v", err)
				m.errorResponse(w, http.StatusInternalServerError, "Session store unavailable")
				return
			}

			user, err := m.users.GetUserByID(ctx, userID)
			if errors.Is(err, storage.ErrNotFound) {
				m.logger.Security().SessionTerminated(userID, "user_deleted")
				m.sessions.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			if err != nil {
				m.logger.Errorf("failed to load user %s: %v", userID, err)
				m.errorResponse(w, http.StatusInternalServerError, "Failed to load user")
				return
			}

			principal, err := m.principals.Resolve(ctx, user)
			if errors.Is(err, access.ErrUnknownRole) {
				m.logger.Security().AuthzFailure(userID, "role")
				m.errorResponse(w, http.StatusForbidden, "Unknown role")
				return
			}

			if err != nil {
				m.logger.Errorf("failed to resolve principal for %s: %v", userID, err)
				m.errorResponse(w, http.StatusInternalServerError, "Failed to resolve permissions")
				return
			}

			ctx = WithSessionID(ctx, sessionID)
			ctx = WithPrincipal(ctx, principal)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePrincipal rejects anonymous requests
func (m *Middleware) RequirePrincipal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				m.errorResponse(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message, ""); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(
	sessions *SessionManager,
	users UserStoreInterface,
	principals PrincipalResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		sessions:   sessions,
		users:      users,
		principals: principals,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
