// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/smartvillage/village-gateway/internal/session"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

func TestMiddleware_Authenticate(t *testing.T) {
	user := &types.User{ID: "user-1", Role: types.RoleVillageAdmin, IsActive: true}
	principal := access.VillageAdmin{Identity: access.Identity{ID: "user-1", IsActive: true}, VillageID: "village-a"}
	dbErr := errors.New("db error")

	tests := []struct {
		name               string
		cookie             string
		setupMocks         func(*mocks)
		expectedStatusCode int
		expectPrincipal    bool
		expectCookieClear  bool
	}{
		{
			name:               "No session cookie - anonymous",
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "Unknown session - cookie cleared, anonymous",
			cookie: "stale",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "stale").Return("", session.ErrSessionNotFound)
			},
			expectedStatusCode: http.StatusOK,
			expectCookieClear:  true,
		},
		{
			name:   "Session store failure",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("", dbErr)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:   "Deleted user - cookie cleared, anonymous",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("user-1", nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				m.security.EXPECT().SessionTerminated("user-1", "user_deleted")
			},
			expectedStatusCode: http.StatusOK,
			expectCookieClear:  true,
		},
		{
			name:   "User store failure",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("user-1", nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, dbErr)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:   "Unknown role - forbidden",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("user-1", nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
				m.principals.EXPECT().Resolve(gomock.Any(), user).Return(nil, access.ErrUnknownRole)
				m.security.EXPECT().AuthzFailure("user-1", "role")
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:   "Ownership chain failure",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("user-1", nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
				m.principals.EXPECT().Resolve(gomock.Any(), user).Return(nil, dbErr)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:   "Valid session",
			cookie: "sess-1",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Lookup(gomock.Any(), "sess-1").Return("user-1", nil)
				m.users.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
				m.principals.EXPECT().Resolve(gomock.Any(), user).Return(principal, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectPrincipal:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.setupMocks(m)

			middleware := NewMiddleware(m.sessionManager(), m.users, m.principals, m.tracer, m.monitor, m.logger)

			var gotPrincipal access.Principal
			var gotSession string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = PrincipalFromContext(r.Context())
				gotSession, _ = SessionIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/api/villages", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectPrincipal {
				if gotPrincipal != principal {
					t.Errorf("expected principal %+v, got %+v", principal, gotPrincipal)
				}
				if gotSession != tt.cookie {
					t.Errorf("expected session %q, got %q", tt.cookie, gotSession)
				}
			} else if gotPrincipal != nil {
				t.Errorf("expected anonymous request, got %+v", gotPrincipal)
			}

			c := findCookie(t, rr.Result().Cookies(), testCookie)
			if tt.expectCookieClear && (c == nil || c.MaxAge >= 0) {
				t.Errorf("expected session cookie to be cleared, got %+v", c)
			}
		})
	}
}

func TestMiddleware_RequirePrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	middleware := NewMiddleware(m.sessionManager(), m.users, m.principals, m.tracer, m.monitor, m.logger)

	handler := middleware.RequirePrincipal()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/api/villages", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/villages", nil)
	req = req.WithContext(WithPrincipal(req.Context(), access.SuperAdmin{Identity: access.Identity{ID: "root", IsActive: true}}))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected request to reach the handler, got %d", rr.Code)
	}
}
