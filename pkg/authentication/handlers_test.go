// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

const mainLogin = "/admin/login"

func newTestRouter(m *mocks) *chi.Mux {
	router := chi.NewMux()
	NewAPI([]string{mainLogin, "/admin/village/login"}, m.sessionManager(), m.users, m.tracer, m.monitor, m.logger).RegisterEndpoints(router)
	return router
}

func TestAPI_Login(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	activeUser := &types.User{ID: "user-1", Name: "Siti", Email: "siti@desa.id", PasswordHash: hash, Role: types.RoleVillageAdmin, IsActive: true}
	disabledUser := &types.User{ID: "user-2", Email: "budi@desa.id", PasswordHash: hash, Role: types.RoleVillageAdmin, IsActive: false}

	tests := []struct {
		name               string
		body               string
		setupMocks         func(*mocks)
		expectedStatusCode int
		expectSession      bool
	}{
		{
			name: "valid credentials",
			body: `{"email":" Siti@Desa.id ","password":"correct-horse"}`,
			setupMocks: func(m *mocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "siti@desa.id").Return(activeUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), "user-1", time.Hour).Return("sess-new", nil)
				m.security.EXPECT().AuthnLoginSuccess("user-1")
			},
			expectedStatusCode: http.StatusOK,
			expectSession:      true,
		},
		{
			name: "wrong password",
			body: `{"email":"siti@desa.id","password":"nope"}`,
			setupMocks: func(m *mocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "siti@desa.id").Return(activeUser, nil)
				m.security.EXPECT().AuthnLoginFailure("user-1")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@desa.id","password":"whatever"}`,
			setupMocks: func(m *mocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "ghost@desa.id").Return(nil, storage.ErrNotFound)
				m.security.EXPECT().AuthnLoginFailure("ghost@desa.id")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "disabled account",
			body: `{"email":"budi@desa.id","password":"correct-horse"}`,
			setupMocks: func(m *mocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "budi@desa.id").Return(disabledUser, nil)
				m.security.EXPECT().AuthnLoginFailure("user-2")
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "user store failure",
			body: `{"email":"siti@desa.id","password":"correct-horse"}`,
			setupMocks: func(m *mocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "siti@desa.id").Return(nil, errors.New("db error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "malformed body",
			body:               `{"email":`,
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid email",
			body:               `{"email":"not-an-email","password":"x"}`,
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing password",
			body:               `{"email":"siti@desa.id"}`,
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, mainLogin, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestRouter(m).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatusCode, rr.Code, rr.Body.String())
			}

			c := findCookie(t, rr.Result().Cookies(), testCookie)
			if tt.expectSession {
				if c == nil || c.Value != "sess-new" {
					t.Fatalf("expected new session cookie, got %+v", c)
				}

				var resp struct {
					Data LoginResponse `json:"data"`
				}
				if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}

				if resp.Data.ID != "user-1" || resp.Data.Role != types.RoleVillageAdmin {
					t.Errorf("unexpected response %+v", resp.Data)
				}

				if strings.Contains(rr.Body.String(), hash) {
					t.Error("password hash leaked in response")
				}
			} else if c != nil && c.Value != "" {
				t.Errorf("expected no session, got %+v", c)
			}
		})
	}
}

func TestAPI_LoginRotatesSession(t *testing.T) {
	hash, _ := HashPassword("correct-horse")
	user := &types.User{ID: "user-1", Email: "siti@desa.id", PasswordHash: hash, Role: types.RoleSuperAdmin, IsActive: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	gomock.InOrder(
		m.users.EXPECT().GetUserByEmail(gomock.Any(), "siti@desa.id").Return(user, nil),
		m.sessions.EXPECT().Destroy(gomock.Any(), "sess-old").Return(nil),
		m.sessions.EXPECT().Create(gomock.Any(), "user-1", time.Hour).Return("sess-new", nil),
	)
	m.security.EXPECT().AuthnLoginSuccess("user-1")

	req := httptest.NewRequest(http.MethodPost, mainLogin, strings.NewReader(`{"email":"siti@desa.id","password":"correct-horse"}`))
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "sess-old"})
	rr := httptest.NewRecorder()

	newTestRouter(m).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPI_LoginPageFlash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	router := newTestRouter(m)

	rr := httptest.NewRecorder()
	m.sessionManager().SetFlash(rr, "You do not have permission to access the main admin panel.")
	flash := findCookie(t, rr.Result().Cookies(), testCookie+flashSuffix)

	req := httptest.NewRequest(http.MethodGet, mainLogin, nil)
	req.AddCookie(flash)
	rr = httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	want := `{"data":{"flash":"You do not have permission to access the main admin panel."},"status":200}`
	if got := strings.TrimSpace(rr.Body.String()); got != want {
		t.Errorf("expected body %s, got %s", want, got)
	}
}

func TestAPI_Logout(t *testing.T) {
	principal := access.SuperAdmin{Identity: access.Identity{ID: "user-1", IsActive: true}}

	tests := []struct {
		name               string
		setupMocks         func(*mocks)
		expectedStatusCode int
	}{
		{
			name: "session destroyed",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Destroy(gomock.Any(), "sess-1").Return(nil)
				m.security.EXPECT().SessionTerminated("user-1", "logout")
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name: "store failure",
			setupMocks: func(m *mocks) {
				m.sessions.EXPECT().Destroy(gomock.Any(), "sess-1").Return(errors.New("redis down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, LogoutPath, nil)
			ctx := WithSessionID(req.Context(), "sess-1")
			ctx = WithPrincipal(ctx, principal)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			newTestRouter(m).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
		})
	}
}
