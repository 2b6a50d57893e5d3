// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
)

const (
	LogoutPath = "/admin/logout"

	maxBodyBytes = 1 << 16
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
}

type LoginPage struct {
	Flash string `json:"flash,omitempty"`
}

// API serves the login and logout endpoints of both panels
type API struct {
	loginPaths []string

	sessions  *SessionManager
	users     UserStoreInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	for _, path := range a.loginPaths {
		mux.Get(path, a.handleLoginPage)
		mux.Post(path, a.handleLogin)
	}

	mux.Post(LogoutPath, a.handleLogout)
}

// handleLoginPage hands out the message left by a denied request
func (a *API) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	a.write(w, http.StatusOK, LoginPage{Flash: a.sessions.PopFlash(w, r)})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogin")
	defer span.End()

	var req LoginRequest
	if err := httptypes.DecodeJSON(r.Body, maxBodyBytes, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid credentials format", err.Error())
		return
	}

	user, err := a.users.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		a.logger.Security().AuthnLoginFailure(req.Email)
		a.writeError(w, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	if err != nil {
		a.logger.Errorf("failed to load user by email: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Login unavailable", "")
		return
	}

	if !CheckPassword(user.PasswordHash, req.Password) || !user.IsActive {
		a.logger.Security().AuthnLoginFailure(user.ID)
		a.writeError(w, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	// never reuse a session id across logins
	if _, err := a.sessions.Rotate(w, r.WithContext(ctx), user.ID); err != nil {
		a.logger.Errorf("failed to start session for %s: %v", user.ID, err)
		a.writeError(w, http.StatusInternalServerError, "Login unavailable", "")
		return
	}

	a.logger.Security().AuthnLoginSuccess(user.ID)

	a.write(w, http.StatusOK, LoginResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogout")
	defer span.End()

	if err := a.sessions.Terminate(w, r.WithContext(ctx)); err != nil {
		a.logger.Errorf("failed to terminate session: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Logout failed", "")
		return
	}

	if p, ok := PrincipalFromContext(ctx); ok {
		a.logger.Security().SessionTerminated(p.UserID(), "logout")
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) write(w http.ResponseWriter, status int, data any) {
	if err := httptypes.WriteData(w, status, data, nil); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err, message string) {
	if e := httptypes.WriteError(w, status, err, message); e != nil {
		a.logger.Errorf("failed to encode error response: %v", e)
	}
}

func NewAPI(
	loginPaths []string,
	sessions *SessionManager,
	users UserStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.loginPaths = loginPaths
	a.sessions = sessions
	a.users = users
	a.validator = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
