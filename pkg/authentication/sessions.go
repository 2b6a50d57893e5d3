// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/session"
	"github.com/smartvillage/village-gateway/internal/tracing"
)

const (
	DefaultCookieName = "village_session"
	DefaultSessionTTL = 12 * time.Hour

	flashSuffix = "_flash"
	flashMaxAge = 60
)

type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// SessionManager binds server-side sessions to an HTTP-only cookie and
// carries one-shot flash messages across redirects
type SessionManager struct {
	store  SessionStoreInterface
	cookie CookieConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start creates a session for userID and sets the session cookie
func (s *SessionManager) Start(ctx context.Context, w http.ResponseWriter, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.SessionManager.Start")
	defer span.End()

	id, err := s.store.Create(ctx, userID, s.cookie.TTL)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	http.SetCookie(w, s.newCookie(s.cookie.Name, id, int(s.cookie.TTL.Seconds())))

	return id, nil
}

// Current returns the session identifier carried by the request cookie
func (s *SessionManager) Current(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.cookie.Name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Lookup returns the user bound to a session, session.ErrSessionNotFound when expired or unknown
func (s *SessionManager) Lookup(ctx context.Context, sessionID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.SessionManager.Lookup")
	defer span.End()

	return s.store.Lookup(ctx, sessionID)
}

// Terminate destroys the request's session and expires its cookie.
// The session is gone from the store once Terminate returns without error.
func (s *SessionManager) Terminate(w http.ResponseWriter, r *http.Request) error {
	ctx, span := s.tracer.Start(r.Context(), "authentication.SessionManager.Terminate")
	defer span.End()

	if err := s.destroy(ctx, r); err != nil {
		return err
	}

	s.Clear(w)

	return nil
}

// Rotate replaces the request's session, if any, with a fresh one for userID
func (s *SessionManager) Rotate(w http.ResponseWriter, r *http.Request, userID string) (string, error) {
	ctx, span := s.tracer.Start(r.Context(), "authentication.SessionManager.Rotate")
	defer span.End()

	if err := s.destroy(ctx, r); err != nil {
		return "", err
	}

	return s.Start(ctx, w, userID)
}

func (s *SessionManager) destroy(ctx context.Context, r *http.Request) error {
	id, ok := SessionIDFromContext(ctx)
	if !ok {
		id, ok = s.Current(r)
	}

	if !ok {
		return nil
	}

	if err := s.store.Destroy(ctx, id); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// Clear expires the session cookie without touching the store
func (s *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.newCookie(s.cookie.Name, "", -1))
}

func (s *SessionManager) SetFlash(w http.ResponseWriter, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(message))
	http.SetCookie(w, s.newCookie(s.cookie.Name+flashSuffix, value, flashMaxAge))
}

// PopFlash returns the pending flash message, if any, and clears it
func (s *SessionManager) PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(s.cookie.Name + flashSuffix)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, s.newCookie(s.cookie.Name+flashSuffix, "", -1))

	msg, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		s.logger.Debugf("discarding malformed flash cookie: %v", err)
		return ""
	}

	return string(msg)
}

func (s *SessionManager) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func NewSessionManager(store SessionStoreInterface, cookie CookieConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionManager {
	s := new(SessionManager)

	s.store = store
	s.cookie = cookie

	if s.cookie.Name == "" {
		s.cookie.Name = DefaultCookieName
	}

	if s.cookie.TTL <= 0 {
		s.cookie.TTL = DefaultSessionTTL
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
