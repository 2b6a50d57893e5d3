// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, description string, fields ...zap.Field) {
	s.l.Info(description, append([]zap.Field{zap.String("event", name), zap.String("type", "security")}, fields...)...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup", "village gateway started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown", "village gateway stopped")
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.event("authn_login_success:"+userID, "user logged in", zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthnLoginFailure(userID string) {
	s.event("authn_login_fail:"+userID, "user failed to log in", zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.event("authz_fail:"+userID+","+resource, "user attempted to access a resource without entitlement",
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) SessionTerminated(userID, reason string) {
	s.event("session_terminated:"+userID, "session was terminated",
		zap.String("user_id", userID),
		zap.String("reason", reason),
	)
}
