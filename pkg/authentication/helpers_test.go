// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const testCookie = "village_session"

type mocks struct {
	sessions   *MockSessionStoreInterface
	users      *MockUserStoreInterface
	principals *MockPrincipalResolverInterface
	tracer     *MockTracingInterface
	monitor    *MockMonitorInterface
	logger     *MockLoggerInterface
	security   *MockSecurityLoggerInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		sessions:   NewMockSessionStoreInterface(ctrl),
		users:      NewMockUserStoreInterface(ctrl),
		principals: NewMockPrincipalResolverInterface(ctrl),
		tracer:     NewMockTracingInterface(ctrl),
		monitor:    NewMockMonitorInterface(ctrl),
		logger:     NewMockLoggerInterface(ctrl),
		security:   NewMockSecurityLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	return m
}

func (m *mocks) sessionManager() *SessionManager {
	return NewSessionManager(m.sessions, CookieConfig{Name: testCookie, Secure: true, TTL: time.Hour}, m.tracer, m.monitor, m.logger)
}

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()

	// the last Set-Cookie for a name wins
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == name {
			found = c
		}
	}
	return found
}
