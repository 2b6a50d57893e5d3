// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"
	"net/http"

	"github.com/smartvillage/village-gateway/pkg/domain"
)

//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

type ResolverInterface interface {
	Resolve(ctx context.Context, host string) domain.Result
}

// SessionTerminatorInterface is the forced-logout side of the session manager
type SessionTerminatorInterface interface {
	// Terminate must have removed the session from the store when it returns nil
	Terminate(w http.ResponseWriter, r *http.Request) error
	SetFlash(w http.ResponseWriter, message string)
}
