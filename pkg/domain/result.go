// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domain

import (
	"context"

	"github.com/smartvillage/village-gateway/internal/types"
)

// Kind classifies an inbound hostname against the tenant space
type Kind int

const (
	Main Kind = iota
	Subdomain
	CustomDomain
)

func (k Kind) String() string {
	switch k {
	case Main:
		return "main"
	case Subdomain:
		return "subdomain"
	case CustomDomain:
		return "custom_domain"
	default:
		return "unknown"
	}
}

// Result is the per-request outcome of host resolution.
// Village is nil when no active village matches a subdomain or custom domain.
type Result struct {
	Kind    Kind
	Village *types.Village
}

func (r Result) IsMain() bool {
	return r.Kind == Main
}

type resultContextKey struct{}

// WithResult attaches the resolution outcome to the request context
func WithResult(ctx context.Context, r Result) context.Context {
	return context.WithValue(ctx, resultContextKey{}, r)
}

// ResultFromContext returns the resolution attached by WithResult
func ResultFromContext(ctx context.Context) (Result, bool) {
	r, ok := ctx.Value(resultContextKey{}).(Result)
	return r, ok
}

// VillageFromContext returns the resolved village, nil on the main domain or when unresolved
func VillageFromContext(ctx context.Context) *types.Village {
	r, ok := ResultFromContext(ctx)
	if !ok {
		return nil
	}
	return r.Village
}
