// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

type ServiceInterface interface {
	ListCommunities(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Community, error)
	ListSMEs(ctx context.Context, p access.Principal, page storage.Page) ([]*types.SME, error)
	ListOffers(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Offer, error)
	ListPlaces(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Place, error)
}

type StorageInterface interface {
	ListCommunities(ctx context.Context, filter sq.Sqlizer, page storage.Page) ([]*types.Community, error)
	ListSMEs(ctx context.Context, filter sq.Sqlizer, page storage.Page) ([]*types.SME, error)
	ListOffers(ctx context.Context, filter sq.Sqlizer, page storage.Page) ([]*types.Offer, error)
	ListPlaces(ctx context.Context, filter sq.Sqlizer, page storage.Page) ([]*types.Place, error)
}
