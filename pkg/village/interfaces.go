// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package village

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

//go:generate mockgen -build_flags=--mod=mod -package village -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package village -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package village -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package village -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

type ServiceInterface interface {
	ListVillages(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Village, error)
	GetVillage(ctx context.Context, p access.Principal, id string) (*types.Village, error)
	CreateVillage(ctx context.Context, p access.Principal, v *types.Village) (*types.Village, error)
	UpdateVillage(ctx context.Context, p access.Principal, v *types.Village, paths []string) (*types.Village, error)
	SetVillageStatus(ctx context.Context, p access.Principal, id string, active bool) (*types.Village, error)
}

type StorageInterface interface {
	GetVillageByID(ctx context.Context, id string) (*types.Village, error)
	ListVillages(ctx context.Context, filter sq.Sqlizer, page storage.Page) ([]*types.Village, error)
	CreateVillage(ctx context.Context, v *types.Village) (*types.Village, error)
	UpdateVillage(ctx context.Context, v *types.Village, paths []string) error
	SetVillageStatus(ctx context.Context, id string, active bool) error
}

// CacheInvalidatorInterface drops cached domain lookups of the given villages
type CacheInvalidatorInterface interface {
	Invalidate(ctx context.Context, villages ...*types.Village) error
}
