// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domain

import (
	"context"
	"time"

	"github.com/smartvillage/village-gateway/internal/cache"
	"github.com/smartvillage/village-gateway/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package domain -destination ./mock_interfaces.go -source=./interfaces.go

type VillageStoreInterface interface {
	GetVillageBySlug(ctx context.Context, slug string) (*types.Village, error)
	GetVillageByDomain(ctx context.Context, host string) (*types.Village, error)
}

type CacheInterface interface {
	Get(ctx context.Context, key cache.Key) ([]byte, bool, error)
	Set(ctx context.Context, key cache.Key, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...cache.Key) error
}
