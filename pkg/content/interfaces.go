// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package content -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

type OfferReaderInterface interface {
	ListActiveOffersByVillage(ctx context.Context, villageID string, page storage.Page) ([]*types.Offer, error)
}
