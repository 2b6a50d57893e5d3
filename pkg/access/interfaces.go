// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/smartvillage/village-gateway/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

// OwnershipReaderInterface is the read-only view of the ownership chain
type OwnershipReaderInterface interface {
	GetCommunityByID(ctx context.Context, id string) (*types.Community, error)
	GetSMEByID(ctx context.Context, id string) (*types.SME, error)
}
