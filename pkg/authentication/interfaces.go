// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

type SessionStoreInterface interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

type UserStoreInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type PrincipalResolverInterface interface {
	// Resolve builds the principal of a stored user, walking its ownership chain
	Resolve(ctx context.Context, u *types.User) (access.Principal, error)
}
