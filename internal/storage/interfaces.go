// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/smartvillage/village-gateway/internal/types"
)

type StorageInterface interface {
	GetVillageByID(ctx context.Context, id string) (*types.Village, error)
	GetVillageBySlug(ctx context.Context, slug string) (*types.Village, error)
	GetVillageByDomain(ctx context.Context, host string) (*types.Village, error)
	ListVillages(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Village, error)
	CreateVillage(ctx context.Context, v *types.Village) (*types.Village, error)
	UpdateVillage(ctx context.Context, v *types.Village, paths []string) error
	SetVillageStatus(ctx context.Context, id string, active bool) error

	GetCommunityByID(ctx context.Context, id string) (*types.Community, error)
	ListCommunities(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Community, error)
	GetSMEByID(ctx context.Context, id string) (*types.SME, error)
	ListSMEs(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.SME, error)
	ListOffers(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Offer, error)
	ListActiveOffersByVillage(ctx context.Context, villageID string, page Page) ([]*types.Offer, error)
	ListPlaces(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Place, error)

	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
}
