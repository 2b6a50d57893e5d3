// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/smartvillage/village-gateway/internal/types"
)

// Principal is an authenticated admin, one concrete type per role.
// The set is closed: only the types in this package implement it.
type Principal interface {
	UserID() string
	Active() bool
	Role() types.Role

	isPrincipal()
}

var (
	_ Principal = SuperAdmin{}
	_ Principal = VillageAdmin{}
	_ Principal = CommunityAdmin{}
	_ Principal = SMEAdmin{}
)

// Identity holds the attributes shared by every role
type Identity struct {
	ID       string
	IsActive bool
}

func (i Identity) UserID() string {
	return i.ID
}

func (i Identity) Active() bool {
	return i.IsActive
}

// SuperAdmin administers the main panel and every village record, but no village domain
type SuperAdmin struct {
	Identity
}

func (SuperAdmin) Role() types.Role { return types.RoleSuperAdmin }
func (SuperAdmin) isPrincipal()     {}

type VillageAdmin struct {
	Identity

	VillageID string
}

func (VillageAdmin) Role() types.Role { return types.RoleVillageAdmin }
func (VillageAdmin) isPrincipal()     {}

// CommunityAdmin inherits its village through Community, nil when the reference dangles
type CommunityAdmin struct {
	Identity

	CommunityID string
	Community   *types.Community
}

func (CommunityAdmin) Role() types.Role { return types.RoleCommunityAdmin }
func (CommunityAdmin) isPrincipal()     {}

// SMEAdmin inherits community and village through SME and Community
type SMEAdmin struct {
	Identity

	SMEID     string
	SME       *types.SME
	Community *types.Community
}

func (SMEAdmin) Role() types.Role { return types.RoleSMEAdmin }
func (SMEAdmin) isPrincipal()     {}
