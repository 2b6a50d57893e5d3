// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/smartvillage/village-gateway/internal/types"
)

type Level int

const (
	LevelNone Level = iota
	LevelAll
	LevelVillage
	LevelCommunity
	LevelSME
)

func (l Level) String() string {
	switch l {
	case LevelAll:
		return "all"
	case LevelVillage:
		return "village"
	case LevelCommunity:
		return "community"
	case LevelSME:
		return "sme"
	default:
		return "none"
	}
}

var (
	matchAll  = sq.Expr("1 = 1")
	matchNone = sq.Expr("1 = 0")
)

// Scope is the resolved ownership chain of a principal.
// Every field above Level is filled in for scoped roles, so
// an SME scope also carries its community and village.
type Scope struct {
	Level       Level
	VillageID   string
	CommunityID string
	SMEID       string
}

// ScopeOf walks the ownership chain of p. Inactive principals and broken
// chains produce LevelNone.
func ScopeOf(p Principal) Scope {
	if p == nil || !p.Active() {
		return Scope{Level: LevelNone}
	}

	switch v := p.(type) {
	case SuperAdmin:
		return Scope{Level: LevelAll}
	case VillageAdmin:
		if v.VillageID == "" {
			break
		}
		return Scope{Level: LevelVillage, VillageID: v.VillageID}
	case CommunityAdmin:
		if v.CommunityID == "" || v.Community == nil || v.Community.VillageID == "" {
			break
		}
		return Scope{Level: LevelCommunity, VillageID: v.Community.VillageID, CommunityID: v.CommunityID}
	case SMEAdmin:
		if v.SMEID == "" || v.SME == nil || v.Community == nil || v.Community.VillageID == "" {
			break
		}
		return Scope{
			Level:       LevelSME,
			VillageID:   v.Community.VillageID,
			CommunityID: v.SME.CommunityID,
			SMEID:       v.SMEID,
		}
	}

	return Scope{Level: LevelNone}
}

func (s Scope) IsAll() bool {
	return s.Level == LevelAll
}

func (s Scope) IsNone() bool {
	return s.Level == LevelNone
}

func (s Scope) ContainsVillage(id string) bool {
	switch s.Level {
	case LevelAll:
		return true
	case LevelVillage, LevelCommunity, LevelSME:
		return id != "" && id == s.VillageID
	default:
		return false
	}
}

func (s Scope) ContainsCommunity(c *types.Community) bool {
	if c == nil {
		return false
	}

	switch s.Level {
	case LevelAll:
		return true
	case LevelVillage:
		return c.VillageID == s.VillageID
	case LevelCommunity, LevelSME:
		return c.ID == s.CommunityID
	default:
		return false
	}
}

// ContainsSME checks an SME, owner is the community the SME belongs to and is
// only consulted for village scopes
func (s Scope) ContainsSME(sme *types.SME, owner *types.Community) bool {
	if sme == nil {
		return false
	}

	switch s.Level {
	case LevelAll:
		return true
	case LevelVillage:
		return owner != nil && owner.ID == sme.CommunityID && owner.VillageID == s.VillageID
	case LevelCommunity:
		return sme.CommunityID == s.CommunityID
	case LevelSME:
		return sme.ID == s.SMEID
	default:
		return false
	}
}

// Villages filters the villages table
func (s Scope) Villages() sq.Sqlizer {
	switch s.Level {
	case LevelAll:
		return matchAll
	case LevelVillage, LevelCommunity, LevelSME:
		return sq.Eq{"id": s.VillageID}
	default:
		return matchNone
	}
}

// Communities filters the communities table
func (s Scope) Communities() sq.Sqlizer {
	switch s.Level {
	case LevelAll:
		return matchAll
	case LevelVillage:
		return sq.Eq{"village_id": s.VillageID}
	case LevelCommunity, LevelSME:
		return sq.Eq{"id": s.CommunityID}
	default:
		return matchNone
	}
}

// SMEs filters the smes table
func (s Scope) SMEs() sq.Sqlizer {
	switch s.Level {
	case LevelAll:
		return matchAll
	case LevelVillage:
		return sq.Expr("community_id IN (SELECT id FROM communities WHERE village_id = ?)", s.VillageID)
	case LevelCommunity:
		return sq.Eq{"community_id": s.CommunityID}
	case LevelSME:
		return sq.Eq{"id": s.SMEID}
	default:
		return matchNone
	}
}

// Offers filters the offers table
func (s Scope) Offers() sq.Sqlizer {
	return s.ownedBySME()
}

// Places filters the places table
func (s Scope) Places() sq.Sqlizer {
	return s.ownedBySME()
}

func (s Scope) ownedBySME() sq.Sqlizer {
	switch s.Level {
	case LevelAll:
		return matchAll
	case LevelVillage:
		return sq.Expr(
			"sme_id IN (SELECT s.id FROM smes s JOIN communities c ON c.id = s.community_id WHERE c.village_id = ?)",
			s.VillageID,
		)
	case LevelCommunity:
		return sq.Expr("sme_id IN (SELECT id FROM smes WHERE community_id = ?)", s.CommunityID)
	case LevelSME:
		return sq.Eq{"sme_id": s.SMEID}
	default:
		return matchNone
	}
}
