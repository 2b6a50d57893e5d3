// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"reflect"
	"testing"

	sq "github.com/Masterminds/squirrel"
)

func TestScopeOf(t *testing.T) {
	tests := []struct {
		name string
		p    Principal
		want Scope
	}{
		{"nil", nil, Scope{Level: LevelNone}},
		{"super admin", SuperAdmin{Identity: active}, Scope{Level: LevelAll}},
		{"inactive super admin", SuperAdmin{Identity: inactive}, Scope{Level: LevelNone}},
		{
			"village admin",
			VillageAdmin{Identity: active, VillageID: villageA.ID},
			Scope{Level: LevelVillage, VillageID: villageA.ID},
		},
		{"village admin without village", VillageAdmin{Identity: active}, Scope{Level: LevelNone}},
		{
			"community admin",
			CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA},
			Scope{Level: LevelCommunity, VillageID: villageA.ID, CommunityID: communityA.ID},
		},
		{"community admin with dangling community", CommunityAdmin{Identity: active, CommunityID: "gone"}, Scope{Level: LevelNone}},
		{
			"sme admin",
			SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA},
			Scope{Level: LevelSME, VillageID: villageA.ID, CommunityID: communityA.ID, SMEID: smeA.ID},
		},
		{"sme admin with dangling sme", SMEAdmin{Identity: active, SMEID: "gone"}, Scope{Level: LevelNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeOf(tt.p); got != tt.want {
				t.Errorf("ScopeOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScope_Contains(t *testing.T) {
	all := ScopeOf(SuperAdmin{Identity: active})
	village := ScopeOf(VillageAdmin{Identity: active, VillageID: villageA.ID})
	community := ScopeOf(CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA})
	sme := ScopeOf(SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA})
	none := ScopeOf(nil)

	tests := []struct {
		name          string
		scope         Scope
		wantCommunity [2]bool
		wantSME       [2]bool
	}{
		{"all", all, [2]bool{true, true}, [2]bool{true, true}},
		{"village", village, [2]bool{true, false}, [2]bool{true, false}},
		{"community", community, [2]bool{true, false}, [2]bool{true, false}},
		{"sme", sme, [2]bool{true, false}, [2]bool{true, false}},
		{"none", none, [2]bool{false, false}, [2]bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCommunity := [2]bool{tt.scope.ContainsCommunity(communityA), tt.scope.ContainsCommunity(communityB)}
			if gotCommunity != tt.wantCommunity {
				t.Errorf("ContainsCommunity = %v, want %v", gotCommunity, tt.wantCommunity)
			}

			gotSME := [2]bool{tt.scope.ContainsSME(smeA, communityA), tt.scope.ContainsSME(smeB, communityB)}
			if gotSME != tt.wantSME {
				t.Errorf("ContainsSME = %v, want %v", gotSME, tt.wantSME)
			}

			if tt.scope.ContainsCommunity(nil) || tt.scope.ContainsSME(nil, nil) {
				t.Error("nil entities must never be contained")
			}
		})
	}
}

func TestScope_ContainsSMEOfSiblingInSameCommunity(t *testing.T) {
	sibling := *smeA
	sibling.ID = "sme-a2"

	community := ScopeOf(CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA})
	sme := ScopeOf(SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA})

	if !community.ContainsSME(&sibling, communityA) {
		t.Error("community admin must see every sme of the community")
	}

	if sme.ContainsSME(&sibling, communityA) {
		t.Error("sme admin must only see their own sme")
	}
}

func toSQL(t *testing.T, table string, filter sq.Sqlizer) (string, []any) {
	t.Helper()

	query, args, err := sq.Select("id").From(table).Where(filter).ToSql()
	if err != nil {
		t.Fatalf("failed to build query: %v", err)
	}
	return query, args
}

func TestScope_Filters(t *testing.T) {
	all := ScopeOf(SuperAdmin{Identity: active})
	village := ScopeOf(VillageAdmin{Identity: active, VillageID: villageA.ID})
	community := ScopeOf(CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA})
	sme := ScopeOf(SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA})
	none := ScopeOf(VillageAdmin{Identity: inactive, VillageID: villageA.ID})

	tests := []struct {
		name      string
		table     string
		filter    sq.Sqlizer
		wantQuery string
		wantArgs  []any
	}{
		{"all villages", "villages", all.Villages(), "SELECT id FROM villages WHERE 1 = 1", nil},
		{"all offers", "offers", all.Offers(), "SELECT id FROM offers WHERE 1 = 1", nil},
		{"none villages", "villages", none.Villages(), "SELECT id FROM villages WHERE 1 = 0", nil},
		{"none communities", "communities", none.Communities(), "SELECT id FROM communities WHERE 1 = 0", nil},
		{"none smes", "smes", none.SMEs(), "SELECT id FROM smes WHERE 1 = 0", nil},
		{"none places", "places", none.Places(), "SELECT id FROM places WHERE 1 = 0", nil},

		{"village villages", "villages", village.Villages(), "SELECT id FROM villages WHERE id = ?", []any{"village-a"}},
		{"village communities", "communities", village.Communities(), "SELECT id FROM communities WHERE village_id = ?", []any{"village-a"}},
		{
			"village smes", "smes", village.SMEs(),
			"SELECT id FROM smes WHERE community_id IN (SELECT id FROM communities WHERE village_id = ?)",
			[]any{"village-a"},
		},
		{
			"village offers", "offers", village.Offers(),
			"SELECT id FROM offers WHERE sme_id IN (SELECT s.id FROM smes s JOIN communities c ON c.id = s.community_id WHERE c.village_id = ?)",
			[]any{"village-a"},
		},

		{"community villages", "villages", community.Villages(), "SELECT id FROM villages WHERE id = ?", []any{"village-a"}},
		{"community communities", "communities", community.Communities(), "SELECT id FROM communities WHERE id = ?", []any{"community-a"}},
		{"community smes", "smes", community.SMEs(), "SELECT id FROM smes WHERE community_id = ?", []any{"community-a"}},
		{
			"community places", "places", community.Places(),
			"SELECT id FROM places WHERE sme_id IN (SELECT id FROM smes WHERE community_id = ?)",
			[]any{"community-a"},
		},

		{"sme villages", "villages", sme.Villages(), "SELECT id FROM villages WHERE id = ?", []any{"village-a"}},
		{"sme communities", "communities", sme.Communities(), "SELECT id FROM communities WHERE id = ?", []any{"community-a"}},
		{"sme smes", "smes", sme.SMEs(), "SELECT id FROM smes WHERE id = ?", []any{"sme-a"}},
		{"sme offers", "offers", sme.Offers(), "SELECT id FROM offers WHERE sme_id = ?", []any{"sme-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := toSQL(t, tt.table, tt.filter)

			if query != tt.wantQuery {
				t.Errorf("expected query %q, got %q", tt.wantQuery, query)
			}

			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}
