// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"testing"

	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/domain"
)

func TestCanAccess(t *testing.T) {
	main := domain.Result{Kind: domain.Main}
	subA := domain.Result{Kind: domain.Subdomain, Village: villageA}
	subB := domain.Result{Kind: domain.Subdomain, Village: villageB}
	customA := domain.Result{Kind: domain.CustomDomain, Village: villageA}
	subNil := domain.Result{Kind: domain.Subdomain}
	customNil := domain.Result{Kind: domain.CustomDomain}
	subInactive := domain.Result{Kind: domain.Subdomain, Village: villageC}

	super := SuperAdmin{Identity: active}
	villageAdminA := VillageAdmin{Identity: active, VillageID: villageA.ID}
	communityAdminA := CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA}
	smeAdminA := SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA}

	tests := []struct {
		name   string
		p      Principal
		result domain.Result
		want   bool
	}{
		{"nil principal on main", nil, main, false},
		{"nil principal on village", nil, subA, false},

		{"super admin on main", super, main, true},
		{"super admin on subdomain", super, subA, false},
		{"super admin on custom domain", super, customA, false},
		{"super admin on unresolved subdomain", super, subNil, false},
		{"inactive super admin on main", SuperAdmin{Identity: inactive}, main, false},

		{"village admin on main", villageAdminA, main, false},
		{"village admin on own subdomain", villageAdminA, subA, true},
		{"village admin on own custom domain", villageAdminA, customA, true},
		{"village admin on other village", villageAdminA, subB, false},
		{"village admin on unresolved subdomain", villageAdminA, subNil, false},
		{"village admin on unresolved custom domain", villageAdminA, customNil, false},
		{"village admin on inactive village", VillageAdmin{Identity: active, VillageID: villageC.ID}, subInactive, false},
		{"inactive village admin on own village", VillageAdmin{Identity: inactive, VillageID: villageA.ID}, subA, false},
		{"village admin without village", VillageAdmin{Identity: active}, subA, false},

		{"community admin on main", communityAdminA, main, false},
		{"community admin on own village", communityAdminA, subA, true},
		{"community admin on own custom domain", communityAdminA, customA, true},
		{"community admin on other village", communityAdminA, subB, false},
		{"community admin on unresolved", communityAdminA, subNil, false},
		{"community admin with nil community", CommunityAdmin{Identity: active, CommunityID: communityA.ID}, subA, false},

		{"sme admin on main", smeAdminA, main, false},
		{"sme admin on own village", smeAdminA, subA, true},
		{"sme admin on own custom domain", smeAdminA, customA, true},
		{"sme admin on other village", smeAdminA, subB, false},
		{"sme admin on unresolved", smeAdminA, customNil, false},
		{"sme admin with nil sme", SMEAdmin{Identity: active, SMEID: smeA.ID, Community: communityA}, subA, false},
		{"sme admin with nil community", SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA}, subA, false},

		{"unknown kind", super, domain.Result{Kind: domain.Kind(42), Village: villageA}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.p, tt.result); got != tt.want {
				t.Errorf("CanAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccess_MainDomainIsolation(t *testing.T) {
	main := domain.Result{Kind: domain.Main}

	for _, np := range principals() {
		for _, v := range []*types.Village{villageA, villageB} {
			for _, kind := range []domain.Kind{domain.Subdomain, domain.CustomDomain} {
				if _, ok := np.p.(SuperAdmin); ok && CanAccess(np.p, domain.Result{Kind: kind, Village: v}) {
					t.Errorf("%s allowed on %s %s", np.name, kind, v.ID)
				}
			}
		}

		if _, ok := np.p.(SuperAdmin); !ok && CanAccess(np.p, main) {
			t.Errorf("%s allowed on the main domain", np.name)
		}
	}
}

func TestCanAccess_FailClosedOnUnresolvedVillage(t *testing.T) {
	for _, np := range principals() {
		for _, kind := range []domain.Kind{domain.Subdomain, domain.CustomDomain} {
			if CanAccess(np.p, domain.Result{Kind: kind}) {
				t.Errorf("%s allowed on unresolved %s", np.name, kind)
			}
		}
	}
}

func TestCanAccess_ScopeMonotonicity(t *testing.T) {
	villages := []*types.Village{villageA, villageB}

	tests := []struct {
		name string
		p    Principal
		own  string
	}{
		{"village admin", VillageAdmin{Identity: active, VillageID: villageA.ID}, villageA.ID},
		{"community admin", CommunityAdmin{Identity: active, CommunityID: communityB.ID, Community: communityB}, villageB.ID},
		{"sme admin", SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA}, villageA.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range villages {
				want := v.ID == tt.own
				if got := CanAccess(tt.p, domain.Result{Kind: domain.Subdomain, Village: v}); got != want {
					t.Errorf("village %s: CanAccess() = %v, want %v", v.ID, got, want)
				}
			}
		})
	}
}

// scoped listings must grant exactly the villages the panel gate grants
func TestScopeMatchesCanAccess(t *testing.T) {
	for _, np := range principals() {
		if _, ok := np.p.(SuperAdmin); ok {
			continue
		}

		scope := ScopeOf(np.p)
		for _, v := range []*types.Village{villageA, villageB} {
			for _, kind := range []domain.Kind{domain.Subdomain, domain.CustomDomain} {
				listed := scope.ContainsVillage(v.ID)
				allowed := CanAccess(np.p, domain.Result{Kind: kind, Village: v})

				if listed != allowed {
					t.Errorf("%s on %s %s: listed=%v allowed=%v", np.name, kind, v.ID, listed, allowed)
				}
			}
		}
	}
}

func TestPrincipalRoles(t *testing.T) {
	tests := []struct {
		p    Principal
		want types.Role
	}{
		{SuperAdmin{}, types.RoleSuperAdmin},
		{VillageAdmin{}, types.RoleVillageAdmin},
		{CommunityAdmin{}, types.RoleCommunityAdmin},
		{SMEAdmin{}, types.RoleSMEAdmin},
	}

	for _, tt := range tests {
		if got := tt.p.Role(); got != tt.want {
			t.Errorf("expected role %s, got %s", tt.want, got)
		}
	}
}
