// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/smartvillage/village-gateway/internal/types"
)

var (
	villageA = &types.Village{ID: "village-a", Slug: "riverside", IsActive: true}
	villageB = &types.Village{ID: "village-b", Slug: "hillside", IsActive: true}
	villageC = &types.Village{ID: "village-c", Slug: "closed", IsActive: false}

	communityA = &types.Community{ID: "community-a", VillageID: "village-a"}
	communityB = &types.Community{ID: "community-b", VillageID: "village-b"}

	smeA = &types.SME{ID: "sme-a", CommunityID: "community-a", IsActive: true}
	smeB = &types.SME{ID: "sme-b", CommunityID: "community-b", IsActive: true}

	active   = Identity{ID: "user-1", IsActive: true}
	inactive = Identity{ID: "user-2", IsActive: false}
)

type namedPrincipal struct {
	name string
	p    Principal
}

// principals covers every role, including broken and inactive variants
func principals() []namedPrincipal {
	return []namedPrincipal{
		{"super admin", SuperAdmin{Identity: active}},
		{"village admin A", VillageAdmin{Identity: active, VillageID: villageA.ID}},
		{"village admin B", VillageAdmin{Identity: active, VillageID: villageB.ID}},
		{"community admin A", CommunityAdmin{Identity: active, CommunityID: communityA.ID, Community: communityA}},
		{"community admin B", CommunityAdmin{Identity: active, CommunityID: communityB.ID, Community: communityB}},
		{"sme admin A", SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA, Community: communityA}},
		{"sme admin B", SMEAdmin{Identity: active, SMEID: smeB.ID, SME: smeB, Community: communityB}},
		{"inactive super admin", SuperAdmin{Identity: inactive}},
		{"inactive village admin A", VillageAdmin{Identity: inactive, VillageID: villageA.ID}},
		{"inactive community admin A", CommunityAdmin{Identity: inactive, CommunityID: communityA.ID, Community: communityA}},
		{"inactive sme admin A", SMEAdmin{Identity: inactive, SMEID: smeA.ID, SME: smeA, Community: communityA}},
		{"village admin without village", VillageAdmin{Identity: active}},
		{"community admin with dangling community", CommunityAdmin{Identity: active, CommunityID: "gone"}},
		{"sme admin with dangling sme", SMEAdmin{Identity: active, SMEID: "gone"}},
		{"sme admin with dangling community", SMEAdmin{Identity: active, SMEID: smeA.ID, SME: smeA}},
	}
}
