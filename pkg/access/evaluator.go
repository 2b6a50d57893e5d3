// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/smartvillage/village-gateway/pkg/domain"
)

// CanAccess decides whether p may use the admin panel served on the resolved domain.
// It is total: every combination not explicitly allowed is denied.
func CanAccess(p Principal, r domain.Result) bool {
	if p == nil || !p.Active() {
		return false
	}

	if r.Kind == domain.Main {
		_, ok := p.(SuperAdmin)
		return ok
	}

	if r.Kind != domain.Subdomain && r.Kind != domain.CustomDomain {
		return false
	}

	if r.Village == nil || !r.Village.IsActive {
		return false
	}

	switch p.(type) {
	case SuperAdmin:
		// isolated from every village domain
		return false
	case VillageAdmin, CommunityAdmin, SMEAdmin:
		return ScopeOf(p).ContainsVillage(r.Village.ID)
	default:
		return false
	}
}
