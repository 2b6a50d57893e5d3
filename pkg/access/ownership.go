// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
)

var ErrUnknownRole = errors.New("unknown role")

// OwnershipResolver turns a stored user into a Principal, loading the
// community and SME links the role inherits its village through
type OwnershipResolver struct {
	store OwnershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *OwnershipResolver) Resolve(ctx context.Context, u *types.User) (Principal, error) {
	ctx, span := r.tracer.Start(ctx, "access.OwnershipResolver.Resolve")
	defer span.End()

	if u == nil {
		return nil, nil
	}

	id := Identity{ID: u.ID, IsActive: u.IsActive}

	switch u.Role {
	case types.RoleSuperAdmin:
		return SuperAdmin{Identity: id}, nil
	case types.RoleVillageAdmin:
		return VillageAdmin{Identity: id, VillageID: deref(u.VillageID)}, nil
	case types.RoleCommunityAdmin:
		p := CommunityAdmin{Identity: id, CommunityID: deref(u.CommunityID)}

		c, err := r.community(ctx, p.CommunityID)
		if err != nil {
			return nil, err
		}
		p.Community = c

		return p, nil
	case types.RoleSMEAdmin:
		p := SMEAdmin{Identity: id, SMEID: deref(u.SMEID)}

		sme, err := r.sme(ctx, p.SMEID)
		if err != nil {
			return nil, err
		}
		p.SME = sme

		if sme != nil {
			c, err := r.community(ctx, sme.CommunityID)
			if err != nil {
				return nil, err
			}
			p.Community = c
		}

		return p, nil
	default:
		return nil, fmt.Errorf("%w %q for user %s", ErrUnknownRole, u.Role, u.ID)
	}
}

// community returns nil without error when the link is unset or dangles
func (r *OwnershipResolver) community(ctx context.Context, id string) (*types.Community, error) {
	if id == "" {
		return nil, nil
	}

	c, err := r.store.GetCommunityByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		r.logger.Warnf("community %s referenced by an admin does not exist", id)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load community %s: %w", id, err)
	}

	return c, nil
}

func (r *OwnershipResolver) sme(ctx context.Context, id string) (*types.SME, error) {
	if id == "" {
		return nil, nil
	}

	s, err := r.store.GetSMEByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		r.logger.Warnf("sme %s referenced by an admin does not exist", id)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load sme %s: %w", id, err)
	}

	return s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewOwnershipResolver(store OwnershipReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *OwnershipResolver {
	r := new(OwnershipResolver)

	r.store = store

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
