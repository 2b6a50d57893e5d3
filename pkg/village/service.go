// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package village

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

var ErrForbidden = errors.New("forbidden")

// fields a village admin may edit on their own village
var villageAdminPaths = map[string]bool{
	"name":        true,
	"description": true,
	"settings":    true,
}

var superAdminPaths = map[string]bool{
	"name":        true,
	"slug":        true,
	"domain":      true,
	"description": true,
	"is_active":   true,
	"settings":    true,
}

type Service struct {
	storage StorageInterface
	cache   CacheInvalidatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache CacheInvalidatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListVillages returns the villages inside the principal's scope, inactive ones included
func (s *Service) ListVillages(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "village.Service.ListVillages")
	defer span.End()

	villages, err := s.storage.ListVillages(ctx, access.ScopeOf(p).Villages(), page)
	if err != nil {
		return nil, err
	}

	return villages, nil
}

func (s *Service) GetVillage(ctx context.Context, p access.Principal, id string) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "village.Service.GetVillage")
	defer span.End()

	if !access.ScopeOf(p).ContainsVillage(id) {
		return nil, ErrForbidden
	}

	return s.storage.GetVillageByID(ctx, id)
}

func (s *Service) CreateVillage(ctx context.Context, p access.Principal, v *types.Village) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "village.Service.CreateVillage")
	defer span.End()

	if !access.ScopeOf(p).IsAll() {
		return nil, ErrForbidden
	}

	created, err := s.storage.CreateVillage(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("failed to create village: %w", err)
	}

	// the slug or domain may be tombstoned from an earlier miss
	s.invalidate(ctx, created)

	return created, nil
}

// UpdateVillage applies a partial update. Village admins may only edit the
// presentation of their own village.
func (s *Service) UpdateVillage(ctx context.Context, p access.Principal, v *types.Village, paths []string) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "village.Service.UpdateVillage")
	defer span.End()

	scope := access.ScopeOf(p)

	var allowed map[string]bool
	switch scope.Level {
	case access.LevelAll:
		allowed = superAdminPaths
	case access.LevelVillage:
		allowed = villageAdminPaths
	default:
		return nil, ErrForbidden
	}

	if !scope.ContainsVillage(v.ID) {
		return nil, ErrForbidden
	}

	for _, path := range paths {
		if !allowed[path] {
			return nil, fmt.Errorf("%w: field %q", ErrForbidden, path)
		}
	}

	before, err := s.storage.GetVillageByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateVillage(ctx, v, paths); err != nil {
		return nil, fmt.Errorf("failed to update village: %w", err)
	}

	after, err := s.storage.GetVillageByID(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated village: %w", err)
	}

	s.invalidate(ctx, before, after)

	return after, nil
}

func (s *Service) SetVillageStatus(ctx context.Context, p access.Principal, id string, active bool) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "village.Service.SetVillageStatus")
	defer span.End()

	if !access.ScopeOf(p).IsAll() {
		return nil, ErrForbidden
	}

	if err := s.storage.SetVillageStatus(ctx, id, active); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetVillageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated village: %w", err)
	}

	s.invalidate(ctx, updated)

	return updated, nil
}

// invalidate never fails the write, cached entries still expire with their TTL
func (s *Service) invalidate(ctx context.Context, villages ...*types.Village) {
	if err := s.cache.Invalidate(ctx, villages...); err != nil {
		s.logger.Errorf("failed to invalidate village cache: %v", err)
		s.setCacheAvailability(0)
		return
	}

	s.setCacheAvailability(1)
}

func (s *Service) setCacheAvailability(v float64) {
	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": "cache"}, v); err != nil {
		s.logger.Debugf("failed to record cache availability: %v", err)
	}
}
