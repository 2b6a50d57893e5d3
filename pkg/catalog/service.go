// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"fmt"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

// Service lists village content restricted to the caller's ownership subtree.
// Principals without a valid chain get empty listings, never an error.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListCommunities(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListCommunities")
	defer span.End()

	communities, err := s.storage.ListCommunities(ctx, access.ScopeOf(p).Communities(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}

	return communities, nil
}

func (s *Service) ListSMEs(ctx context.Context, p access.Principal, page storage.Page) ([]*types.SME, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListSMEs")
	defer span.End()

	smes, err := s.storage.ListSMEs(ctx, access.ScopeOf(p).SMEs(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list smes: %w", err)
	}

	return smes, nil
}

func (s *Service) ListOffers(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Offer, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListOffers")
	defer span.End()

	offers, err := s.storage.ListOffers(ctx, access.ScopeOf(p).Offers(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return offers, nil
}

func (s *Service) ListPlaces(ctx context.Context, p access.Principal, page storage.Page) ([]*types.Place, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListPlaces")
	defer span.End()

	places, err := s.storage.ListPlaces(ctx, access.ScopeOf(p).Places(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	return places, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
