// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
)

var (
	riversideHall = &types.Community{ID: "community-1", VillageID: "village-riverside"}
	batikShop     = &types.SME{ID: "sme-1", CommunityID: riversideHall.ID, IsActive: true}

	superAdmin     = access.SuperAdmin{Identity: access.Identity{ID: "user-super", IsActive: true}}
	villageAdmin   = access.VillageAdmin{Identity: access.Identity{ID: "user-1", IsActive: true}, VillageID: "village-riverside"}
	communityAdmin = access.CommunityAdmin{Identity: access.Identity{ID: "user-2", IsActive: true}, CommunityID: riversideHall.ID, Community: riversideHall}
	smeAdmin       = access.SMEAdmin{Identity: access.Identity{ID: "user-3", IsActive: true}, SMEID: batikShop.ID, SME: batikShop, Community: riversideHall}
	brokenSMEAdmin = access.SMEAdmin{Identity: access.Identity{ID: "user-4", IsActive: true}, SMEID: "gone"}
)

func passthroughSpan(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

type mocks struct {
	storage *MockStorageInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		storage: NewMockStorageInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(passthroughSpan).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

// sqlMatcher compares the rendered predicate instead of the builder value
type sqlMatcher struct {
	query string
	args  []any
}

func (s sqlMatcher) Matches(x any) bool {
	filter, ok := x.(sq.Sqlizer)
	if !ok {
		return false
	}

	query, args, err := filter.ToSql()
	if err != nil || query != s.query {
		return false
	}

	if len(args) == 0 && len(s.args) == 0 {
		return true
	}

	return reflect.DeepEqual(args, s.args)
}

func (s sqlMatcher) String() string {
	return "renders " + s.query
}

func whereSQL(query string, args ...any) gomock.Matcher {
	return sqlMatcher{query: query, args: args}
}

func TestService_ListSMEs(t *testing.T) {
	page := storage.Page{Number: 1, Size: 10}

	tests := []struct {
		name      string
		principal access.Principal
		filter    gomock.Matcher
	}{
		{name: "super admin", principal: superAdmin, filter: whereSQL("1 = 1")},
		{name: "village admin", principal: villageAdmin, filter: whereSQL("community_id IN (SELECT id FROM communities WHERE village_id = ?)", "village-riverside")},
		{name: "community admin", principal: communityAdmin, filter: whereSQL("community_id = ?", riversideHall.ID)},
		{name: "sme admin", principal: smeAdmin, filter: whereSQL("id = ?", batikShop.ID)},
		{name: "broken ownership chain", principal: brokenSMEAdmin, filter: whereSQL("1 = 0")},
		{name: "no principal", principal: nil, filter: whereSQL("1 = 0")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.storage.EXPECT().ListSMEs(gomock.Any(), test.filter, page).Return([]*types.SME{batikShop}, nil)

			smes, err := NewService(m.storage, m.tracer, m.monitor, m.logger).ListSMEs(context.TODO(), test.principal, page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(smes) != 1 {
				t.Errorf("expected 1 sme, got %d", len(smes))
			}
		})
	}
}

func TestService_ListCommunities(t *testing.T) {
	page := storage.Page{}

	tests := []struct {
		name      string
		principal access.Principal
		filter    gomock.Matcher
	}{
		{name: "super admin", principal: superAdmin, filter: whereSQL("1 = 1")},
		{name: "village admin", principal: villageAdmin, filter: whereSQL("village_id = ?", "village-riverside")},
		{name: "community admin", principal: communityAdmin, filter: whereSQL("id = ?", riversideHall.ID)},
		{name: "sme admin sees the owning community", principal: smeAdmin, filter: whereSQL("id = ?", riversideHall.ID)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.storage.EXPECT().ListCommunities(gomock.Any(), test.filter, page).Return([]*types.Community{riversideHall}, nil)

			if _, err := NewService(m.storage, m.tracer, m.monitor, m.logger).ListCommunities(context.TODO(), test.principal, page); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListOffersAndPlaces(t *testing.T) {
	page := storage.Page{}
	villageSubquery := "sme_id IN (SELECT s.id FROM smes s JOIN communities c ON c.id = s.community_id WHERE c.village_id = ?)"

	tests := []struct {
		name      string
		principal access.Principal
		filter    gomock.Matcher
	}{
		{name: "super admin", principal: superAdmin, filter: whereSQL("1 = 1")},
		{name: "village admin", principal: villageAdmin, filter: whereSQL(villageSubquery, "village-riverside")},
		{name: "community admin", principal: communityAdmin, filter: whereSQL("sme_id IN (SELECT id FROM smes WHERE community_id = ?)", riversideHall.ID)},
		{name: "sme admin", principal: smeAdmin, filter: whereSQL("sme_id = ?", batikShop.ID)},
		{name: "inactive principal", principal: access.VillageAdmin{Identity: access.Identity{ID: "user-9"}, VillageID: "village-riverside"}, filter: whereSQL("1 = 0")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.storage.EXPECT().ListOffers(gomock.Any(), test.filter, page).Return(nil, nil)
			m.storage.EXPECT().ListPlaces(gomock.Any(), test.filter, page).Return(nil, nil)

			s := NewService(m.storage, m.tracer, m.monitor, m.logger)

			if _, err := s.ListOffers(context.TODO(), test.principal, page); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := s.ListPlaces(context.TODO(), test.principal, page); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	dbErr := errors.New("connection reset")
	m.storage.EXPECT().ListPlaces(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := NewService(m.storage, m.tracer, m.monitor, m.logger).ListPlaces(context.TODO(), superAdmin, storage.Page{})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped %v, got %v", dbErr, err)
	}
}
