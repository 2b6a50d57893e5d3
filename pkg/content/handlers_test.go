// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/domain"
	"github.com/smartvillage/village-gateway/pkg/gate"
)

var riverside = &types.Village{
	ID:          "village-riverside",
	Name:        "Riverside",
	Slug:        "riverside",
	Description: "By the river",
	IsActive:    true,
	Settings:    types.Settings{"theme": "green"},
}

func passthroughSpan(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

type mocks struct {
	offers   *MockOfferReaderInterface
	resolver *gate.MockResolverInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		offers:   NewMockOfferReaderInterface(ctrl),
		resolver: gate.NewMockResolverInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(passthroughSpan).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return m
}

// router mounts the content routes the way the server does, behind the village gate
func (m *mocks) router(ctrl *gomock.Controller) *chi.Mux {
	g := gate.NewMiddleware(m.resolver, gate.NewMockSessionTerminatorInterface(ctrl), "/admin/login", "/admin/village/login", m.tracer, m.monitor, m.logger)

	router := chi.NewMux()
	router.Route("/api/village", func(r chi.Router) {
		r.Use(g.VillageAccess())
		NewAPI(m.offers, m.tracer, m.monitor, m.logger).RegisterEndpoints(r)
	})

	return router
}

func TestAPI_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.resolver.EXPECT().Resolve(gomock.Any(), "riverside.example.org").Return(domain.Result{Kind: domain.Subdomain, Village: riverside})

	req := httptest.NewRequest(http.MethodGet, "http://riverside.example.org/api/village", nil)
	w := httptest.NewRecorder()
	m.router(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp struct {
		Data Profile `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Data.Slug != "riverside" || resp.Data.Name != "Riverside" || resp.Data.Settings["theme"] != "green" {
		t.Errorf("unexpected profile %+v", resp.Data)
	}
}

func TestAPI_Offers(t *testing.T) {
	tests := []struct {
		name               string
		result             domain.Result
		setupMocks         func(*mocks)
		expectedStatusCode int
		expectedOffers     int
	}{
		{
			name:   "active village",
			result: domain.Result{Kind: domain.CustomDomain, Village: riverside},
			setupMocks: func(m *mocks) {
				m.offers.EXPECT().ListActiveOffersByVillage(gomock.Any(), riverside.ID, storage.Page{Number: 1, Size: 10}).
					Return([]*types.Offer{{ID: "offer-1", IsActive: true}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedOffers:     1,
		},
		{
			name:   "no offers renders an empty list",
			result: domain.Result{Kind: domain.CustomDomain, Village: riverside},
			setupMocks: func(m *mocks) {
				m.offers.EXPECT().ListActiveOffersByVillage(gomock.Any(), riverside.ID, gomock.Any()).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "unresolved host",
			result:             domain.Result{Kind: domain.Subdomain},
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "main domain has no village content",
			result:             domain.Result{Kind: domain.Main},
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name: "maintenance",
			result: domain.Result{Kind: domain.Subdomain, Village: &types.Village{
				ID: "village-closed", IsActive: true, Settings: types.Settings{"maintenance_mode": true},
			}},
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:   "storage failure",
			result: domain.Result{Kind: domain.Subdomain, Village: riverside},
			setupMocks: func(m *mocks) {
				m.offers.EXPECT().ListActiveOffersByVillage(gomock.Any(), riverside.ID, gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(test.result)
			test.setupMocks(m)

			req := httptest.NewRequest(http.MethodGet, "http://riverside.example.org/api/village/offers?page=1&size=10", nil)
			w := httptest.NewRecorder()
			m.router(ctrl).ServeHTTP(w, req)

			if w.Code != test.expectedStatusCode {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatusCode, w.Code, w.Body.String())
			}

			if w.Code != http.StatusOK {
				return
			}

			var resp struct {
				Data []types.Offer `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Data == nil || len(resp.Data) != test.expectedOffers {
				t.Errorf("expected %d offers, got %v", test.expectedOffers, resp.Data)
			}
		})
	}
}

func TestAPI_WithoutGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)

	router := chi.NewMux()
	NewAPI(m.offers, m.tracer, m.monitor, m.logger).RegisterEndpoints(router)

	for _, path := range []string{"/", "/offers"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusForbidden {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusForbidden, w.Code)
		}
	}
}
