// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/authentication"
)

func TestAPI_Listings(t *testing.T) {
	tests := []struct {
		name               string
		path               string
		authenticated      bool
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
		expectedItems      int
	}{
		{
			name:          "communities",
			path:          "/communities?page=1&size=2",
			authenticated: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCommunities(gomock.Any(), smeAdmin, storage.Page{Number: 1, Size: 2}).Return([]*types.Community{riversideHall}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedItems:      1,
		},
		{
			name:          "smes",
			path:          "/smes",
			authenticated: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListSMEs(gomock.Any(), smeAdmin, storage.Page{}).Return([]*types.SME{batikShop}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedItems:      1,
		},
		{
			name:          "offers",
			path:          "/offers",
			authenticated: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListOffers(gomock.Any(), smeAdmin, storage.Page{}).Return([]*types.Offer{{ID: "o1"}, {ID: "o2"}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedItems:      2,
		},
		{
			name:          "places failing",
			path:          "/places",
			authenticated: true,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListPlaces(gomock.Any(), smeAdmin, storage.Page{}).Return(nil, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "anonymous",
			path:               "/places",
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			router := chi.NewMux()
			NewAPI(service, m.tracer, m.monitor, m.logger).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.authenticated {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), smeAdmin))
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != test.expectedStatusCode {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatusCode, w.Code, w.Body.String())
			}

			if test.expectedStatusCode != http.StatusOK {
				return
			}

			var resp struct {
				Data []json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(resp.Data) != test.expectedItems {
				t.Errorf("expected %d items, got %d", test.expectedItems, len(resp.Data))
			}
		})
	}
}
