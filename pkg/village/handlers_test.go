// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package village

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/access"
	"github.com/smartvillage/village-gateway/pkg/authentication"
)

func newTestRouter(service ServiceInterface, m *mocks) *chi.Mux {
	router := chi.NewMux()
	NewAPI(service, m.tracer, m.monitor, m.logger).RegisterEndpoints(router)
	return router
}

func newRequest(method, target, body string, p access.Principal) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if p != nil {
		req = req.WithContext(authentication.WithPrincipal(req.Context(), p))
	}
	return req
}

func TestAPI_ListVillages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	service := NewMockServiceInterface(ctrl)

	service.EXPECT().ListVillages(gomock.Any(), superAdmin, storage.Page{Number: 2, Size: 5}).Return([]*types.Village{riverside}, nil)

	w := httptest.NewRecorder()
	newTestRouter(service, m).ServeHTTP(w, newRequest(http.MethodGet, "/villages?page=2&size=5", "", superAdmin))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp struct {
		Data   []types.Village `json:"data"`
		Status int             `json:"status"`
		Meta   httptypes.Page  `json:"_meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 1 || resp.Data[0].Slug != riverside.Slug {
		t.Errorf("unexpected villages %+v", resp.Data)
	}

	if resp.Meta.Page != 2 || resp.Meta.Size != 5 {
		t.Errorf("unexpected page %+v", resp.Meta)
	}
}

func TestAPI_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	router := newTestRouter(NewMockServiceInterface(ctrl), m)

	for _, req := range []*http.Request{
		newRequest(http.MethodGet, "/villages", "", nil),
		newRequest(http.MethodGet, "/villages/village-riverside", "", nil),
		newRequest(http.MethodPost, "/villages", `{"name":"x","slug":"x"}`, nil),
		newRequest(http.MethodPatch, "/villages/village-riverside", `{"name":"x"}`, nil),
		newRequest(http.MethodPut, "/villages/village-riverside/status", `{"is_active":false}`, nil),
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status %d, got %d", req.Method, req.URL.Path, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAPI_GetVillage(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{name: "found", expectedStatusCode: http.StatusOK},
		{name: "out of scope", err: ErrForbidden, expectedStatusCode: http.StatusForbidden},
		{name: "missing", err: storage.ErrNotFound, expectedStatusCode: http.StatusNotFound},
		{name: "database down", err: errors.New("connection refused"), expectedStatusCode: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			service := NewMockServiceInterface(ctrl)

			var v *types.Village
			if test.err == nil {
				v = riverside
			}
			service.EXPECT().GetVillage(gomock.Any(), riversideAdmin, riverside.ID).Return(v, test.err)

			w := httptest.NewRecorder()
			newTestRouter(service, m).ServeHTTP(w, newRequest(http.MethodGet, "/villages/"+riverside.ID, "", riversideAdmin))

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status %d, got %d", test.expectedStatusCode, w.Code)
			}
		})
	}
}

func TestAPI_CreateVillage(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name: "valid village",
			body: `{"name":" Riverside ","slug":"Riverside","domain":"Desa-Riverside.ID.","description":"By the river"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateVillage(gomock.Any(), superAdmin, gomock.Any()).DoAndReturn(
					func(_ any, _ access.Principal, v *types.Village) (*types.Village, error) {
						if v.Name != "Riverside" || v.Slug != "riverside" || v.CustomDomain() != "desa-riverside.id" {
							t.Errorf("request was not normalized: %+v", v)
						}
						if !v.IsActive {
							t.Error("expected new villages to default to active")
						}
						return riverside, nil
					},
				)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "slug with spaces",
			body:               `{"name":"Riverside","slug":"river side"}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "slug with leading hyphen",
			body:               `{"name":"Riverside","slug":"-river"}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid domain",
			body:               `{"name":"Riverside","slug":"riverside","domain":"not a domain"}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing name",
			body:               `{"slug":"riverside"}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown field",
			body:               `{"name":"Riverside","slug":"riverside","owner":"me"}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "slug taken",
			body: `{"name":"Riverside","slug":"riverside"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateVillage(gomock.Any(), superAdmin, gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name: "not a super admin",
			body: `{"name":"Riverside","slug":"riverside"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateVillage(gomock.Any(), superAdmin, gomock.Any()).Return(nil, ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			w := httptest.NewRecorder()
			newTestRouter(service, m).ServeHTTP(w, newRequest(http.MethodPost, "/villages", test.body, superAdmin))

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatusCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_UpdateVillage(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		expectedPaths      []string
		expectedDomain     *string
		expectedStatusCode int
	}{
		{
			name:               "single field",
			body:               `{"description":"New text"}`,
			expectedPaths:      []string{"description"},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "several fields",
			body:               `{"name":"Riverside","slug":"river","settings":{"maintenance_mode":true}}`,
			expectedPaths:      []string{"name", "slug", "settings"},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "empty domain clears it",
			body:               `{"domain":""}`,
			expectedPaths:      []string{"domain"},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "nothing to update",
			body:               `{}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "blank name",
			body:               `{"name":"  "}`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			service := NewMockServiceInterface(ctrl)

			if test.expectedPaths != nil {
				service.EXPECT().UpdateVillage(gomock.Any(), riversideAdmin, gomock.Any(), test.expectedPaths).DoAndReturn(
					func(_ any, _ access.Principal, v *types.Village, _ []string) (*types.Village, error) {
						if v.ID != riverside.ID {
							t.Errorf("expected village %s, got %s", riverside.ID, v.ID)
						}
						if v.Domain != nil {
							t.Errorf("expected no domain, got %s", *v.Domain)
						}
						return riverside, nil
					},
				)
			}

			w := httptest.NewRecorder()
			newTestRouter(service, m).ServeHTTP(w, newRequest(http.MethodPatch, "/villages/"+riverside.ID, test.body, riversideAdmin))

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatusCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_SetVillageStatus(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name: "deactivate",
			body: `{"is_active":false}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SetVillageStatus(gomock.Any(), superAdmin, riverside.ID, false).Return(&types.Village{ID: riverside.ID}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "missing flag",
			body:               `{}`,
			setupMocks:         func(*MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown village",
			body: `{"is_active":true}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SetVillageStatus(gomock.Any(), superAdmin, riverside.ID, true).Return(nil, storage.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			w := httptest.NewRecorder()
			newTestRouter(service, m).ServeHTTP(w, newRequest(http.MethodPut, "/villages/"+riverside.ID+"/status", test.body, superAdmin))

			if w.Code != test.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatusCode, w.Code, w.Body.String())
			}
		})
	}
}
