// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/domain"
)

const villageNotAccessible = "Village is not accessible"

// Profile is the public view of a village
type Profile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Domain      string         `json:"domain,omitempty"`
	Description string         `json:"description"`
	Settings    types.Settings `json:"settings"`
}

// API serves the public content of the village resolved from the request host.
// Routes are expected behind the village access gate, which rejects inactive
// villages and maintenance mode before they are reached.
type API struct {
	offers OfferReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/", a.handleProfile)
	mux.Get("/offers", a.handleOffers)
}

func (a *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "content.API.handleProfile")
	defer span.End()

	v := domain.VillageFromContext(r.Context())
	if v == nil {
		a.writeError(w, http.StatusForbidden, villageNotAccessible)
		return
	}

	profile := Profile{
		ID:          v.ID,
		Name:        v.Name,
		Slug:        v.Slug,
		Domain:      v.CustomDomain(),
		Description: v.Description,
		Settings:    v.Settings,
	}

	if err := httptypes.WriteData(w, http.StatusOK, profile, nil); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) handleOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "content.API.handleOffers")
	defer span.End()

	v := domain.VillageFromContext(ctx)
	if v == nil {
		a.writeError(w, http.StatusForbidden, villageNotAccessible)
		return
	}

	page := httptypes.PageFromRequest(r)

	offers, err := a.offers.ListActiveOffersByVillage(ctx, v.ID, storage.Page{Number: page.Page, Size: page.Size})
	if err != nil {
		a.logger.Errorf("failed to list offers of village %s: %v", v.ID, err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if offers == nil {
		offers = []*types.Offer{}
	}

	if err := httptypes.WriteData(w, http.StatusOK, offers, &page); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err string) {
	if e := httptypes.WriteError(w, status, err, ""); e != nil {
		a.logger.Errorf("failed to encode error response: %v", e)
	}
}

func NewAPI(offers OfferReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.offers = offers

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
