// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/pkg/access"
	"github.com/smartvillage/village-gateway/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/communities", a.list("catalog.API.handleListCommunities", func(ctx context.Context, p access.Principal, page storage.Page) (any, error) {
		return a.service.ListCommunities(ctx, p, page)
	}))
	mux.Get("/smes", a.list("catalog.API.handleListSMEs", func(ctx context.Context, p access.Principal, page storage.Page) (any, error) {
		return a.service.ListSMEs(ctx, p, page)
	}))
	mux.Get("/offers", a.list("catalog.API.handleListOffers", func(ctx context.Context, p access.Principal, page storage.Page) (any, error) {
		return a.service.ListOffers(ctx, p, page)
	}))
	mux.Get("/places", a.list("catalog.API.handleListPlaces", func(ctx context.Context, p access.Principal, page storage.Page) (any, error) {
		return a.service.ListPlaces(ctx, p, page)
	}))
}

type lister func(context.Context, access.Principal, storage.Page) (any, error)

func (a *API) list(spanName string, fetch lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), spanName)
		defer span.End()

		principal, ok := authentication.PrincipalFromContext(ctx)
		if !ok {
			a.writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		page := httptypes.PageFromRequest(r)

		items, err := fetch(ctx, principal, storage.Page{Number: page.Page, Size: page.Size})
		if err != nil {
			a.logger.Errorf("%s: %v", spanName, err)
			a.writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := httptypes.WriteData(w, http.StatusOK, items, &page); err != nil {
			a.logger.Errorf("failed to encode response: %v", err)
		}
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err string) {
	if e := httptypes.WriteError(w, status, err, ""); e != nil {
		a.logger.Errorf("failed to encode error response: %v", e)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
