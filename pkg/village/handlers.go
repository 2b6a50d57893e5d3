// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package village

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/smartvillage/village-gateway/internal/http/types"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/authentication"
)

const maxBodyBytes = 1 << 20

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/villages", a.handleList)
	mux.Post("/villages", a.handleCreate)
	mux.Get("/villages/{id}", a.handleGet)
	mux.Patch("/villages/{id}", a.handleUpdate)
	mux.Put("/villages/{id}/status", a.handleSetStatus)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "village.API.handleList")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	page := httptypes.PageFromRequest(r)

	villages, err := a.service.ListVillages(ctx, principal, storage.Page{Number: page.Page, Size: page.Size})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.write(w, http.StatusOK, villages, &page)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "village.API.handleGet")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	v, err := a.service.GetVillage(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.write(w, http.StatusOK, v, nil)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "village.API.handleCreate")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req CreateVillageRequest
	if err := httptypes.DecodeJSON(r.Body, maxBodyBytes, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	normalizeCreate(&req)

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid village", err.Error())
		return
	}

	v := &types.Village{
		Name:        req.Name,
		Slug:        req.Slug,
		Domain:      req.Domain,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Settings:    types.Settings(req.Settings),
	}

	created, err := a.service.CreateVillage(ctx, principal, v)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.write(w, http.StatusCreated, created, nil)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "village.API.handleUpdate")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req UpdateVillageRequest
	if err := httptypes.DecodeJSON(r.Body, maxBodyBytes, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	clearDomain := normalizeUpdate(&req)

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid village", err.Error())
		return
	}

	v, paths := req.apply(chi.URLParam(r, "id"), clearDomain)
	if len(paths) == 0 {
		a.writeError(w, http.StatusBadRequest, "Nothing to update", "")
		return
	}

	updated, err := a.service.UpdateVillage(ctx, principal, v, paths)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.write(w, http.StatusOK, updated, nil)
}

func (a *API) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "village.API.handleSetStatus")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	var req StatusRequest
	if err := httptypes.DecodeJSON(r.Body, maxBodyBytes, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid status", err.Error())
		return
	}

	updated, err := a.service.SetVillageStatus(ctx, principal, chi.URLParam(r, "id"), *req.IsActive)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.write(w, http.StatusOK, updated, nil)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, "Forbidden", "")
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "Village not found", "")
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeError(w, http.StatusConflict, "Slug or domain already in use", "")
	default:
		a.logger.Errorf("village request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error", "")
	}
}

func (a *API) write(w http.ResponseWriter, status int, data any, page *httptypes.Page) {
	if err := httptypes.WriteData(w, status, data, page); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err, message string) {
	if e := httptypes.WriteError(w, status, err, message); e != nil {
		a.logger.Errorf("failed to encode error response: %v", e)
	}
}

func normalizeCreate(req *CreateVillageRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.Domain = normalizeDomain(req.Domain)
}

// normalizeUpdate reports whether the request explicitly clears the custom domain
func normalizeUpdate(req *UpdateVillageRequest) bool {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	if req.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*req.Slug))
		req.Slug = &slug
	}

	present := req.Domain != nil
	req.Domain = normalizeDomain(req.Domain)

	return present && req.Domain == nil
}

// normalizeDomain lower-cases the host so it matches normalized request hosts,
// nil for a blank value
func normalizeDomain(d *string) *string {
	if d == nil {
		return nil
	}

	host := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(*d)), ".")
	if host == "" {
		return nil
	}

	return &host
}

// apply maps the request onto a village and the list of fields it sets
func (req UpdateVillageRequest) apply(id string, clearDomain bool) (*types.Village, []string) {
	v := &types.Village{ID: id}
	paths := make([]string, 0, 6)

	if req.Name != nil {
		v.Name = *req.Name
		paths = append(paths, "name")
	}

	if req.Slug != nil {
		v.Slug = *req.Slug
		paths = append(paths, "slug")
	}

	if req.Domain != nil || clearDomain {
		v.Domain = req.Domain
		paths = append(paths, "domain")
	}

	if req.Description != nil {
		v.Description = *req.Description
		paths = append(paths, "description")
	}

	if req.IsActive != nil {
		v.IsActive = *req.IsActive
		paths = append(paths, "is_active")
	}

	if req.Settings != nil {
		v.Settings = types.Settings(*req.Settings)
		paths = append(paths, "settings")
	}

	return v, paths
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validator = newValidator()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
