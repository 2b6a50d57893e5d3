// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package village

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// a slug doubles as a DNS label under the base domain
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return v
}

type CreateVillageRequest struct {
	Name        string         `json:"name" validate:"required,max=255"`
	Slug        string         `json:"slug" validate:"required,max=63,slug"`
	Domain      *string        `json:"domain" validate:"omitempty,fqdn,max=253"`
	Description string         `json:"description" validate:"max=5000"`
	IsActive    *bool          `json:"is_active"`
	Settings    map[string]any `json:"settings"`
}

type UpdateVillageRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string         `json:"slug" validate:"omitempty,max=63,slug"`
	Domain      *string         `json:"domain" validate:"omitempty,fqdn,max=253"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	IsActive    *bool           `json:"is_active"`
	Settings    *map[string]any `json:"settings"`
}

type StatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
