// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleVillageAdmin   Role = "village_admin"
	RoleCommunityAdmin Role = "community_admin"
	RoleSMEAdmin       Role = "sme_admin"
)

// Village is the unit of multi-tenancy, addressable by subdomain slug or custom domain
type Village struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Domain      *string   `db:"domain" json:"domain,omitempty"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	Settings    Settings  `db:"settings" json:"settings"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CustomDomain returns the custom hostname, empty when the village has none
func (v *Village) CustomDomain() string {
	if v == nil || v.Domain == nil {
		return ""
	}
	return *v.Domain
}

type Community struct {
	ID        string    `db:"id" json:"id"`
	VillageID string    `db:"village_id" json:"village_id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type SME struct {
	ID          string    `db:"id" json:"id"`
	CommunityID string    `db:"community_id" json:"community_id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Offer struct {
	ID          string    `db:"id" json:"id"`
	SMEID       string    `db:"sme_id" json:"sme_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Place struct {
	ID        string    `db:"id" json:"id"`
	SMEID     string    `db:"sme_id" json:"sme_id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Latitude  *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64  `db:"longitude" json:"longitude,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// User is the persisted admin account, scope references are populated according to Role
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	VillageID    *string   `db:"village_id" json:"village_id,omitempty"`
	CommunityID  *string   `db:"community_id" json:"community_id,omitempty"`
	SMEID        *string   `db:"sme_id" json:"sme_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
