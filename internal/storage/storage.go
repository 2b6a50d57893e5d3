// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartvillage/village-gateway/internal/db"
	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	villageColumns   = []string{"id", "name", "slug", "domain", "description", "is_active", "settings", "created_at", "updated_at"}
	communityColumns = []string{"id", "village_id", "name", "slug", "created_at"}
	smeColumns       = []string{"id", "community_id", "name", "slug", "is_active", "created_at"}
	offerColumns     = []string{"id", "sme_id", "name", "description", "price", "is_active", "created_at"}
	placeColumns     = []string{"id", "sme_id", "name", "address", "latitude", "longitude", "created_at"}
	userColumns      = []string{"id", "name", "email", "password_hash", "role", "is_active", "village_id", "community_id", "sme_id", "created_at"}
)

// Page selects a window of a listing, zero values fall back to the db defaults
type Page struct {
	Number int64
	Size   int64
}

type rowScanner interface {
	Scan(dest ...any) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func paginate(q sq.SelectBuilder, page Page) sq.SelectBuilder {
	size := db.PageSize(page.Size)
	return q.Limit(size).Offset(db.Offset(page.Number, size))
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func scanVillage(row rowScanner) (*types.Village, error) {
	var v types.Village
	err := row.Scan(&v.ID, &v.Name, &v.Slug, &v.Domain, &v.Description, &v.IsActive, &v.Settings, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanCommunity(row rowScanner) (*types.Community, error) {
	var c types.Community
	if err := row.Scan(&c.ID, &c.VillageID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanSME(row rowScanner) (*types.SME, error) {
	var m types.SME
	if err := row.Scan(&m.ID, &m.CommunityID, &m.Name, &m.Slug, &m.IsActive, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanOffer(row rowScanner) (*types.Offer, error) {
	var o types.Offer
	if err := row.Scan(&o.ID, &o.SMEID, &o.Name, &o.Description, &o.Price, &o.IsActive, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanPlace(row rowScanner) (*types.Place, error) {
	var p types.Place
	if err := row.Scan(&p.ID, &p.SMEID, &p.Name, &p.Address, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.VillageID, &u.CommunityID, &u.SMEID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// collect runs a select and scans every row with fn
func collect[T any](ctx context.Context, q sq.SelectBuilder, fn func(rowScanner) (*T, error)) ([]*T, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := fn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return out, nil
}

func (s *Storage) getVillage(ctx context.Context, where sq.Sqlizer) (*types.Village, error) {
	v, err := scanVillage(
		s.db.Statement(ctx).
			Select(villageColumns...).
			From("villages").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get village: %w", err)
	}

	return v, nil
}

func (s *Storage) GetVillageByID(ctx context.Context, id string) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVillageByID")
	defer span.End()

	return s.getVillage(ctx, sq.Eq{"id": id})
}

// GetVillageBySlug returns the village regardless of its active flag
func (s *Storage) GetVillageBySlug(ctx context.Context, slug string) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVillageBySlug")
	defer span.End()

	return s.getVillage(ctx, sq.Eq{"slug": slug})
}

// GetVillageByDomain returns the village regardless of its active flag
func (s *Storage) GetVillageByDomain(ctx context.Context, host string) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVillageByDomain")
	defer span.End()

	return s.getVillage(ctx, sq.Eq{"domain": host})
}

func (s *Storage) ListVillages(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVillages")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(villageColumns...).
		From("villages").
		Where(filter).
		OrderBy("name ASC")

	villages, err := collect(ctx, paginate(q, page), scanVillage)
	if err != nil {
		return nil, fmt.Errorf("failed to list villages: %w", err)
	}

	return villages, nil
}

func (s *Storage) CreateVillage(ctx context.Context, v *types.Village) (*types.Village, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVillage")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate village ID: %w", err)
	}

	settings := v.Settings
	if settings == nil {
		settings = types.Settings{}
	}

	created, err := scanVillage(
		s.db.Statement(ctx).
			Insert("villages").
			Columns("id", "name", "slug", "domain", "description", "is_active", "settings").
			Values(id.String(), v.Name, v.Slug, v.Domain, v.Description, v.IsActive, settings).
			Suffix("RETURNING "+strings.Join(villageColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "village slug or domain already in use")
		}
		return nil, fmt.Errorf("failed to insert village: %w", err)
	}

	return created, nil
}

// UpdateVillage updates the fields named in paths, following PATCH semantics.
// Unknown paths are ignored; an empty set of known paths is a no-op.
func (s *Storage) UpdateVillage(ctx context.Context, v *types.Village, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateVillage")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = v.Name
		case "slug":
			updateMap["slug"] = v.Slug
		case "domain":
			updateMap["domain"] = v.Domain
		case "description":
			updateMap["description"] = v.Description
		case "is_active":
			updateMap["is_active"] = v.IsActive
		case "settings":
			settings := v.Settings
			if settings == nil {
				settings = types.Settings{}
			}
			updateMap["settings"] = settings
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("villages").
		SetMap(updateMap).
		Where(sq.Eq{"id": v.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return WrapDuplicateKeyError(err, "village slug or domain already in use")
		}
		return fmt.Errorf("failed to update village: %w", err)
	}

	return checkAffected(res)
}

func (s *Storage) SetVillageStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetVillageStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("villages").
		Set("is_active", active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set village status: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) GetCommunityByID(ctx context.Context, id string) (*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCommunityByID")
	defer span.End()

	c, err := scanCommunity(
		s.db.Statement(ctx).
			Select(communityColumns...).
			From("communities").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCommunities(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Community, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCommunities")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(communityColumns...).
		From("communities").
		Where(filter).
		OrderBy("name ASC")

	communities, err := collect(ctx, paginate(q, page), scanCommunity)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}

	return communities, nil
}

func (s *Storage) GetSMEByID(ctx context.Context, id string) (*types.SME, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSMEByID")
	defer span.End()

	m, err := scanSME(
		s.db.Statement(ctx).
			Select(smeColumns...).
			From("smes").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sme: %w", err)
	}

	return m, nil
}

func (s *Storage) ListSMEs(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.SME, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSMEs")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(smeColumns...).
		From("smes").
		Where(filter).
		OrderBy("name ASC")

	smes, err := collect(ctx, paginate(q, page), scanSME)
	if err != nil {
		return nil, fmt.Errorf("failed to list smes: %w", err)
	}

	return smes, nil
}

func (s *Storage) ListOffers(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Offer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOffers")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(offerColumns...).
		From("offers").
		Where(filter).
		OrderBy("created_at DESC")

	offers, err := collect(ctx, paginate(q, page), scanOffer)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return offers, nil
}

// ListActiveOffersByVillage lists the public offers of a village, walking offer -> sme -> community
func (s *Storage) ListActiveOffersByVillage(ctx context.Context, villageID string, page Page) ([]*types.Offer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveOffersByVillage")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(prefixed("o", offerColumns)...).
		From("offers o").
		Join("smes s ON s.id = o.sme_id").
		Join("communities c ON c.id = s.community_id").
		Where(sq.Eq{
			"c.village_id": villageID,
			"o.is_active":  true,
			"s.is_active":  true,
		}).
		OrderBy("o.created_at DESC")

	offers, err := collect(ctx, paginate(q, page), scanOffer)
	if err != nil {
		return nil, fmt.Errorf("failed to list village offers: %w", err)
	}

	return offers, nil
}

func (s *Storage) ListPlaces(ctx context.Context, filter sq.Sqlizer, page Page) ([]*types.Place, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlaces")
	defer span.End()

	q := s.db.Statement(ctx).
		Select(placeColumns...).
		From("places").
		Where(filter).
		OrderBy("name ASC")

	places, err := collect(ctx, paginate(q, page), scanPlace)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	return places, nil
}

func (s *Storage) getUser(ctx context.Context, where sq.Sqlizer) (*types.User, error) {
	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "name", "email", "password_hash", "role", "is_active", "village_id", "community_id", "sme_id").
			Values(id.String(), u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, string(u.Role), u.IsActive, u.VillageID, u.CommunityID, u.SMEID).
			Suffix("RETURNING "+strings.Join(userColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "user email already in use")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "user scope references an unknown entity")
		}
		if IsCheckViolation(err) {
			return nil, fmt.Errorf("user %s with role %s: %w", u.Email, u.Role, ErrInvalidScope)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}
