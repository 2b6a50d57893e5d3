// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartvillage/village-gateway/internal/logging"
	"github.com/smartvillage/village-gateway/internal/monitoring"
	"github.com/smartvillage/village-gateway/internal/tracing"
	"github.com/smartvillage/village-gateway/internal/types"
)

type sqlmockClient struct {
	db *sql.DB
}

func (c *sqlmockClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.db)
}

func (c *sqlmockClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlmockClient) Close() {
	_ = c.db.Close()
}

func setupStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	s := NewStorage(
		&sqlmockClient{db: conn},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)

	return s, mock
}

func villageRows() *sqlmock.Rows {
	return sqlmock.NewRows(villageColumns)
}

func TestStorage_GetVillageBySlug(t *testing.T) {
	now := time.Now()
	query := regexp.QuoteMeta("SELECT id, name, slug, domain, description, is_active, settings, created_at, updated_at FROM villages WHERE slug = $1")

	tests := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
		validate    func(*testing.T, *types.Village)
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("riverside").
					WillReturnRows(villageRows().AddRow("v-1", "Riverside", "riverside", nil, "", true, []byte(`{"maintenance_mode":true}`), now, now))
			},
			validate: func(t *testing.T, v *types.Village) {
				if v.ID != "v-1" || v.Slug != "riverside" {
					t.Errorf("unexpected village %+v", v)
				}
				if v.Domain != nil {
					t.Errorf("expected nil domain, got %q", *v.Domain)
				}
				if !v.Settings.MaintenanceMode() {
					t.Error("expected settings to be decoded")
				}
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("riverside").WillReturnRows(villageRows())
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("riverside").WillReturnError(errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupStorage(t)
			tt.setup(mock)

			v, err := s.GetVillageBySlug(context.Background(), "riverside")

			switch {
			case tt.expectedErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.expectedErr == ErrNotFound && !errors.Is(err, ErrNotFound):
				t.Fatalf("expected ErrNotFound, got %v", err)
			case tt.expectedErr != nil && tt.expectedErr != ErrNotFound && (err == nil || errors.Is(err, ErrNotFound)):
				t.Fatalf("expected a storage error, got %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, v)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_GetVillageByDomain(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM villages WHERE domain = $1")).
		WithArgs("riverside.org").
		WillReturnRows(villageRows().AddRow("v-1", "Riverside", "riverside", "riverside.org", "", false, []byte(`{}`), now, now))

	v, err := s.GetVillageByDomain(context.Background(), "riverside.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.CustomDomain() != "riverside.org" {
		t.Errorf("expected domain riverside.org, got %q", v.CustomDomain())
	}

	if v.IsActive {
		t.Error("storage must not filter on the active flag")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListVillages(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM villages WHERE id = $1 ORDER BY name ASC LIMIT 20 OFFSET 20")).
		WithArgs("v-1").
		WillReturnRows(villageRows().AddRow("v-1", "Riverside", "riverside", nil, "", true, []byte(`{}`), now, now))

	villages, err := s.ListVillages(context.Background(), sq.Eq{"id": "v-1"}, Page{Number: 2, Size: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(villages) != 1 || villages[0].ID != "v-1" {
		t.Errorf("unexpected villages %+v", villages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListVillagesEmptyScope(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM villages WHERE 1 = 0 ORDER BY name ASC LIMIT 100 OFFSET 0")).
		WillReturnRows(villageRows())

	villages, err := s.ListVillages(context.Background(), sq.Expr("1 = 0"), Page{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if villages == nil || len(villages) != 0 {
		t.Errorf("expected an empty, non-nil slice, got %v", villages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_CreateVillageDuplicate(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO villages (id,name,slug,domain,description,is_active,settings)")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := s.CreateVillage(context.Background(), &types.Village{Name: "Riverside", Slug: "riverside", IsActive: true})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_UpdateVillage(t *testing.T) {
	tests := []struct {
		name        string
		paths       []string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name:  "updates only requested fields",
			paths: []string{"name", "unknown"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE villages SET name = $1, updated_at = NOW() WHERE id = $2")).
					WithArgs("Riverside East", "v-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "no known paths is a no-op",
			paths: []string{"unknown"},
			setup: func(sqlmock.Sqlmock) {},
		},
		{
			name:  "missing village",
			paths: []string{"name"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE villages SET name = $1")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: ErrNotFound,
		},
		{
			name:  "duplicate slug",
			paths: []string{"slug"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE villages SET slug = $1")).
					WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
			},
			expectedErr: ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupStorage(t)
			tt.setup(mock)

			err := s.UpdateVillage(context.Background(), &types.Village{ID: "v-1", Name: "Riverside East", Slug: "riverside-east"}, tt.paths)

			if tt.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_SetVillageStatus(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE villages SET is_active = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(false, "v-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.SetVillageStatus(context.Background(), "v-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListActiveOffersByVillage(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM offers o JOIN smes s ON s.id = o.sme_id JOIN communities c ON c.id = s.community_id WHERE c.village_id = $1 AND o.is_active = $2 AND s.is_active = $3",
	)).
		WithArgs("v-1", true, true).
		WillReturnRows(sqlmock.NewRows(offerColumns).AddRow("o-1", "sme-1", "Honey", "Local honey", 4.5, true, now))

	offers, err := s.ListActiveOffersByVillage(context.Background(), "v-1", Page{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(offers) != 1 || offers[0].Name != "Honey" {
		t.Errorf("unexpected offers %+v", offers)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetCommunityByID(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, village_id, name, slug, created_at FROM communities WHERE id = $1")).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows(communityColumns))

	if _, err := s.GetCommunityByID(context.Background(), "c-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetUserByEmail(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("admin@example.org").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u-1", "Admin", "admin@example.org", "hash", "village_admin", true, "v-1", nil, nil, now))

	u, err := s.GetUserByEmail(context.Background(), "  Admin@Example.org ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Role != types.RoleVillageAdmin {
		t.Errorf("expected role %q, got %q", types.RoleVillageAdmin, u.Role)
	}
	if u.VillageID == nil || *u.VillageID != "v-1" {
		t.Errorf("expected village scope v-1, got %v", u.VillageID)
	}
	if u.CommunityID != nil || u.SMEID != nil {
		t.Error("expected no community or sme scope")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_CreateUserErrors(t *testing.T) {
	villageID := "v-missing"

	tests := []struct {
		name        string
		code        string
		expectedErr error
	}{
		{name: "email taken", code: pgUniqueViolation, expectedErr: ErrDuplicateKey},
		{name: "unknown village", code: pgForeignKeyViolation, expectedErr: ErrForeignKeyViolation},
		{name: "role without its link", code: pgCheckViolation, expectedErr: ErrInvalidScope},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := setupStorage(t)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WillReturnError(&pgconn.PgError{Code: test.code})

			_, err := s.CreateUser(context.Background(), &types.User{
				Email:     "siti@example.org",
				Role:      types.RoleVillageAdmin,
				IsActive:  true,
				VillageID: &villageID,
			})
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
