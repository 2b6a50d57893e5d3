// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/smartvillage/village-gateway/migrations"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long: `Apply or inspect the village schema migrations.

Without arguments all pending migrations are applied. "down" rolls back the
latest migration, or every migration above the given version.`,
	Args: validateMigrateArgs,
	RunE: runMigrate,
}

func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%q takes no version", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("unknown migrate command: %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	target := int64(-1)
	if len(args) > 1 {
		target, _ = strconv.ParseInt(args[1], 10, 64)
	}

	format, _ := cmd.Flags().GetString("format")
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown output format %q", format)
	}

	if dsn == "" {
		return errors.New("no database configured, set --dsn or DSN")
	}

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == formatJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	m := migrator{provider: provider, json: format == formatJSON, out: cmd.OutOrStdout()}

	switch command {
	case "down":
		return m.down(cmd.Context(), target)
	case "status":
		return m.status(cmd.Context())
	case "check":
		return m.check(cmd.Context())
	default:
		return m.up(cmd.Context())
	}
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return db, nil
}

type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func (m migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	return m.report(results)
}

func (m migrator) down(ctx context.Context, target int64) error {
	if target < 0 {
		result, err := m.provider.Down(ctx)
		if err != nil {
			return err
		}
		return m.report([]*goose.MigrationResult{result})
	}

	results, err := m.provider.DownTo(ctx, target)
	if err != nil {
		return err
	}

	return m.report(results)
}

func (m migrator) report(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}

	return nil
}

func (m migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}

	return w.Flush()
}

// check fails when migrations are pending, so it can gate a rollout
func (m migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get the database version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if m.json {
		if err := json.NewEncoder(m.out).Encode(map[string]any{"status": state, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}

func init() {
	migrateCmd.Flags().StringP("format", "f", formatText, "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}
