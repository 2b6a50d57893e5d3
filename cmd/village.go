// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smartvillage/village-gateway/internal/storage"
	"github.com/smartvillage/village-gateway/internal/types"
)

var villageCmd = &cobra.Command{
	Use:   "village",
	Short: "Manage villages",
}

var createVillageCmd = &cobra.Command{
	Use:   "create [name] [slug]",
	Short: "Create a new village",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, closeFn, err := openVillageService()
		if err != nil {
			return err
		}
		defer closeFn()

		domainName, _ := cmd.Flags().GetString("domain")
		description, _ := cmd.Flags().GetString("description")

		v := &types.Village{
			Name:        strings.TrimSpace(args[0]),
			Slug:        strings.ToLower(strings.TrimSpace(args[1])),
			Description: description,
			IsActive:    true,
		}

		if d := strings.ToLower(strings.TrimSpace(domainName)); d != "" {
			v.Domain = &d
		}

		created, err := service.CreateVillage(cmd.Context(), operator, v)
		if err != nil {
			return fmt.Errorf("failed to create village: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Village created: %s (ID: %s)\n", created.Name, created.ID)
		return nil
	},
}

var listVillagesCmd = &cobra.Command{
	Use:   "list",
	Short: "List villages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, closeFn, err := openVillageService()
		if err != nil {
			return err
		}
		defer closeFn()

		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		villages, err := service.ListVillages(cmd.Context(), operator, storage.Page{Number: page, Size: size})
		if err != nil {
			return fmt.Errorf("failed to list villages: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tDOMAIN\tACTIVE")
		for _, v := range villages {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", v.ID, v.Name, v.Slug, v.CustomDomain(), v.IsActive)
		}
		return w.Flush()
	},
}

func villageStatusCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeFn, err := openVillageService()
			if err != nil {
				return err
			}
			defer closeFn()

			v, err := service.SetVillageStatus(cmd.Context(), operator, args[0], active)
			if err != nil {
				return fmt.Errorf("failed to %s village: %w", use, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Village %s: %s\n", use+"d", v.ID)
			return nil
		},
	}
}

func init() {
	createVillageCmd.Flags().String("domain", "", "Custom domain of the village")
	createVillageCmd.Flags().String("description", "", "Village description")

	listVillagesCmd.Flags().Int64("page", 1, "Page number")
	listVillagesCmd.Flags().Int64("size", 100, "Page size")

	villageCmd.AddCommand(createVillageCmd)
	villageCmd.AddCommand(listVillagesCmd)
	villageCmd.AddCommand(villageStatusCmd("activate", "Activate a village", true))
	villageCmd.AddCommand(villageStatusCmd("deactivate", "Deactivate a village, its domains stop resolving", false))

	rootCmd.AddCommand(villageCmd)
}
