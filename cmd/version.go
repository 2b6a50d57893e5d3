// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartvillage/village-gateway/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gateway version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "village-gateway %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
