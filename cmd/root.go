// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dsn           string
	redisAddr     string
	redisPassword string
	redisDB       int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "village-gateway",
	Short: "Smart Village Gateway",
	Long:  `Smart Village Gateway resolves village domains and guards the admin panels and content API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", os.Getenv("REDIS_ADDR"), "Redis address of the shared village cache, defaults to $REDIS_ADDR")
	rootCmd.PersistentFlags().StringVar(&redisPassword, "redis-password", os.Getenv("REDIS_PASSWORD"), "Redis password")
	rootCmd.PersistentFlags().IntVar(&redisDB, "redis-db", 0, "Redis database number")
}
