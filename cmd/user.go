// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartvillage/village-gateway/internal/types"
	"github.com/smartvillage/village-gateway/pkg/authentication"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin users",
}

var createUserCmd = &cobra.Command{
	Use:   "create [email] [role]",
	Short: "Create an admin user, the password is read from stdin",
	Long: `Create an admin user. Role is one of super_admin, village_admin,
community_admin or sme_admin; scoped roles need the matching --village,
--community or --sme flag. The password is read from the first line of stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := &types.User{
			Email:    strings.ToLower(strings.TrimSpace(args[0])),
			Role:     types.Role(args[1]),
			IsActive: true,
		}
		u.Name, _ = cmd.Flags().GetString("name")

		if err := scopeUser(cmd, u); err != nil {
			return err
		}

		password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}

		hash, err := authentication.HashPassword(strings.TrimRight(password, "\r\n"))
		if err != nil {
			return err
		}
		u.PasswordHash = hash

		s, closeFn, err := openStorage()
		if err != nil {
			return err
		}
		defer closeFn()

		created, err := s.CreateUser(cmd.Context(), u)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User created: %s (ID: %s, role: %s)\n", created.Email, created.ID, created.Role)
		return nil
	},
}

// scopeUser sets the single ownership link the role requires
func scopeUser(cmd *cobra.Command, u *types.User) error {
	flag := map[types.Role]string{
		types.RoleVillageAdmin:   "village",
		types.RoleCommunityAdmin: "community",
		types.RoleSMEAdmin:       "sme",
	}

	if u.Role == types.RoleSuperAdmin {
		return nil
	}

	name, ok := flag[u.Role]
	if !ok {
		return fmt.Errorf("unknown role %q", u.Role)
	}

	id, _ := cmd.Flags().GetString(name)
	if id == "" {
		return fmt.Errorf("role %s requires --%s", u.Role, name)
	}

	switch u.Role {
	case types.RoleVillageAdmin:
		u.VillageID = &id
	case types.RoleCommunityAdmin:
		u.CommunityID = &id
	case types.RoleSMEAdmin:
		u.SMEID = &id
	}

	return nil
}

func init() {
	createUserCmd.Flags().String("name", "", "Display name")
	createUserCmd.Flags().String("village", "", "Village ID, for village_admin")
	createUserCmd.Flags().String("community", "", "Community ID, for community_admin")
	createUserCmd.Flags().String("sme", "", "SME ID, for sme_admin")

	userCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(userCmd)
}
