package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ideabank-backend/internal/auth"
	"github.com/heartmarshall/ideabank-backend/internal/config"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var (
	tokenUserID int64
	tokenRole   string
)

// tokenCmd mints an access token the way the external login service does.
// It exists for local development and smoke tests.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for local testing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if tokenUserID <= 0 {
			return errors.New("--user-id must be positive")
		}
		role := domain.Role(tokenRole)
		if !role.IsValid() {
			return fmt.Errorf("--role must be one of SYS_ADMIN, ADMIN, MANAGER, STAFF (got %q)", tokenRole)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		tok, err := mgr.GenerateAccessToken(tokenUserID, role.ID())
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Int64Var(&tokenUserID, "user-id", 0, "subject member id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(domain.RoleStaff), "role name")
}
