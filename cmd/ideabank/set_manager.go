package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ideabank-backend/internal/adapter/postgres/member"
	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var (
	managerOfficeID int64
	managerEmail    string
)

// setManagerCmd makes a member the manager of an office. It is used to
// bootstrap offices, since office registration lives outside this service.
var setManagerCmd = &cobra.Command{
	Use:   "set-manager",
	Short: "Make a member the manager of an office",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if managerOfficeID <= 0 || managerEmail == "" {
			return errors.New("--office and --email are required")
		}

		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			repo := member.New(pool)

			m, err := repo.GetByEmail(ctx, managerEmail)
			if err != nil {
				return fmt.Errorf("find member: %w", err)
			}

			office, err := repo.SetOfficeManager(ctx, managerOfficeID, m.ID)
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				return fmt.Errorf("member %q already manages another office", managerEmail)
			case err != nil:
				return fmt.Errorf("set manager: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Member %q now manages office %q.\n", managerEmail, office.Name)
			return nil
		})
	},
}

func init() {
	setManagerCmd.Flags().Int64Var(&managerOfficeID, "office", 0, "office id")
	setManagerCmd.Flags().StringVar(&managerEmail, "email", "", "email of the member to make manager")
}
