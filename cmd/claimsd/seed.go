package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/fixture"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/postgres"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/yamlfile"
)

func (a *app) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the claims table with the built-in or a YAML data set",
		Long: `Seed writes claims into PostgreSQL so that --source=postgres has data.
Without --from the built-in mock claims are used. The table is replaced in a
single transaction.`,
		RunE: a.runSeed,
	}

	cmd.Flags().String("from", "", "YAML claims file to seed from")

	return cmd
}

func (a *app) runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var loader port.ClaimLoader = fixture.NewLoader()
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		loader = yamlfile.NewLoader(from)
	}

	claims, err := loader.LoadClaims(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seed claims: %w", err)
	}

	pool, err := a.openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.NewClaimSeeder(pool).ReplaceClaims(ctx, claims); err != nil {
		return fmt.Errorf("failed to seed claims: %w", err)
	}

	a.logger.Info("claims seeded", slog.Int("claims", len(claims)))
	return nil
}
