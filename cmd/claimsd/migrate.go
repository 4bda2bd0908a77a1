package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bibbank/claims-dashboard/internal/infrastructure/postgres"
)

func (a *app) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the claims database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			a.logger.Info("running migrations up")
			if err := postgres.RunMigrations(a.cfg.DatabaseURL); err != nil {
				return fmt.Errorf("failed to migrate up: %w", err)
			}
			a.logger.Info("migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			a.logger.Warn("rolling back all migrations", slog.String("database", "claims"))
			if err := postgres.RunMigrationsDown(a.cfg.DatabaseURL); err != nil {
				return fmt.Errorf("failed to migrate down: %w", err)
			}
			a.logger.Info("migrations rolled back")
			return nil
		},
	})

	return cmd
}
