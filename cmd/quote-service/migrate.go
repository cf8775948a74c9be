package main

import (
	"quoteintake/pkg/storage/postgres"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			if err = postgres.ApplyMigrations(cmd.Context(), cfg.Postgres.DSN()); err != nil {
				log.Errorw("migration failed", "error", err)
				return err
			}

			log.Infow("database is up to date", "database", cfg.Postgres.Name)
			return nil
		},
	}
}
