package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashcards/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			out := cmd.OutOrStdout()
			for _, version := range applied {
				_, _ = fmt.Fprintf(out, "Applied migration %03d\n", version)
			}
			if len(applied) == 0 {
				versions, err := database.AppliedMigrations(cmd.Context(), db)
				if err != nil {
					return fmt.Errorf("database.AppliedMigrations() > %w", err)
				}
				_, _ = fmt.Fprintf(out, "Database is up to date (%d migrations applied)\n", len(versions))
			}
			return nil
		},
	}
}
