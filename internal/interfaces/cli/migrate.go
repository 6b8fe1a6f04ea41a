package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
)

// newMigrateCmd creates the migrate command group: up, down, status.
func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(newMigrateUpCmd(), newMigrateDownCmd(), newMigrateStatusCmd())
	return cmd
}

// migrationSource returns the DSN and file:// source URL for the configured
// database.
func migrationSource(cliCtx *CLIContext) (dbURL, sourceURL string) {
	return cliCtx.Config.Database.DSN(), "file://" + cliCtx.Config.Database.MigrationPath
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			dbURL, sourceURL := migrationSource(cliCtx)
			if err := postgres.RunMigrations(dbURL, sourceURL); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newMigrateDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}
			dbURL, sourceURL := migrationSource(cliCtx)
			if err := postgres.RollbackMigration(dbURL, sourceURL, steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newMigrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			dbURL, sourceURL := migrationSource(cliCtx)
			version, dirty, err := postgres.MigrationStatus(dbURL, sourceURL)
			if err != nil {
				return fmt.Errorf("status check failed: %w", err)
			}
			return printResult(cmd, cliCtx.Output, map[string]interface{}{
				"version": version,
				"dirty":   dirty,
			})
		},
	}
}
