package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres/repositories"
)

// newProgressCmd creates the progress command, which reads one profile's
// milestone flags straight from the store and prints the computed score.
func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <profile-id>",
		Short: "Show a profile's estate readiness score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cliCtx.Config.Database, cliCtx.Logger)
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}
			defer conn.Close()

			profiles := repositories.NewPostgresProfileRepo(conn, cliCtx.Logger)
			svc := estate.NewProgressService(profiles, cliCtx.Logger)

			progress, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cliCtx.Output == "json" {
				return printResult(cmd, cliCtx.Output, progress)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "score: %d/100\n", progress.Score)
			fmt.Fprintf(cmd.OutOrStdout(), "allocation complete: %t\n\n", progress.AllocationComplete)

			rows := make([][]string, 0, len(progress.Breakdown))
			for _, sw := range progress.Breakdown {
				rows = append(rows, []string{
					string(sw.Step),
					strconv.Itoa(sw.Weight),
					strconv.FormatBool(sw.Done),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTable([]string{"STEP", "WEIGHT", "DONE"}, rows))
			return nil
		},
	}
	return cmd
}
