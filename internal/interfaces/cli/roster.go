package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zainulabideendev/estateplan/internal/application/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres/repositories"
)

// newRosterCmd creates the roster command, which prints the merged
// beneficiary view for one profile.
func newRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <profile-id>",
		Short: "Show a profile's beneficiary roster",
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
			records := repositories.NewPostgresBeneficiaryRepo(conn, cliCtx.Logger)
			allocations := repositories.NewPostgresAllocationRepo(conn, cliCtx.Logger)
			benSvc := beneficiary.NewService(records, allocations, cliCtx.Logger)
			svc := estate.NewRosterService(profiles, benSvc, nil, nil, nil, cliCtx.Logger)

			roster, err := svc.GetRoster(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cliCtx.Output == "json" {
				return printResult(cmd, cliCtx.Output, roster)
			}

			selected := make(map[beneficiary.Key]bool, len(roster.Selected))
			for _, c := range roster.Selected {
				selected[c.Key] = true
			}

			rows := make([][]string, 0, len(roster.Candidates)+len(roster.Manual))
			for _, c := range roster.Candidates {
				rows = append(rows, []string{
					string(c.Key),
					string(c.Kind),
					c.Person.FirstName + " " + c.Person.LastName,
					fmt.Sprintf("%t", selected[c.Key]),
				})
			}
			for _, rec := range roster.Manual {
				rows = append(rows, []string{
					rec.ID,
					"manual",
					rec.Person.FirstName + " " + rec.Person.LastName,
					"true",
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTable([]string{"KEY", "KIND", "NAME", "SELECTED"}, rows))
			return nil
		},
	}
}
