package cli

import (
	"context"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var userID int64
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize logged hours over a period (week, month, year, all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Records.Stats(context.Background(), contract.StatsRequest{
				UserID: userID,
				Period: domain.Period(period),
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatStats(resp))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&period, "period", "month", "Period to summarize: week, month, year or all")

	return cmd
}
