package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	var userID int64
	var monthKey string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month schedule with recorded hours and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if monthKey == "" {
				now := time.Now()
				monthKey = domain.MonthKey(now.Year(), now.Month())
			}

			resp, err := app.Schedules.MonthView(context.Background(), contract.MonthRequest{
				UserID:   userID,
				MonthKey: monthKey,
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatMonth(resp))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&monthKey, "month", "", "Month key YYYY-MM (default: current month)")

	return cmd
}
