package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	var userID int64
	var date, notes string

	cmd := &cobra.Command{
		Use:   "record <start> <end>",
		Short: "Log actually worked hours for a date (default: today)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(domain.DateLayout)
			}

			rec, err := app.Records.RecordHours(context.Background(), contract.RecordHoursRequest{
				UserID:    userID,
				Date:      date,
				StartTime: args[0],
				EndTime:   args[1],
				Notes:     notes,
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatRecord(rec))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text note for the record")

	return cmd
}
