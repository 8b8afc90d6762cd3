package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "log <text>...",
		Short: "Run a free-text command, e.g. \"09:00 18:30 night shift\"",
		Long: `Runs one line of free text through the command parser.

Understood forms:
  09:00 18:30 [notes]            log hours worked today
  2024-05-22 09:00 18:30 [note]  set a working day
  2024-05-22 off [note]          set a day off
  mon 09:00 18:00                apply a weekly template block
  tue 10:00 19:00                (one weekday per line, multi-line)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Commands.Execute(context.Background(), contract.CommandRequest{
				UserID: userID,
				Text:   strings.Join(args, " "),
			})
			if err != nil {
				if errors.Is(err, domain.ErrNoMatch) {
					cmd.Println("Could not understand that. See `smena log --help` for the forms it accepts.")
					return nil
				}
				return err
			}

			printOutcome(cmd, outcome)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	return cmd
}

func printOutcome(cmd *cobra.Command, outcome *contract.CommandOutcome) {
	switch {
	case outcome.Record != nil:
		cmd.Println(formatter.FormatRecord(outcome.Record))
	case outcome.Day != nil:
		cmd.Println(formatter.FormatDay(outcome.Day))
	case len(outcome.Days) > 0:
		for i := range outcome.Days {
			cmd.Println(formatter.FormatDay(&outcome.Days[i]))
		}
	default:
		cmd.Println("Done.")
	}
}
