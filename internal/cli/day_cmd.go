package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Edit a single schedule day",
	}

	cmd.AddCommand(newDaySetCmd(app), newDayOffCmd(app))
	return cmd
}

func newDaySetCmd(app *App) *cobra.Command {
	var userID int64
	var start, end, notes string

	cmd := &cobra.Command{
		Use:   "set <date>",
		Short: "Mark a date as a working day with shift times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]

			if start == "" && end == "" {
				if !app.interactive() {
					return fmt.Errorf("flags --start and --end are required without a terminal")
				}
				if err := runDayForm(date, &start, &end, &notes); err != nil {
					return err
				}
			}

			day, err := app.Schedules.SetDay(context.Background(), contract.SetDayRequest{
				UserID:    userID,
				Date:      date,
				Working:   true,
				StartTime: start,
				EndTime:   end,
				Notes:     notes,
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatDay(day))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&start, "start", "", "Shift start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "Shift end time HH:MM")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text note for the day")

	return cmd
}

func newDayOffCmd(app *App) *cobra.Command {
	var userID int64
	var notes string

	cmd := &cobra.Command{
		Use:   "off <date>",
		Short: "Mark a date as a day off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := app.Schedules.SetDay(context.Background(), contract.SetDayRequest{
				UserID:  userID,
				Date:    args[0],
				Working: false,
				Notes:   notes,
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatDay(day))
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text note for the day")

	return cmd
}

// runDayForm collects shift times interactively when the flags were
// omitted.
func runDayForm(date string, start, end, notes *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start time").
				Description(date).
				Placeholder("09:00").
				Validate(validateClock).
				Value(start),
			huh.NewInput().
				Title("End time").
				Placeholder("18:00").
				Validate(validateClock).
				Value(end),
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				Value(notes),
		),
	)
	return form.Run()
}

func validateClock(s string) error {
	if !domain.IsClock(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}
