package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/smena/internal/cli/formatter"
	"github.com/alexanderramin/smena/internal/command"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Weekly schedule templates",
	}

	cmd.AddCommand(newTemplateApplyCmd(app))
	return cmd
}

func newTemplateApplyCmd(app *App) *cobra.Command {
	var userID int64
	var monthKey string

	cmd := &cobra.Command{
		Use:   "apply <line>...",
		Short: "Apply a weekly template across a month",
		Long: `Applies a weekly template to every matching weekday of the month.
Each argument is one template line, quoted:

  smena template apply "mon 09:00 18:00" "tue 09:00 18:00" "sat off"

Days whose weekday has no template line are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if monthKey == "" {
				now := time.Now()
				monthKey = domain.MonthKey(now.Year(), now.Month())
			}

			intent, err := command.Parse(strings.Join(args, "\n"), time.Now())
			if err != nil {
				return err
			}
			if intent.Action != command.ActionApplyTemplate {
				return fmt.Errorf("arguments do not form a weekly template: %w", domain.ErrNoMatch)
			}

			ctx := context.Background()
			year, month, err := domain.ParseMonthKey(monthKey)
			if err != nil {
				return err
			}
			if _, err := app.Schedules.GetOrCreateMonth(ctx, userID, year, month); err != nil {
				return err
			}

			schedule, err := app.Schedules.ApplyTemplate(ctx, contract.ApplyTemplateRequest{
				UserID:   userID,
				MonthKey: monthKey,
				Template: intent.Template,
			})
			if err != nil {
				return err
			}

			changed := 0
			for _, date := range schedule.Dates() {
				day := schedule[date]
				if _, ok := intent.Template[int(mustWeekday(date))]; ok {
					cmd.Println(formatter.FormatDay(&day))
					changed++
				}
			}
			cmd.Printf("Template applied to %d days of %s.\n", changed, monthKey)
			return nil
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	cmd.Flags().StringVar(&monthKey, "month", "", "Month key YYYY-MM (default: current month)")

	return cmd
}

func mustWeekday(date string) time.Weekday {
	t, err := domain.ParseDate(date)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}
