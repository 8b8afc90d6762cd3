package cli

import (
	"os"
	"strconv"

	"github.com/alexanderramin/smena/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Records   service.RecordService
	Commands  service.CommandService

	// IsInteractive reports whether stdin is attached to a terminal;
	// forms and the dashboard require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "smena" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "smena",
		Short: "Work-shift tracker: monthly schedules and worked-hours stats",
	}

	root.AddCommand(
		newMonthCmd(app),
		newDayCmd(app),
		newTemplateCmd(app),
		newRecordCmd(app),
		newStatsCmd(app),
		newLogCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
	)

	return root
}

// addUserFlag registers the shared --user flag, defaulting from the
// SMENA_USER environment variable and then to user 1. The tracker is
// personal; the id only matters when several people share one store.
func addUserFlag(flags *pflag.FlagSet, userID *int64) {
	defaultUser := int64(1)
	if env := os.Getenv("SMENA_USER"); env != "" {
		if parsed, err := strconv.ParseInt(env, 10, 64); err == nil && parsed != 0 {
			defaultUser = parsed
		}
	}
	flags.Int64Var(userID, "user", defaultUser, "User id owning the schedule")
}
