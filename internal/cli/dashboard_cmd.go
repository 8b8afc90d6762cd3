package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard requires a terminal")
			}

			program := tea.NewProgram(newDashboardModel(app, userID), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	addUserFlag(cmd.Flags(), &userID)
	return cmd
}
