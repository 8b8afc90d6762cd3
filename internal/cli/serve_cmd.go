package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/smena/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			server := httpapi.NewServer(app.Schedules, app.Records, app.Commands,
				httpapi.WithLogger(logger),
			)
			return server.ListenAndServe(ctx, addr)
		},
	}

	defaultAddr := ":8080"
	if env := os.Getenv("SMENA_ADDR"); env != "" {
		defaultAddr = env
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "Listen address for the API")

	return cmd
}
