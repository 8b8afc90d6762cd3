package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/smena/internal/cli"
	"github.com/alexanderramin/smena/internal/db"
	"github.com/alexanderramin/smena/internal/repository"
	"github.com/alexanderramin/smena/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.smena/smena.db
	dbPath := os.Getenv("SMENA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".smena", "smena.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	locks := service.NewUserLocks()

	var opts []service.Option
	if os.Getenv("SMENA_LOG") != "" {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	schedules := service.NewScheduleService(scheduleRepo, recordRepo, uow, locks, opts...)
	records := service.NewRecordService(recordRepo, uow, locks, opts...)

	app := &cli.App{
		Schedules: schedules,
		Records:   records,
		Commands:  service.NewCommandService(schedules, records, opts...),
	}

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
