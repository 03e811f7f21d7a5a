package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/atlas/internal/cli"
	"github.com/alexanderramin/atlas/internal/cohort"
	"github.com/alexanderramin/atlas/internal/config"
	"github.com/alexanderramin/atlas/internal/db"
	"github.com/alexanderramin/atlas/internal/repository"
	"github.com/alexanderramin/atlas/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The session table lives in memory; nothing is written to disk.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repo := repository.NewSQLiteCourseRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Logging.UseCases {
		observer = service.NewLeveledLogUseCaseObserver(os.Stderr, cfg.SlogLevel())
	}

	app := &cli.App{
		Atlas:  service.NewAtlasService(repo, cohort.NewSeededSource, cfg, observer),
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
