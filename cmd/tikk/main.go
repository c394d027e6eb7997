package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/tikk-app/tikk/internal/cli"
	"github.com/tikk-app/tikk/internal/config"
	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/logging"
	"github.com/tikk-app/tikk/internal/repository"
	"github.com/tikk-app/tikk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("TIKK_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	timerRepo := repository.NewSQLiteTimerRepo(database)
	uow := db.NewUnitOfWork(database)

	categorySvc := service.NewCategoryService(categoryRepo)
	if err := categorySvc.EnsureSeed(context.Background()); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	app := &cli.App{
		Sessions:   service.NewSessionService(sessionRepo),
		Categories: categorySvc,
		Timer:      service.NewTimerService(timerRepo, uow),

		SessionRepo:  sessionRepo,
		CategoryRepo: categoryRepo,
		UoW:          uow,

		Logger: logger,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
