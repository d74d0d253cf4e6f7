package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"balance-planner/internal/cli"
	"balance-planner/internal/config"
	"balance-planner/internal/repository"
	"balance-planner/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	stateRepo := repository.NewStateRepository(db)

	tasks, err := taskRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("load tasks: %v", err)
	}
	settings, found, err := settingsRepo.Load(ctx)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if !found {
		settings = cfg.InitialSettings
		if err := settingsRepo.Save(ctx, settings); err != nil {
			log.Fatalf("seed settings: %v", err)
		}
	}

	st := store.New(nil, nil)
	st.Load(tasks, settings)

	app := cli.New(st, taskRepo, settingsRepo, stateRepo, os.Stdout, nil)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
