package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/feature-tour/internal/app"
	"github.com/samvad-hq/feature-tour/internal/config"
	"github.com/samvad-hq/feature-tour/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tour failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("tour starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tour, err := app.NewTour(ctx, cfg, log, app.WithArgs(os.Args))
	if err != nil {
		logger.ErrorObj("failed to initialize tour", "error", err)
		return err
	}

	if err := tour.Run(ctx); err != nil {
		return fmt.Errorf("tour run: %w", err)
	}

	return nil
}
