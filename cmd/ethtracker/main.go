package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/ethtracker/internal/config"
	"github.com/gabapcia/ethtracker/internal/handlers/cli"
	"github.com/gabapcia/ethtracker/internal/pkg/logger"
	"github.com/gabapcia/ethtracker/internal/pkg/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdownTimeout)
			defer cancel()

			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithName(cfg.ServiceName)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	f := newFactory(cfg)
	defer f.Close(ctx)

	return cli.Run(ctx, f)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
