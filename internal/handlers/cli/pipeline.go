package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand returns a CLI command that runs the tracker until the
// process receives SIGINT or SIGTERM.
//
// Usage example:
//
//	ethtracker start
func startPipelineCommand(f Factory) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Recovers every stored wallet, starts polling and serves chat commands.",
		Usage:       "Runs the tracker. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := f.Pipeline(ctx)
			if err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}

// migrateCommand returns a CLI command that applies pending migrations.
//
// Usage example:
//
//	ethtracker migrate
func migrateCommand(f Factory) *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Description: "Applies every pending database migration.",
		Usage:       "Brings the database schema up to date and exits.",
		Action: func(ctx context.Context, c *cli.Command) error {
			m, err := f.Migrator(ctx)
			if err != nil {
				return err
			}

			return m.Migrate()
		},
	}
}
