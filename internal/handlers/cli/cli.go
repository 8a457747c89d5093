package cli

import (
	"context"
	"os"

	"github.com/gabapcia/ethtracker/internal/pipeline"
	"github.com/gabapcia/ethtracker/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Migrator applies pending schema migrations.
type Migrator interface {
	Migrate() error
}

// Factory builds the dependencies of each command on demand, so that a
// command only connects to what it uses.
type Factory interface {
	Pipeline(ctx context.Context) (pipeline.Service, error)
	Migrator(ctx context.Context) (Migrator, error)
	Registry(ctx context.Context) (walletregistry.Service, error)
}

// Run initializes and executes the ethtracker CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the wallet tracker, the chat bot and the health server.
//   - `migrate`: Applies database migrations.
//   - `check-address`: Validates an address checksum offline.
//   - `wallets`: Lists the wallets tracked for a chat.
//   - `transactions`: Lists the stored transactions of a tracked wallet.
func Run(ctx context.Context, f Factory) error {
	return newApp(f).Run(ctx, os.Args)
}

func newApp(f Factory) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ethtracker",
		Description:           "Tracks Ethereum wallets and notifies their owners about new transfers through Telegram.",
		Usage:                 "ethtracker [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(f),
			migrateCommand(f),
			checkAddressCommand(),
			listWalletsCommand(f),
			listTransactionsCommand(f),
		},
	}
}
