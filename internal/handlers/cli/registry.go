package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/ethtracker/internal/pkg/address"
	"github.com/gabapcia/ethtracker/internal/walletwatch"

	"github.com/urfave/cli/v3"
)

// ErrInvalidAddress is returned by check-address for a malformed or
// wrongly checksummed address.
var ErrInvalidAddress = errors.New("invalid address")

// checkAddressCommand returns a CLI command that validates an address the
// same way chat registrations are validated.
//
// Usage example:
//
//	ethtracker check-address --address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed
func checkAddressCommand() *cli.Command {
	return &cli.Command{
		Name:        "check-address",
		Description: "Validate the EIP-55 checksum of an Ethereum address.",
		Usage:       "Exits with an error if the address would be rejected by /add.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to validate",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			addr := c.String("address")
			if !address.IsValid(addr) {
				return fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
			}

			_, err := fmt.Fprintf(c.Root().Writer, "%s is valid\n", addr)
			return err
		},
	}
}

// listWalletsCommand returns a CLI command that prints the wallets tracked
// for a chat.
//
// Usage example:
//
//	ethtracker wallets --chat-id 1001
func listWalletsCommand(f Factory) *cli.Command {
	return &cli.Command{
		Name:        "wallets",
		Description: "List the wallets tracked for a chat.",
		Usage:       "Prints one wallet address per line.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "chat-id",
				Usage:    "Telegram chat identifier",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wr, err := f.Registry(ctx)
			if err != nil {
				return err
			}

			wallets, err := wr.ListWallets(ctx, c.String("chat-id"))
			if err != nil {
				return err
			}

			for _, w := range wallets {
				if _, err := fmt.Fprintf(c.Root().Writer, "%d\t%s\n", w.ID, w.Address); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// listTransactionsCommand returns a CLI command that prints the stored
// transactions of a tracked wallet.
//
// Usage example:
//
//	ethtracker transactions --chat-id 1001 --address 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed
func listTransactionsCommand(f Factory) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "List the transactions stored for a tracked wallet.",
		Usage:       "Prints one transfer per entry, formatted like chat notifications.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "chat-id",
				Usage:    "Telegram chat identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Tracked wallet address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "explorer-url",
				Usage: "Block explorer used for transaction links",
				Value: "https://etherscan.io",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wr, err := f.Registry(ctx)
			if err != nil {
				return err
			}

			txs, err := wr.ListTransactions(ctx, c.String("chat-id"), c.String("address"))
			if err != nil {
				return err
			}

			for _, tx := range txs {
				if _, err := fmt.Fprintln(c.Root().Writer, walletwatch.FormatTransfer(tx, c.String("explorer-url"))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
