// Package walletregistry implements the user-facing registration flow:
// creating users, adding and removing tracked wallets and listing what was
// recorded for them. Adding or removing a wallet also starts or stops its
// poller through a Tracker.
package walletregistry

import (
	"context"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// Service defines the registration use cases exposed to chat handlers.
type Service interface {
	// Register creates the user behind chatID. Registering twice returns the
	// existing user.
	Register(ctx context.Context, chatID string) (walletwatch.User, error)

	// StartWatching stores address for the user behind chatID and starts
	// tracking it.
	//
	// Returns ErrInvalidAddress, ErrUserNotRegistered or
	// ErrWalletAlreadyRegistered when the request cannot be honored.
	StartWatching(ctx context.Context, chatID, address string) (walletwatch.Wallet, error)

	// StopWatching removes address from the user's wallets, together with its
	// recorded transactions, and stops its poller.
	//
	// Returns ErrInvalidAddress, ErrUserNotRegistered or ErrWalletNotTracked.
	StopWatching(ctx context.Context, chatID, address string) error

	// ListWallets returns the wallets owned by the user behind chatID.
	ListWallets(ctx context.Context, chatID string) ([]walletwatch.Wallet, error)

	// ListTransactions returns the transactions recorded for one of the
	// user's wallets.
	ListTransactions(ctx context.Context, chatID, address string) ([]walletwatch.Transaction, error)
}

// Tracker starts and stops wallet pollers. It is satisfied by walletwatch.Service.
type Tracker interface {
	Watch(ctx context.Context, target walletwatch.Target) error
	Unwatch(walletID int64) bool
}

type service struct {
	walletStorage WalletStorage
	tracker       Tracker
}

var _ Service = (*service)(nil)

// New creates the registry service.
func New(ws WalletStorage, tracker Tracker) *service {
	return &service{
		walletStorage: ws,
		tracker:       tracker,
	}
}
