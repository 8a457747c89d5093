// Package walletwatch tracks registered Ethereum wallets. Every tracked
// wallet gets its own poller that periodically asks the ledger for the most
// recent native and token transfer, stores the ones it has not seen before
// and notifies the wallet owner.
package walletwatch

import (
	"context"
	"errors"
	"fmt"
)

// NativeToken is the token name recorded for native ether transfers.
const NativeToken = "ETH"

var (
	// ErrWalletNotFound is returned by a Repository when the wallet does not exist.
	// A poller treats it as the signal to stop.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned by a Repository when no stored
	// transaction matches the given key.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStorage wraps every failure of the underlying storage. Callers use it
	// to tell a missing record apart from an unreachable database.
	ErrStorage = errors.New("storage failure")
)

// User is a chat participant that owns wallets.
type User struct {
	ID     int64
	ChatID string
}

// Wallet is a tracked address. Address keeps the checksum casing it was
// registered with; Owner is only populated by ListWalletsWithOwners.
type Wallet struct {
	ID      int64
	Address string
	UserID  int64
	Owner   *User
}

// Transaction is a transfer detected for a tracked wallet.
//
// Amount is the raw on-chain integer in the token's smallest unit and
// Decimals the scale used to render it. Status is false only for native
// transfers the ledger reported as failed.
type Transaction struct {
	ID       int64
	From     string
	To       string
	Amount   string `validate:"required,number"`
	TxHash   string `validate:"required"`
	Token    string `validate:"required"`
	Decimals int    `validate:"gte=0"`
	Status   bool
	WalletID int64 `validate:"gt=0"`
}

// TransactionKey identifies a transaction for deduplication purposes.
type TransactionKey struct {
	TxHash   string
	WalletID int64
	Token    string
}

// String renders the key in a form suitable for cache keys.
func (k TransactionKey) String() string {
	return fmt.Sprintf("%d:%s:%s", k.WalletID, k.Token, k.TxHash)
}

// Key returns the deduplication key of the transaction.
func (t Transaction) Key() TransactionKey {
	return TransactionKey{
		TxHash:   t.TxHash,
		WalletID: t.WalletID,
		Token:    t.Token,
	}
}

// DefaultDecimals returns the scale assumed for token when the ledger or the
// storage does not provide one.
func DefaultDecimals(token string) int {
	switch token {
	case NativeToken:
		return 18
	case "Tether USD", "USDT":
		return 6
	default:
		return 0
	}
}

// Repository is the storage contract the tracking engine depends on.
type Repository interface {
	// FindWallet looks up a wallet by owner and address. The address is matched
	// case-insensitively and a userID of 0 matches any owner.
	// Returns ErrWalletNotFound when there is no such wallet.
	FindWallet(ctx context.Context, userID int64, address string) (Wallet, error)

	// InsertTransaction stores tx. It reports false, without error, when a
	// transaction with the same key already exists.
	InsertTransaction(ctx context.Context, tx Transaction) (bool, error)

	// FindTransaction returns the stored transaction matching key. A zero
	// WalletID or an empty Token match any value.
	// Returns ErrTransactionNotFound when nothing matches.
	FindTransaction(ctx context.Context, key TransactionKey) (Transaction, error)

	// ListWalletsWithOwners returns every wallet with its Owner populated.
	ListWalletsWithOwners(ctx context.Context) ([]Wallet, error)
}
