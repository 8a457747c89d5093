package walletregistry

import (
	"context"
	"errors"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
	"github.com/gabapcia/ethtracker/internal/pkg/validator"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

var (
	ErrInvalidChatID           = errors.New("invalid chat id")
	ErrInvalidAddress          = errors.New("invalid eth address")
	ErrUserNotRegistered       = errors.New("user not registered")
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")
	ErrWalletNotTracked        = errors.New("wallet not tracked by user")
)

// WalletStorage persists users and their wallets.
type WalletStorage interface {
	// FindUserByChatID returns ErrUserNotRegistered when no user owns chatID.
	FindUserByChatID(ctx context.Context, chatID string) (walletwatch.User, error)

	// CreateUser inserts a user for chatID, or returns the existing one.
	CreateUser(ctx context.Context, chatID string) (walletwatch.User, error)

	// FindWallet returns walletwatch.ErrWalletNotFound when the user does not
	// own address. Addresses are compared case-insensitively.
	FindWallet(ctx context.Context, userID int64, address string) (walletwatch.Wallet, error)

	// InsertWallet stores a new wallet. It returns ErrWalletAlreadyRegistered
	// when the user already owns the address.
	InsertWallet(ctx context.Context, userID int64, address string) (walletwatch.Wallet, error)

	// DeleteWallet removes a wallet and, by cascade, its transactions.
	DeleteWallet(ctx context.Context, walletID int64) error

	ListUserWallets(ctx context.Context, userID int64) ([]walletwatch.Wallet, error)
	ListWalletTransactions(ctx context.Context, walletID int64) ([]walletwatch.Transaction, error)
}

// WalletIdentifier is a validated (chat, address) pair.
type WalletIdentifier struct {
	ChatID  string
	Address string
}

func validateChatID(chatID string) error {
	if err := validator.Var(chatID, "required,numeric"); err != nil {
		return errors.Join(ErrInvalidChatID, err)
	}
	return nil
}

// buildWalletIdentifier validates chatID and address. The address must carry
// a valid checksum.
func buildWalletIdentifier(chatID, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		ChatID:  chatID,
		Address: address,
	}

	if err := validateChatID(chatID); err != nil {
		return id, err
	}

	if err := validator.Var(address, "required,"+validator.TagEthChecksum); err != nil {
		return id, errors.Join(ErrInvalidAddress, err)
	}

	return id, nil
}

// findOwnedWallet resolves the user and one of their wallets.
func (s *service) findOwnedWallet(ctx context.Context, id WalletIdentifier) (walletwatch.User, walletwatch.Wallet, error) {
	user, err := s.walletStorage.FindUserByChatID(ctx, id.ChatID)
	if err != nil {
		return walletwatch.User{}, walletwatch.Wallet{}, err
	}

	wallet, err := s.walletStorage.FindWallet(ctx, user.ID, id.Address)
	if errors.Is(err, walletwatch.ErrWalletNotFound) {
		return user, walletwatch.Wallet{}, errors.Join(ErrWalletNotTracked, err)
	}

	return user, wallet, err
}

func (s *service) Register(ctx context.Context, chatID string) (walletwatch.User, error) {
	if err := validateChatID(chatID); err != nil {
		return walletwatch.User{}, err
	}

	return s.walletStorage.CreateUser(ctx, chatID)
}

func (s *service) StartWatching(ctx context.Context, chatID, address string) (walletwatch.Wallet, error) {
	id, err := buildWalletIdentifier(chatID, address)
	if err != nil {
		return walletwatch.Wallet{}, err
	}

	user, _, err := s.findOwnedWallet(ctx, id)
	switch {
	case err == nil:
		return walletwatch.Wallet{}, ErrWalletAlreadyRegistered
	case !errors.Is(err, ErrWalletNotTracked):
		return walletwatch.Wallet{}, err
	}

	wallet, err := s.walletStorage.InsertWallet(ctx, user.ID, id.Address)
	if err != nil {
		return walletwatch.Wallet{}, err
	}

	target := walletwatch.Target{
		WalletID: wallet.ID,
		Address:  wallet.Address,
		UserID:   user.ID,
		ChatID:   user.ChatID,
	}
	if err := s.tracker.Watch(ctx, target); err != nil && !errors.Is(err, walletwatch.ErrAlreadyWatching) {
		// The wallet is stored, so it will be picked up again on the next start.
		logger.Error(ctx, "error starting wallet poller", "wallet.id", wallet.ID, "error", err)
		return wallet, err
	}

	return wallet, nil
}

func (s *service) StopWatching(ctx context.Context, chatID, address string) error {
	id, err := buildWalletIdentifier(chatID, address)
	if err != nil {
		return err
	}

	_, wallet, err := s.findOwnedWallet(ctx, id)
	if err != nil {
		return err
	}

	if err := s.walletStorage.DeleteWallet(ctx, wallet.ID); err != nil {
		return err
	}

	s.tracker.Unwatch(wallet.ID)
	return nil
}

func (s *service) ListWallets(ctx context.Context, chatID string) ([]walletwatch.Wallet, error) {
	if err := validateChatID(chatID); err != nil {
		return nil, err
	}

	user, err := s.walletStorage.FindUserByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return s.walletStorage.ListUserWallets(ctx, user.ID)
}

func (s *service) ListTransactions(ctx context.Context, chatID, address string) ([]walletwatch.Transaction, error) {
	id, err := buildWalletIdentifier(chatID, address)
	if err != nil {
		return nil, err
	}

	_, wallet, err := s.findOwnedWallet(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.walletStorage.ListWalletTransactions(ctx, wallet.ID)
}
