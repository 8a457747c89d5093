package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/gabapcia/ethtracker/internal/walletregistry"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// foreignKeyViolation is the SQLSTATE raised when a referenced row is missing.
const foreignKeyViolation = "23503"

const (
	findWalletQuery = `SELECT id, user_id, address FROM wallets
WHERE lower(address) = lower($1) AND ($2::bigint = 0 OR user_id = $2::bigint)
ORDER BY id LIMIT 1`

	insertWalletQuery = `INSERT INTO wallets (user_id, address) VALUES ($1, $2)
ON CONFLICT (user_id, lower(address)) DO NOTHING
RETURNING id, user_id, address`

	deleteWalletQuery = `DELETE FROM wallets WHERE id = $1`

	listUserWalletsQuery = `SELECT id, user_id, address FROM wallets WHERE user_id = $1 ORDER BY id`

	listWalletsWithOwnersQuery = `SELECT w.id, w.user_id, w.address, u.id AS owner_id, u.chat_id AS owner_chat_id
FROM wallets w LEFT JOIN users u ON u.id = w.user_id
ORDER BY w.id`
)

type walletRow struct {
	ID      int64  `db:"id"`
	UserID  int64  `db:"user_id"`
	Address string `db:"address"`
}

func (r walletRow) toDomain() walletwatch.Wallet {
	return walletwatch.Wallet{
		ID:      r.ID,
		Address: r.Address,
		UserID:  r.UserID,
	}
}

type walletOwnerRow struct {
	walletRow
	OwnerID     sql.NullInt64  `db:"owner_id"`
	OwnerChatID sql.NullString `db:"owner_chat_id"`
}

func (r walletOwnerRow) toDomain() walletwatch.Wallet {
	w := r.walletRow.toDomain()
	if r.OwnerID.Valid {
		w.Owner = &walletwatch.User{
			ID:     r.OwnerID.Int64,
			ChatID: r.OwnerChatID.String,
		}
	}
	return w
}

func (c *client) FindWallet(ctx context.Context, userID int64, address string) (walletwatch.Wallet, error) {
	var row walletRow
	if err := c.db.GetContext(ctx, &row, findWalletQuery, address, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walletwatch.Wallet{}, walletwatch.ErrWalletNotFound
		}
		return walletwatch.Wallet{}, storageError(err)
	}

	return row.toDomain(), nil
}

func (c *client) InsertWallet(ctx context.Context, userID int64, address string) (walletwatch.Wallet, error) {
	var row walletRow
	if err := c.db.GetContext(ctx, &row, insertWalletQuery, userID, address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walletwatch.Wallet{}, walletregistry.ErrWalletAlreadyRegistered
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return walletwatch.Wallet{}, walletregistry.ErrUserNotRegistered
		}

		return walletwatch.Wallet{}, storageError(err)
	}

	return row.toDomain(), nil
}

func (c *client) DeleteWallet(ctx context.Context, walletID int64) error {
	res, err := c.db.ExecContext(ctx, deleteWalletQuery, walletID)
	if err != nil {
		return storageError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storageError(err)
	}

	if n == 0 {
		return walletwatch.ErrWalletNotFound
	}

	return nil
}

func (c *client) ListUserWallets(ctx context.Context, userID int64) ([]walletwatch.Wallet, error) {
	var rows []walletRow
	if err := c.db.SelectContext(ctx, &rows, listUserWalletsQuery, userID); err != nil {
		return nil, storageError(err)
	}

	wallets := make([]walletwatch.Wallet, len(rows))
	for i, row := range rows {
		wallets[i] = row.toDomain()
	}

	return wallets, nil
}

func (c *client) ListWalletsWithOwners(ctx context.Context) ([]walletwatch.Wallet, error) {
	var rows []walletOwnerRow
	if err := c.db.SelectContext(ctx, &rows, listWalletsWithOwnersQuery); err != nil {
		return nil, storageError(err)
	}

	wallets := make([]walletwatch.Wallet, len(rows))
	for i, row := range rows {
		wallets[i] = row.toDomain()
	}

	return wallets, nil
}
