package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

const (
	insertTransactionQuery = `INSERT INTO transactions ("from", wallet_id, "to", amount, tx_hash, status, token, "decimal")
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (tx_hash, wallet_id, token) DO NOTHING
RETURNING id`

	findTransactionQuery = `SELECT id, "from", wallet_id, "to", amount::text AS amount, tx_hash, status, token, "decimal" FROM transactions
WHERE tx_hash = $1 AND ($2::bigint = 0 OR wallet_id = $2::bigint) AND ($3::text = '' OR token = $3::text)
ORDER BY id LIMIT 1`

	listWalletTransactionsQuery = `SELECT id, "from", wallet_id, "to", amount::text AS amount, tx_hash, status, token, "decimal" FROM transactions
WHERE wallet_id = $1
ORDER BY id`
)

type transactionRow struct {
	ID       int64  `db:"id"`
	From     string `db:"from"`
	WalletID int64  `db:"wallet_id"`
	To       string `db:"to"`
	Amount   string `db:"amount"`
	TxHash   string `db:"tx_hash"`
	Status   bool   `db:"status"`
	Token    string `db:"token"`
	Decimal  int    `db:"decimal"`
}

func (r transactionRow) toDomain() walletwatch.Transaction {
	return walletwatch.Transaction{
		ID:       r.ID,
		From:     r.From,
		To:       r.To,
		Amount:   r.Amount,
		TxHash:   r.TxHash,
		Token:    r.Token,
		Decimals: r.Decimal,
		Status:   r.Status,
		WalletID: r.WalletID,
	}
}

func (c *client) InsertTransaction(ctx context.Context, tx walletwatch.Transaction) (bool, error) {
	var id int64
	err := c.db.QueryRowxContext(ctx, insertTransactionQuery,
		tx.From,
		tx.WalletID,
		tx.To,
		tx.Amount,
		tx.TxHash,
		tx.Status,
		tx.Token,
		tx.Decimals,
	).Scan(&id)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, storageError(err)
	}

	return true, nil
}

func (c *client) FindTransaction(ctx context.Context, key walletwatch.TransactionKey) (walletwatch.Transaction, error) {
	var row transactionRow
	if err := c.db.GetContext(ctx, &row, findTransactionQuery, key.TxHash, key.WalletID, key.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walletwatch.Transaction{}, walletwatch.ErrTransactionNotFound
		}
		return walletwatch.Transaction{}, storageError(err)
	}

	return row.toDomain(), nil
}

func (c *client) ListWalletTransactions(ctx context.Context, walletID int64) ([]walletwatch.Transaction, error) {
	var rows []transactionRow
	if err := c.db.SelectContext(ctx, &rows, listWalletTransactionsQuery, walletID); err != nil {
		return nil, storageError(err)
	}

	txs := make([]walletwatch.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = row.toDomain()
	}

	return txs, nil
}
