package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gabapcia/ethtracker/internal/walletregistry"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

const (
	findUserByChatIDQuery = `SELECT id, chat_id FROM users WHERE chat_id = $1`

	// The no-op update makes RETURNING yield the existing row on conflict.
	createUserQuery = `INSERT INTO users (chat_id) VALUES ($1)
ON CONFLICT (chat_id) DO UPDATE SET chat_id = EXCLUDED.chat_id
RETURNING id, chat_id`
)

type userRow struct {
	ID     int64  `db:"id"`
	ChatID string `db:"chat_id"`
}

func (r userRow) toDomain() walletwatch.User {
	return walletwatch.User{
		ID:     r.ID,
		ChatID: r.ChatID,
	}
}

func (c *client) FindUserByChatID(ctx context.Context, chatID string) (walletwatch.User, error) {
	var row userRow
	if err := c.db.GetContext(ctx, &row, findUserByChatIDQuery, chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walletwatch.User{}, walletregistry.ErrUserNotRegistered
		}
		return walletwatch.User{}, storageError(err)
	}

	return row.toDomain(), nil
}

func (c *client) CreateUser(ctx context.Context, chatID string) (walletwatch.User, error) {
	var row userRow
	if err := c.db.GetContext(ctx, &row, createUserQuery, chatID); err != nil {
		return walletwatch.User{}, storageError(err)
	}

	return row.toDomain(), nil
}
