// Package postgres stores users, wallets and transactions in PostgreSQL.
// The same client backs the tracking engine and the registration flow.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/gabapcia/ethtracker/internal/walletregistry"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// Config holds the connection settings.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type client struct {
	db *sqlx.DB
}

// storageError marks err as a storage failure.
func storageError(err error) error {
	return errors.Join(walletwatch.ErrStorage, err)
}

func (c *client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *client) Close() error {
	return c.db.Close()
}

// NewClient opens a connection pool and checks it is reachable.
func NewClient(ctx context.Context, cfg Config) (*client, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &client{db: db}, nil
}

var (
	_ walletwatch.Repository       = (*client)(nil)
	_ walletregistry.WalletStorage = (*client)(nil)
)
