// Package redis provides the Redis-backed seen cache used by wallet pollers.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Config holds the connection settings.
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int

	// SeenTTL bounds how long a handled transaction key is remembered.
	// Defaults to 24 hours.
	SeenTTL time.Duration
}

type client struct {
	conn    *redis.Client
	seenTTL time.Duration
}

func (c *client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx).Err()
}

func (c *client) Close() error {
	return c.conn.Close()
}

func NewClient(ctx context.Context, cfg Config) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, cfg.SeenTTL), nil
}

func newClient(conn *redis.Client, seenTTL time.Duration) *client {
	if seenTTL <= 0 {
		seenTTL = 24 * time.Hour
	}

	return &client{
		conn:    conn,
		seenTTL: seenTTL,
	}
}
