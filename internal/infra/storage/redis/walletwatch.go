package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

const (
	// walletwatchKeyPrefix is the Redis key namespace for wallet tracking entries.
	walletwatchKeyPrefix = "walletwatch"

	walletwatchSeenValue = "1"
)

// walletwatchSeenKey builds the Redis key remembering a handled transaction.
func walletwatchSeenKey(key string) string {
	return fmt.Sprintf("%s:seen:%s", walletwatchKeyPrefix, key)
}

// IsSeen reports whether key was marked within the configured TTL.
func (c *client) IsSeen(ctx context.Context, key string) (bool, error) {
	n, err := c.conn.Exists(ctx, walletwatchSeenKey(key)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// MarkSeen remembers key for the configured TTL. An existing entry keeps its
// original expiration.
func (c *client) MarkSeen(ctx context.Context, key string) error {
	return c.conn.SetNX(ctx, walletwatchSeenKey(key), walletwatchSeenValue, c.seenTTL).Err()
}

// Ensure the client satisfies the SeenCache interface at compile time.
var _ walletwatch.SeenCache = new(client)
