package walletwatch

import (
	"context"
	"time"
)

// Notifier delivers a text message to a chat.
type Notifier interface {
	Notify(ctx context.Context, chatID, text string) error
}

// SeenCache remembers transaction keys that were already handled so pollers
// can skip the storage lookup. Entries may expire; the Repository stays the
// source of truth.
type SeenCache interface {
	IsSeen(ctx context.Context, key string) (bool, error)
	MarkSeen(ctx context.Context, key string) error
}

// TransactionEvent is published for every newly stored transaction.
type TransactionEvent struct {
	WalletID    int64       `json:"wallet_id"`
	Address     string      `json:"address"`
	ChatID      string      `json:"chat_id"`
	Transaction Transaction `json:"transaction"`
	DetectedAt  time.Time   `json:"detected_at"`
}

// EventPublisher forwards detected transactions to downstream consumers.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, event TransactionEvent) error
}

type nopSeenCache struct{}

func (nopSeenCache) IsSeen(context.Context, string) (bool, error) { return false, nil }

func (nopSeenCache) MarkSeen(context.Context, string) error { return nil }

type nopEventPublisher struct{}

func (nopEventPublisher) PublishTransaction(context.Context, TransactionEvent) error { return nil }
