// Package kafka publishes detected wallet transactions to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	writer messageWriter
}

var _ walletwatch.EventPublisher = (*publisher)(nil)

// buildMessage encodes event as JSON keyed by wallet id so that every event
// of a wallet lands on the same partition.
func buildMessage(event walletwatch.TransactionEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.WalletID, 10)),
		Value: value,
		Time:  event.DetectedAt,
		Headers: []kafka.Header{
			{Key: "token", Value: []byte(event.Transaction.Token)},
			{Key: "tx_hash", Value: []byte(event.Transaction.TxHash)},
		},
	}, nil
}

func (p *publisher) PublishTransaction(ctx context.Context, event walletwatch.TransactionEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}

// NewPublisher creates a publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string) *publisher {
	return &publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}
