// Package telegram talks to the Telegram Bot API. It delivers notifications
// and exposes the stream of incoming updates.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// ErrInvalidChatID is returned when a chat id is not a Telegram numeric id.
var ErrInvalidChatID = errors.New("invalid chat id")

// Config holds the bot settings.
type Config struct {
	Token string

	// APIEndpoint is a format string taking the token and the method.
	// Defaults to tgbotapi.APIEndpoint.
	APIEndpoint string

	// UpdateTimeout is the long polling timeout in seconds.
	UpdateTimeout int
}

type client struct {
	bot           *tgbotapi.BotAPI
	updateTimeout int
}

var _ walletwatch.Notifier = (*client)(nil)

// NewClient authenticates the bot and returns a client sending requests
// through httpClient.
func NewClient(httpClient tgbotapi.HTTPClient, cfg Config) (*client, error) {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, httpClient)
	if err != nil {
		return nil, err
	}

	return &client{
		bot:           bot,
		updateTimeout: cfg.UpdateTimeout,
	}, nil
}

// Username returns the bot account name.
func (c *client) Username() string {
	return c.bot.Self.UserName
}

// Notify sends text to chatID.
func (c *client) Notify(ctx context.Context, chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChatID, chatID)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.DisableWebPagePreview = true

	_, err = c.bot.Send(msg)
	return err
}

// Updates starts long polling and returns the channel of incoming updates.
func (c *client) Updates() <-chan tgbotapi.Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.updateTimeout

	return c.bot.GetUpdatesChan(u)
}

// StopUpdates stops long polling.
func (c *client) StopUpdates() {
	c.bot.StopReceivingUpdates()
}
