package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
	"github.com/gabapcia/ethtracker/internal/pkg/x/chflow"
	"github.com/gabapcia/ethtracker/internal/walletregistry"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

const (
	commandStart  = "start"
	commandAdd    = "add"
	commandRemove = "remove"
	commandList   = "list"
	commandTxList = "txlist"
)

const (
	replyStart          = "Send wallet address: /add <wallet_address>"
	replyInvalidAddress = "Invalid eth address"
	replyNotRegistered  = "Please send /start command."
	replyAlreadyTracked = "This wallet address is currently being tracked."
	replyAdded          = "The wallet added to tracker."
	replyNotTracked     = "This wallet address is not tracked by you."
	replyRemoved        = "The wallet removed from tracker."
	replyListHeader     = "Here is your wallets that are tracking by me:"
	replyTxListHeader   = "Here is transactions for your address:"
	replyInternalError  = "Something went wrong, please try again later."
	replyHelp           = "Available commands:\n/start\n/add <wallet_address>\n/remove <wallet_address>\n/list\n/txlist <wallet_address>"
)

// errorReply maps a registry error to the message shown to the user.
func errorReply(err error) string {
	switch {
	case errors.Is(err, walletregistry.ErrInvalidAddress):
		return replyInvalidAddress
	case errors.Is(err, walletregistry.ErrUserNotRegistered):
		return replyNotRegistered
	case errors.Is(err, walletregistry.ErrWalletAlreadyRegistered):
		return replyAlreadyTracked
	case errors.Is(err, walletregistry.ErrWalletNotTracked):
		return replyNotTracked
	default:
		return replyInternalError
	}
}

func (s *service) handleUpdates(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		update, ok := chflow.Receive(ctx, updates)
		if !ok {
			return
		}

		s.handleUpdate(ctx, update)
	}
}

func (s *service) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	for _, text := range s.dispatch(ctx, chatID, msg.Command(), strings.TrimSpace(msg.CommandArguments())) {
		if err := s.replier.Notify(ctx, chatID, text); err != nil {
			logger.Error(ctx, "error replying to chat", "chat.id", chatID, "command", msg.Command(), "error", err)
			return
		}
	}
}

// dispatch runs command and returns the replies in the order they must be sent.
func (s *service) dispatch(ctx context.Context, chatID, command, args string) []string {
	logger.Debug(ctx, "chat command received", "chat.id", chatID, "command", command)

	switch command {
	case commandStart:
		if _, err := s.registry.Register(ctx, chatID); err != nil {
			logger.Error(ctx, "error registering user", "chat.id", chatID, "error", err)
			return []string{errorReply(err)}
		}
		return []string{replyStart}

	case commandAdd:
		wallet, err := s.registry.StartWatching(ctx, chatID, args)
		if err != nil {
			if wallet.ID != 0 {
				// Stored but not polled yet: it is recovered on the next start.
				return []string{replyAdded}
			}
			return []string{s.logReply(ctx, chatID, command, err)}
		}
		return []string{replyAdded}

	case commandRemove:
		if err := s.registry.StopWatching(ctx, chatID, args); err != nil {
			return []string{s.logReply(ctx, chatID, command, err)}
		}
		return []string{replyRemoved}

	case commandList:
		wallets, err := s.registry.ListWallets(ctx, chatID)
		if err != nil {
			return []string{s.logReply(ctx, chatID, command, err)}
		}

		replies := []string{replyListHeader}
		for _, w := range wallets {
			replies = append(replies, fmt.Sprintf("%s/address/%s", strings.TrimRight(s.explorerURL, "/"), w.Address))
		}
		return replies

	case commandTxList:
		txs, err := s.registry.ListTransactions(ctx, chatID, args)
		if err != nil {
			return []string{s.logReply(ctx, chatID, command, err)}
		}

		replies := []string{replyTxListHeader}
		for _, tx := range txs {
			replies = append(replies, walletwatch.FormatTransfer(tx, s.explorerURL))
		}
		return replies

	default:
		return []string{replyHelp}
	}
}

// logReply logs unexpected failures and returns the user-facing message.
func (s *service) logReply(ctx context.Context, chatID, command string, err error) string {
	reply := errorReply(err)
	if reply == replyInternalError {
		logger.Error(ctx, "error handling chat command", "chat.id", chatID, "command", command, "error", err)
	}
	return reply
}
