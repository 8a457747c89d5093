// Package telegram routes chat commands to the wallet registry and replies
// to the sender.
//
// Supported commands:
//
//   - /start: registers the sender.
//   - /add <address>: starts tracking a wallet.
//   - /remove <address>: stops tracking a wallet.
//   - /list: lists tracked wallets.
//   - /txlist <address>: lists transactions recorded for a wallet.
package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gabapcia/ethtracker/internal/walletregistry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// UpdateSource yields incoming chat updates.
type UpdateSource interface {
	Updates() <-chan tgbotapi.Update
	StopUpdates()
}

// Replier sends a text message back to a chat.
type Replier interface {
	Notify(ctx context.Context, chatID, text string) error
}

// Service consumes chat updates until closed.
type Service interface {
	Start(ctx context.Context) error
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	source      UpdateSource
	replier     Replier
	registry    walletregistry.Service
	explorerURL string
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	updates := s.source.Updates()
	go func() {
		defer close(done)
		s.handleUpdates(ctx, updates)
	}()

	s.closeFunc = func() {
		cancel()
		s.source.StopUpdates()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New creates the chat router. explorerURL prefixes the wallet links sent by /list.
func New(source UpdateSource, replier Replier, registry walletregistry.Service, explorerURL string) *service {
	return &service{
		source:      source,
		replier:     replier,
		registry:    registry,
		explorerURL: explorerURL,
	}
}
