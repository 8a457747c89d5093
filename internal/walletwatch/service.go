package walletwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceNotStarted is returned by Watch before Start succeeded.
	ErrServiceNotStarted = errors.New("service not started")

	// ErrAlreadyWatching is returned by Watch when the wallet already has a poller.
	ErrAlreadyWatching = errors.New("wallet already being watched")
)

const recoveryNoticeFormat = "Worker for %s wallet started."

// Service supervises one poller per tracked wallet.
type Service interface {
	// Start loads every wallet with its owner and spawns a poller for each.
	// Pollers live until their wallet is removed, Unwatch is called or the
	// service is closed.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Watch spawns a poller for a freshly registered wallet.
	//
	// Returns ErrServiceNotStarted before Start and ErrAlreadyWatching when
	// the wallet already has a poller.
	Watch(ctx context.Context, target Target) error

	// Unwatch stops the poller of walletID. It reports whether one was running.
	Unwatch(walletID int64) bool

	// ActiveWallets returns the number of running pollers.
	ActiveWallets() int

	// Close stops every poller and waits for them to return.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	baseCtx   context.Context

	registry *registry

	repository     Repository
	ledger         LedgerClient
	notifier       Notifier
	seenCache      SeenCache
	eventPublisher EventPublisher

	pollInterval   time.Duration
	explorerURL    string
	recoveryNotice bool
	metrics        metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	wallets, err := s.repository.ListWalletsWithOwners(ctx)
	if err != nil {
		cancel()
		return err
	}

	s.baseCtx = ctx
	s.closeFunc = func() {
		cancel()
		for _, p := range s.registry.drain() {
			<-p.done
		}
	}
	s.isStarted = true

	for _, w := range wallets {
		if w.Owner == nil {
			logger.Warn(ctx, "skipping wallet without owner", "wallet.id", w.ID, "wallet.address", w.Address)
			continue
		}

		target := Target{
			WalletID: w.ID,
			Address:  w.Address,
			UserID:   w.UserID,
			ChatID:   w.Owner.ChatID,
		}

		if err := s.spawn(target); err != nil {
			logger.Warn(ctx, "error recovering wallet poller", "wallet.id", w.ID, "error", err)
			continue
		}

		if s.recoveryNotice {
			if err := s.notifier.Notify(ctx, target.ChatID, fmt.Sprintf(recoveryNoticeFormat, w.Address)); err != nil {
				logger.Error(ctx, "error sending recovery notice", "wallet.id", w.ID, "error", err)
			}
		}
	}

	logger.Info(ctx, "wallet tracking started", "wallets.active", s.registry.len())
	return nil
}

func (s *service) Watch(ctx context.Context, target Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isStarted {
		return ErrServiceNotStarted
	}

	if err := s.spawn(target); err != nil {
		return err
	}

	logger.Info(ctx, "wallet poller spawned", "wallet.id", target.WalletID, "wallet.address", target.Address)
	return nil
}

// spawn must be called with s.mu held.
func (s *service) spawn(target Target) error {
	ctx, cancel := context.WithCancel(s.baseCtx)

	p := newPoller(s, target, cancel)
	if !s.registry.add(p) {
		cancel()
		return ErrAlreadyWatching
	}

	go p.run(ctx)
	return nil
}

func (s *service) Unwatch(walletID int64) bool {
	p := s.registry.take(walletID)
	if p == nil {
		return false
	}

	p.cancel()
	return true
}

func (s *service) ActiveWallets() int {
	return s.registry.len()
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.baseCtx = nil
	s.isStarted = false
}

type config struct {
	pollInterval   time.Duration
	explorerURL    string
	recoveryNotice bool
	seenCache      SeenCache
	eventPublisher EventPublisher
}

// Option configures the tracking service.
type Option func(*config)

// WithPollInterval sets the time between two checks of the same wallet.
// Default: 60 seconds. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithExplorerURL sets the block explorer base URL used in transfer links.
// Default: https://etherscan.io.
func WithExplorerURL(url string) Option {
	return func(c *config) {
		c.explorerURL = url
	}
}

// WithRecoveryNotice makes Start tell each owner that tracking resumed.
func WithRecoveryNotice(enabled bool) Option {
	return func(c *config) {
		c.recoveryNotice = enabled
	}
}

// WithSeenCache sets a cache consulted before the repository when
// deduplicating transactions.
func WithSeenCache(sc SeenCache) Option {
	return func(c *config) {
		c.seenCache = sc
	}
}

// WithEventPublisher sets a publisher that receives every new transaction.
func WithEventPublisher(ep EventPublisher) Option {
	return func(c *config) {
		c.eventPublisher = ep
	}
}

// New creates the tracking service. Call Start to recover pollers for the
// wallets already stored.
func New(repository Repository, ledger LedgerClient, notifier Notifier, opts ...Option) *service {
	cfg := config{
		pollInterval:   60 * time.Second,
		explorerURL:    "https://etherscan.io",
		recoveryNotice: false,
		seenCache:      nopSeenCache{},
		eventPublisher: nopEventPublisher{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		registry:       newRegistry(),
		repository:     repository,
		ledger:         ledger,
		notifier:       notifier,
		seenCache:      cfg.seenCache,
		eventPublisher: cfg.eventPublisher,
		pollInterval:   cfg.pollInterval,
		explorerURL:    cfg.explorerURL,
		recoveryNotice: cfg.recoveryNotice,
		metrics:        newMetrics(),
	}
}
