package main

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/ethtracker/internal/config"
	"github.com/gabapcia/ethtracker/internal/handlers/cli"
	healthhttp "github.com/gabapcia/ethtracker/internal/handlers/http"
	"github.com/gabapcia/ethtracker/internal/handlers/telegram"
	"github.com/gabapcia/ethtracker/internal/infra/ledger/etherscan"
	"github.com/gabapcia/ethtracker/internal/infra/notifier/kafka"
	telegramclient "github.com/gabapcia/ethtracker/internal/infra/notifier/telegram"
	"github.com/gabapcia/ethtracker/internal/infra/storage/postgres"
	"github.com/gabapcia/ethtracker/internal/infra/storage/redis"
	"github.com/gabapcia/ethtracker/internal/pipeline"
	"github.com/gabapcia/ethtracker/internal/pkg/logger"
	"github.com/gabapcia/ethtracker/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/ethtracker/internal/pkg/transport/http"
	"github.com/gabapcia/ethtracker/internal/walletregistry"
	"github.com/gabapcia/ethtracker/internal/walletwatch"
)

// longPollMargin is added to the Telegram update timeout so the HTTP client
// never gives up before the server answers a long poll.
const longPollMargin = 10 * time.Second

const connectMaxDelay = 10 * time.Second

type database interface {
	walletwatch.Repository
	walletregistry.WalletStorage
	Ping(ctx context.Context) error
	Migrate() error
	Close() error
}

// factory builds the process dependencies lazily and releases them on Close.
type factory struct {
	cfg config.Config

	mu      sync.Mutex
	db      database
	closers []func() error
}

var _ cli.Factory = (*factory)(nil)

func newFactory(cfg config.Config) *factory {
	return &factory{cfg: cfg}
}

// connect runs open until it succeeds, retrying with backoff while the
// dependency is still booting.
func (f *factory) connect(ctx context.Context, dependency string, open func() error) error {
	return retry.New(
		retry.WithAttempts(f.cfg.ConnectAttempts),
		retry.WithMaxDelay(connectMaxDelay),
		retry.WithOnRetry(func(n uint, err error) {
			logger.Warn(ctx, "dependency not ready", "dependency", dependency, "attempt", n+1, "error", err)
		}),
	).Execute(ctx, open)
}

func (f *factory) openDatabase(ctx context.Context) (database, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.db != nil {
		return f.db, nil
	}

	var db database
	err := f.connect(ctx, "postgres", func() error {
		c, err := postgres.NewClient(ctx, postgres.Config{
			DSN:             f.cfg.Database.URL,
			MaxOpenConns:    f.cfg.Database.MaxOpenConns,
			MaxIdleConns:    f.cfg.Database.MaxIdleConns,
			ConnMaxLifetime: f.cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			return err
		}

		db = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.db = db
	f.closers = append(f.closers, db.Close)
	return db, nil
}

func (f *factory) seenCache(ctx context.Context) (walletwatch.SeenCache, error) {
	var cache walletwatch.SeenCache
	err := f.connect(ctx, "redis", func() error {
		c, err := redis.NewClient(ctx, redis.Config{
			Addr:     f.cfg.Redis.Addr,
			Username: f.cfg.Redis.Username,
			Password: f.cfg.Redis.Password,
			DB:       f.cfg.Redis.DB,
			SeenTTL:  f.cfg.Redis.SeenTTL,
		})
		if err != nil {
			return err
		}

		f.addCloser(c.Close)
		cache = c
		return nil
	})

	return cache, err
}

func (f *factory) addCloser(fn func() error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closers = append(f.closers, fn)
}

func (f *factory) Migrator(ctx context.Context) (cli.Migrator, error) {
	return f.openDatabase(ctx)
}

// Registry returns a registry for read-only commands. Its tracker is never
// started, so wallets registered through it are picked up on the next start.
func (f *factory) Registry(ctx context.Context) (walletregistry.Service, error) {
	db, err := f.openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	tracker := walletwatch.New(db, nil, nil)
	return walletregistry.New(db, tracker), nil
}

func (f *factory) Pipeline(ctx context.Context) (pipeline.Service, error) {
	db, err := f.openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	if f.cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return nil, err
		}
	}

	bot, err := telegramclient.NewClient(
		transporthttp.NewClient(
			transporthttp.WithTimeout(time.Duration(f.cfg.Telegram.UpdateTimeout)*time.Second+longPollMargin),
		).StandardClient(),
		telegramclient.Config{
			Token:         f.cfg.Telegram.BotToken,
			APIEndpoint:   f.cfg.Telegram.APIEndpoint,
			UpdateTimeout: f.cfg.Telegram.UpdateTimeout,
		},
	)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "telegram bot authorized", "bot.username", bot.Username())

	ledger := etherscan.NewClient(
		transporthttp.NewClient(
			transporthttp.WithTimeout(f.cfg.Etherscan.Timeout),
			transporthttp.WithRetryMax(f.cfg.Etherscan.RetryMax),
			transporthttp.WithRateLimit(f.cfg.Etherscan.RateLimit, 1),
		).StandardClient(),
		etherscan.Config{
			BaseURL: f.cfg.Etherscan.BaseURL,
			APIKey:  f.cfg.Etherscan.APIKey,
			ChainID: f.cfg.Etherscan.ChainID,
		},
	)

	opts := []walletwatch.Option{
		walletwatch.WithPollInterval(f.cfg.Tracker.PollInterval),
		walletwatch.WithExplorerURL(f.cfg.Etherscan.ExplorerURL),
		walletwatch.WithRecoveryNotice(f.cfg.Tracker.RecoveryNotice),
	}

	if f.cfg.Redis.Enabled() {
		cache, err := f.seenCache(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, walletwatch.WithSeenCache(cache))
	}

	if f.cfg.Kafka.Enabled() {
		publisher := kafka.NewPublisher(f.cfg.Kafka.Brokers, f.cfg.Kafka.Topic)
		f.addCloser(publisher.Close)
		opts = append(opts, walletwatch.WithEventPublisher(publisher))
	}

	tracker := walletwatch.New(db, ledger, bot, opts...)
	registry := walletregistry.New(db, tracker)

	return pipeline.New(
		pipeline.Stage{Name: "walletwatch", Component: tracker},
		pipeline.Stage{Name: "telegram", Component: telegram.New(bot, bot, registry, f.cfg.Etherscan.ExplorerURL)},
		pipeline.Stage{Name: "health", Component: healthhttp.New(f.cfg.HTTPAddr, db, tracker)},
	), nil
}

// Close releases every dependency in reverse creation order.
func (f *factory) Close(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil {
			logger.Error(ctx, "error releasing dependency", "error", err)
		}
	}
	f.closers = nil
}
