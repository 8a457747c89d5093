// Package retry wraps avast/retry-go behind a small interface with
// functional options. It applies exponential backoff and honors context
// cancellation. The service uses it for start-up connectivity checks, where
// a dependency may still be booting when the process starts.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithOnRetry(func(n uint, err error) {
//	    logger.Warn(ctx, "postgres not ready", "attempt", n, "error", err)
//	}))
//	err := r.Execute(ctx, func() error { return db.PingContext(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retries.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted or
	// ctx is done. The operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint                     // maximum number of attempts, including the first
	delay       time.Duration            // base delay between attempts
	maxDelay    time.Duration            // cap for the exponential delay
	lastErrOnly bool                     // return only the last error instead of all of them
	onRetry     func(n uint, err error) // called after every failed attempt
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry on top of retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry.
var _ Retry = (*retrier)(nil)

// New returns a Retry configured with opts.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay, last error only,
// no retry callback.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		onRetry:     func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. The first attempt runs immediately; later ones
// wait with exponential backoff.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.OnRetry(r.cfg.onRetry),
		retry.Context(ctx),
	)
}

// WithAttempts sets the maximum number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used by the exponential backoff.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between two attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the final error
// (true) or the combination of every attempt's error (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after each failed attempt with
// the zero-based attempt number and its error.
func WithOnRetry(f func(n uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
