package walletwatch

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/ethtracker/internal/pkg/logger"
	"github.com/gabapcia/ethtracker/internal/pkg/validator"
	"github.com/gabapcia/ethtracker/internal/pkg/x/chflow"
)

// Target describes the wallet a poller is responsible for.
type Target struct {
	WalletID int64
	Address  string
	UserID   int64
	ChatID   string
}

// poller checks a single wallet on every tick until the wallet disappears
// from storage or its context is canceled.
type poller struct {
	target Target
	runID  string

	svc    *service
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoller(svc *service, target Target, cancel context.CancelFunc) *poller {
	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}

	return &poller{
		target: target,
		runID:  runID.String(),
		svc:    svc,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (p *poller) logFields(kv ...any) []any {
	return append([]any{
		"poller.id", p.runID,
		"wallet.id", p.target.WalletID,
		"wallet.address", p.target.Address,
	}, kv...)
}

// run blocks until the poller stops. The first check happens one full
// interval after the call.
func (p *poller) run(ctx context.Context) {
	defer close(p.done)
	defer p.svc.registry.remove(p)

	ticker := time.NewTicker(p.svc.pollInterval)
	defer ticker.Stop()

	logger.Debug(ctx, "wallet poller started", p.logFields()...)

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			logger.Debug(ctx, "wallet poller canceled", p.logFields()...)
			return
		}

		if !p.cycle(ctx) {
			return
		}
	}
}

// cycle runs one liveness check plus the native and token steps.
// It returns false when the poller must stop.
func (p *poller) cycle(ctx context.Context) bool {
	ctx, span := tracer.Start(ctx, "walletwatch.poll", trace.WithAttributes(
		attribute.Int64("wallet.id", p.target.WalletID),
		attribute.String("wallet.address", p.target.Address),
	))
	defer span.End()

	result := "ok"
	defer func() {
		p.svc.metrics.cycles.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}()

	if _, err := p.svc.repository.FindWallet(ctx, p.target.UserID, p.target.Address); err != nil {
		if errors.Is(err, ErrWalletNotFound) {
			result = "stopped"
			logger.Info(ctx, "wallet no longer registered, stopping poller", p.logFields()...)
			return false
		}

		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "liveness check failed")
		logger.Error(ctx, "error checking wallet liveness", p.logFields("error", err)...)
		return true
	}

	for _, step := range []func(context.Context) error{p.checkNative, p.checkToken} {
		if err := step(ctx); err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, "storage failure")
			logger.Error(ctx, "error processing wallet transfers", p.logFields("error", err)...)
			return true
		}
	}

	return true
}

func (p *poller) checkNative(ctx context.Context) error {
	transfer, err := p.svc.ledger.LatestNativeTransfer(ctx, p.target.Address)
	if err != nil {
		logger.Warn(ctx, "error fetching native transfer", p.logFields("error", err)...)
		return nil
	}

	if transfer == nil {
		return nil
	}

	amount, err := ParseAmount(transfer.Value)
	if err != nil {
		logger.Warn(ctx, "skipping native transfer with invalid value", p.logFields("tx.hash", transfer.Hash, "error", err)...)
		return nil
	}

	if amount.IsZero() {
		return nil
	}

	return p.process(ctx, Transaction{
		From:     transfer.From,
		To:       transfer.To,
		Amount:   amount.String(),
		TxHash:   transfer.Hash,
		Token:    NativeToken,
		Decimals: DefaultDecimals(NativeToken),
		Status:   !transfer.Failed,
		WalletID: p.target.WalletID,
	})
}

func (p *poller) checkToken(ctx context.Context) error {
	transfer, err := p.svc.ledger.LatestTokenTransfer(ctx, p.target.Address)
	if err != nil {
		logger.Warn(ctx, "error fetching token transfer", p.logFields("error", err)...)
		return nil
	}

	if transfer == nil {
		return nil
	}

	amount, err := ParseAmount(transfer.Value)
	if err != nil {
		logger.Warn(ctx, "skipping token transfer with invalid value", p.logFields("tx.hash", transfer.Hash, "error", err)...)
		return nil
	}

	decimals, err := strconv.Atoi(transfer.TokenDecimal)
	if err != nil || decimals < 0 {
		decimals = DefaultDecimals(transfer.TokenName)
	}

	return p.process(ctx, Transaction{
		From:     transfer.From,
		To:       transfer.To,
		Amount:   amount.String(),
		TxHash:   transfer.Hash,
		Token:    transfer.TokenName,
		Decimals: decimals,
		Status:   true,
		WalletID: p.target.WalletID,
	})
}

// process deduplicates, stores and announces tx. Only storage failures are
// returned; everything else is logged.
func (p *poller) process(ctx context.Context, tx Transaction) error {
	key := tx.Key()

	seen, err := p.svc.seenCache.IsSeen(ctx, key.String())
	if err != nil {
		logger.Warn(ctx, "error reading seen cache", p.logFields("tx.hash", tx.TxHash, "error", err)...)
	}

	if seen {
		return nil
	}

	_, err = p.svc.repository.FindTransaction(ctx, key)
	switch {
	case err == nil:
		p.markSeen(ctx, key)
		return nil
	case !errors.Is(err, ErrTransactionNotFound):
		return err
	}

	if err := validator.Validate(tx); err != nil {
		logger.Warn(ctx, "skipping invalid transaction", p.logFields("tx.hash", tx.TxHash, "error", err)...)
		return nil
	}

	inserted, err := p.svc.repository.InsertTransaction(ctx, tx)
	if err != nil {
		return err
	}

	p.markSeen(ctx, key)

	if !inserted {
		return nil
	}

	p.svc.metrics.detected.Add(ctx, 1, metric.WithAttributes(attribute.String("token", tx.Token)))

	event := TransactionEvent{
		WalletID:    p.target.WalletID,
		Address:     p.target.Address,
		ChatID:      p.target.ChatID,
		Transaction: tx,
		DetectedAt:  time.Now().UTC(),
	}
	if err := p.svc.eventPublisher.PublishTransaction(ctx, event); err != nil {
		logger.Warn(ctx, "error publishing transaction event", p.logFields("tx.hash", tx.TxHash, "error", err)...)
	}

	if err := p.svc.notifier.Notify(ctx, p.target.ChatID, FormatTransfer(tx, p.svc.explorerURL)); err != nil {
		p.svc.metrics.notifyFailures.Add(ctx, 1)
		logger.Error(ctx, "error notifying wallet owner", p.logFields("tx.hash", tx.TxHash, "error", err)...)
	}

	return nil
}

func (p *poller) markSeen(ctx context.Context, key TransactionKey) {
	if err := p.svc.seenCache.MarkSeen(ctx, key.String()); err != nil {
		logger.Warn(ctx, "error writing seen cache", p.logFields("tx.hash", key.TxHash, "error", err)...)
	}
}
