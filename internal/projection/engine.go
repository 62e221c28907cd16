// Package projection drives the read models off the event log. Each
// subscriber owns a durable cursor; the engine tails the log, applies
// events in global-sequence order, and commits every projection write in
// the same transaction as the cursor advance, so delivery is at-least-once
// and handlers stay idempotent.
package projection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/pkg/worker"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

// Subscriber consumes events inside the engine's transaction. Handle must be
// idempotent: after a crash between commit and acknowledgement the same
// event is delivered again.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error
}

// Config tunes the engine.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	RetryDelay   time.Duration
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval: 500 * time.Millisecond,
		BatchSize:    100,
		MaxAttempts:  5,
		RetryDelay:   100 * time.Millisecond,
	}
}

// Engine tails the event log for a set of subscribers, one loop each.
type Engine struct {
	events eventstore.Store
	store  readmodel.Store
	pool   *worker.Pool
	cfg    Config

	mu   sync.Mutex
	subs []Subscriber
	wake chan struct{}
	wg   sync.WaitGroup
}

// NewEngine creates an engine over the given stores.
func NewEngine(events eventstore.Store, store readmodel.Store, pool *worker.Pool, cfg Config) *Engine {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultConfig().RetryDelay
	}
	return &Engine{
		events: events,
		store:  store,
		pool:   pool,
		cfg:    cfg,
		wake:   make(chan struct{}, 1),
	}
}

// Register adds a subscriber. Must be called before Start.
func (e *Engine) Register(sub Subscriber) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, sub)
}

// Wake nudges all subscriber loops to poll immediately. Called after a
// command appends events so projections converge without waiting a full
// poll interval.
func (e *Engine) Wake() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Start launches one loop per subscriber on the worker pool and returns.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	subs := make([]Subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, sub := range subs {
		sub := sub
		e.wg.Add(1)
		err := e.pool.Submit(ctx, func(ctx context.Context) {
			defer e.wg.Done()
			e.run(ctx, sub)
		})
		if err != nil {
			e.wg.Done()
			return fmt.Errorf("start subscriber %s: %w", sub.Name(), err)
		}
	}
	return nil
}

// Drain blocks until all subscriber loops have exited. Call after the
// context passed to Start is cancelled.
func (e *Engine) Drain() {
	e.wg.Wait()
}

// CatchUp processes everything currently in the log for all subscribers,
// then returns. Used by tests and by the rebuild path.
func (e *Engine) CatchUp(ctx context.Context) error {
	e.mu.Lock()
	subs := make([]Subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, sub := range subs {
		for {
			n, err := e.drainBatch(ctx, sub)
			if err != nil {
				return err
			}
			if n == 0 {
				break
			}
		}
	}
	return nil
}

func (e *Engine) run(ctx context.Context, sub Subscriber) {
	logger.Info("projection subscriber started", zap.String("subscriber", sub.Name()))
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := e.drainBatch(ctx, sub); err != nil {
			if apperrors.IsCancelled(err) || ctx.Err() != nil {
				logger.Info("projection subscriber stopped", zap.String("subscriber", sub.Name()))
				return
			}
			logger.Error("projection batch failed",
				zap.String("subscriber", sub.Name()),
				zap.Error(err),
			)
		}

		select {
		case <-ctx.Done():
			logger.Info("projection subscriber stopped", zap.String("subscriber", sub.Name()))
			return
		case <-ticker.C:
		case <-e.wake:
		}
	}
}

// drainBatch applies one batch of pending events and returns how many were
// consumed (applied or dead-lettered).
func (e *Engine) drainBatch(ctx context.Context, sub Subscriber) (int, error) {
	cursor, err := e.store.Cursor(ctx, sub.Name())
	if err != nil {
		return 0, err
	}
	events, err := e.events.ReadFrom(ctx, cursor, e.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	for _, event := range events {
		if err := e.apply(ctx, sub, event); err != nil {
			return 0, err
		}
	}
	return len(events), nil
}

// apply delivers one event with bounded retries; after the retry budget is
// spent the event is dead-lettered and the cursor advances past it, so one
// poisoned event cannot wedge the subscriber.
func (e *Engine) apply(ctx context.Context, sub Subscriber, event domain.Event) error {
	eventCtx := tenant.With(ctx, event.Meta.TenantID)

	attempt := func() error {
		return e.store.InTx(eventCtx, func(tx readmodel.Tx) error {
			if err := sub.Handle(eventCtx, tx, event); err != nil {
				return err
			}
			return tx.SetCursor(eventCtx, sub.Name(), event.GlobalSequence)
		})
	}

	err := retry.Do(attempt,
		retry.Context(ctx),
		retry.Attempts(uint(e.cfg.MaxAttempts)),
		retry.Delay(e.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return !apperrors.IsCancelled(err) }),
	)
	if err == nil {
		return nil
	}
	if apperrors.IsCancelled(err) || ctx.Err() != nil {
		return err
	}

	logger.Error("event poisoned after retries",
		zap.String("subscriber", sub.Name()),
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.Type)),
		zap.Int64("global_sequence", event.GlobalSequence),
		zap.Int("attempts", e.cfg.MaxAttempts),
		zap.Error(err),
	)

	return e.store.InTx(eventCtx, func(tx readmodel.Tx) error {
		if dlErr := tx.InsertDeadLetter(eventCtx, readmodel.DeadLetterRow{
			Subscriber:     sub.Name(),
			GlobalSequence: event.GlobalSequence,
			EventID:        event.EventID,
			EventType:      string(event.Type),
			AggregateID:    event.AggregateID,
			TenantID:       event.Meta.TenantID,
			Attempts:       e.cfg.MaxAttempts,
			LastError:      err.Error(),
		}); dlErr != nil {
			return dlErr
		}
		return tx.SetCursor(eventCtx, sub.Name(), event.GlobalSequence)
	})
}
