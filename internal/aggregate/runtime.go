// Package aggregate provides the generic load/replay/append lifecycle shared
// by all aggregates. It hides the event store behind two operations: Load
// (replay) and Execute (load, decide, append with bounded conflict retry).
package aggregate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
)

// State is implemented by aggregate state types: a pure fold step over
// events. The type folds into itself.
type State[S any] interface {
	Apply(e domain.Event) S
}

// DefaultConflictRetries bounds optimistic-concurrency retries in Execute.
const DefaultConflictRetries = 3

// DefaultSnapshotThreshold is how many events may accumulate past the last
// snapshot before Execute re-snapshots after a successful append.
const DefaultSnapshotThreshold = 100

// Runtime drives one aggregate type against the store.
type Runtime[S State[S]] struct {
	store             eventstore.Store
	aggregateType     string
	empty             func() S
	snapshotThreshold int
	conflictRetries   uint
}

// Option configures a Runtime.
type Option func(*config)

type config struct {
	snapshotThreshold int
	conflictRetries   uint
}

// WithSnapshotThreshold overrides the snapshot policy threshold.
func WithSnapshotThreshold(n int) Option {
	return func(c *config) { c.snapshotThreshold = n }
}

// WithConflictRetries overrides the bounded concurrency retry count.
func WithConflictRetries(n uint) Option {
	return func(c *config) { c.conflictRetries = n }
}

// NewRuntime creates a runtime for one aggregate type.
func NewRuntime[S State[S]](store eventstore.Store, aggregateType string, empty func() S, opts ...Option) *Runtime[S] {
	cfg := config{
		snapshotThreshold: DefaultSnapshotThreshold,
		conflictRetries:   DefaultConflictRetries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runtime[S]{
		store:             store,
		aggregateType:     aggregateType,
		empty:             empty,
		snapshotThreshold: cfg.snapshotThreshold,
		conflictRetries:   cfg.conflictRetries,
	}
}

// Load reconstructs (state, version) by snapshot plus replay.
func (r *Runtime[S]) Load(ctx context.Context, aggregateID string) (S, int64, error) {
	state, version, _, err := r.load(ctx, aggregateID)
	return state, version, err
}

func (r *Runtime[S]) load(ctx context.Context, aggregateID string) (S, int64, int, error) {
	state := r.empty()
	snap, events, err := r.store.LoadFromSnapshot(ctx, aggregateID)
	if err != nil {
		return state, 0, 0, err
	}

	var version int64
	if snap != nil {
		if err := json.Unmarshal(snap.Payload, &state); err != nil {
			return r.empty(), 0, 0, apperrors.Wrap(err, apperrors.KindPersistence,
				apperrors.CodeSnapshotCorrupt, "decode snapshot")
		}
		version = snap.Version
	}
	for _, e := range events {
		state = state.Apply(e)
		version = e.Version
	}
	return state, version, len(events), nil
}

// Execute performs load → decide → append, retrying on ConcurrencyConflict
// with a fresh load up to the bounded retry count before surfacing the
// failure. Decide runs against the freshly loaded state on every attempt, so
// a retry that observes a changed aggregate surfaces the new precondition
// error instead of blindly re-appending.
func (r *Runtime[S]) Execute(
	ctx context.Context,
	aggregateID string,
	meta domain.Metadata,
	decide func(state S) ([]domain.Payload, error),
) (S, int64, error) {
	var (
		finalState   S
		finalVersion int64
	)

	attempt := func() error {
		state, version, sinceSnapshot, err := r.load(ctx, aggregateID)
		if err != nil {
			return err
		}

		payloads, err := decide(state)
		if err != nil {
			return err
		}
		if len(payloads) == 0 {
			finalState, finalVersion = state, version
			return nil
		}

		events := make([]domain.Event, 0, len(payloads))
		for _, p := range payloads {
			events = append(events, domain.NewEvent(r.aggregateType, aggregateID, p, meta))
		}

		newVersion, err := r.store.Append(ctx, r.aggregateType, aggregateID, events, version)
		if err != nil {
			return err
		}
		for i := range events {
			events[i].Version = version + int64(i) + 1
			state = state.Apply(events[i])
		}
		finalState, finalVersion = state, newVersion

		r.maybeSnapshot(ctx, aggregateID, state, newVersion, sinceSnapshot+len(events))
		return nil
	}

	err := retry.Do(attempt,
		retry.Context(ctx),
		retry.Attempts(r.conflictRetries),
		retry.Delay(10*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return apperrors.IsKind(err, apperrors.KindConcurrencyConflict) && !apperrors.IsCancelled(err)
		}),
	)
	if err != nil {
		return r.empty(), 0, err
	}
	return finalState, finalVersion, nil
}

// maybeSnapshot applies the snapshot policy after a successful append. A
// failure here is logged, never surfaced: snapshots are an optimization.
func (r *Runtime[S]) maybeSnapshot(ctx context.Context, aggregateID string, state S, version int64, sinceSnapshot int) {
	if r.snapshotThreshold <= 0 || sinceSnapshot <= r.snapshotThreshold {
		return
	}
	payload, err := json.Marshal(state)
	if err != nil {
		logger.Warn("snapshot encode failed",
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		return
	}
	if err := r.store.SaveSnapshot(ctx, aggregateID, version, payload); err != nil {
		logger.Warn("snapshot save failed",
			zap.String("aggregate_id", aggregateID),
			zap.Int64("version", version),
			zap.Error(err),
		)
	}
}
