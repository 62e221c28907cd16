// Package eventstore persists the authoritative event log: append-only,
// per-aggregate versioned, tenant-scoped, with optimistic concurrency and
// snapshots.
//
// Two implementations share the Store contract: PostgresStore (production,
// raw pgx over migrate-managed DDL with row-level security) and MemoryStore
// (tests and dev seeding).
package eventstore

import (
	"context"
	"time"

	"vc-drover.io/drover/internal/domain"
)

// StoredEvent is the raw log record. Payload bytes are codec-managed; the
// store treats them as opaque.
type StoredEvent struct {
	GlobalSequence int64
	EventID        string
	AggregateID    string
	AggregateType  string
	Version        int64
	Type           domain.EventType
	Payload        []byte
	TenantID       domain.TenantID
	ActorID        domain.UserID
	CorrelationID  domain.CorrelationID
	OccurredAt     time.Time
}

// Snapshot is a persisted aggregate state at a version. A snapshot at
// version V is equivalent to replaying events 1..V.
type Snapshot struct {
	AggregateID string
	Version     int64
	Payload     []byte
	CreatedAt   time.Time
}

// Store is the event log contract.
//
// Append, Load and LoadFromSnapshot enforce tenant scoping at the storage
// layer: the current tenant comes from the context, and any mismatch with
// stored events is reported as not-found or TenantMismatch — a compromised
// caller cannot read another tenant's events. ReadFrom is the trusted
// subscription primitive for the projection engine, which re-establishes the
// per-event tenant scope before invoking handlers.
type Store interface {
	// Append atomically appends events at expectedVersion and returns the
	// new version. Versions assigned are expectedVersion+1 .. +len(events).
	// Fails with ConcurrencyConflict when the stored head version differs,
	// and with TenantMismatch when the aggregate belongs to another tenant.
	// A successful return implies the events are durable.
	Append(ctx context.Context, aggregateType, aggregateID string, events []domain.Event, expectedVersion int64) (int64, error)

	// Load returns the aggregate's events ordered by version ascending,
	// filtered to the current tenant scope.
	Load(ctx context.Context, aggregateID string) ([]domain.Event, error)

	// LoadFromSnapshot returns the latest snapshot (nil if none) plus the
	// events after it.
	LoadFromSnapshot(ctx context.Context, aggregateID string) (*Snapshot, []domain.Event, error)

	// SaveSnapshot replaces or inserts the snapshot for the aggregate.
	// Idempotent.
	SaveSnapshot(ctx context.Context, aggregateID string, version int64, payload []byte) error

	// ReadFrom returns up to batchSize events with GlobalSequence strictly
	// greater than afterSequence, ascending.
	ReadFrom(ctx context.Context, afterSequence int64, batchSize int) ([]domain.Event, error)

	// HeadSequence returns the highest assigned global sequence (0 when the
	// log is empty).
	HeadSequence(ctx context.Context) (int64, error)
}

// EncodeEvents turns domain events into stored records using the codec.
func EncodeEvents(codec *domain.Codec, events []domain.Event) ([]StoredEvent, error) {
	out := make([]StoredEvent, 0, len(events))
	for _, e := range events {
		payload, err := codec.Encode(e.Payload)
		if err != nil {
			return nil, err
		}
		out = append(out, StoredEvent{
			EventID:       e.EventID,
			AggregateID:   e.AggregateID,
			AggregateType: e.AggregateType,
			Version:       e.Version,
			Type:          e.Type,
			Payload:       payload,
			TenantID:      e.Meta.TenantID,
			ActorID:       e.Meta.ActorID,
			CorrelationID: e.Meta.CorrelationID,
			OccurredAt:    e.Meta.OccurredAt,
		})
	}
	return out, nil
}

// DecodeEvent turns a stored record back into a domain event.
func DecodeEvent(codec *domain.Codec, rec StoredEvent) (domain.Event, error) {
	payload, err := codec.Decode(rec.Type, rec.Payload)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		EventID:        rec.EventID,
		AggregateType:  rec.AggregateType,
		AggregateID:    rec.AggregateID,
		Version:        rec.Version,
		Type:           rec.Type,
		Payload:        payload,
		GlobalSequence: rec.GlobalSequence,
		Meta: domain.Metadata{
			TenantID:      rec.TenantID,
			ActorID:       rec.ActorID,
			CorrelationID: rec.CorrelationID,
			OccurredAt:    rec.OccurredAt,
		},
	}, nil
}
