package eventstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/tenant"
)

// MemoryStore is an in-process Store for tests and dev seeding. It applies
// the same tenant scoping and concurrency rules as the Postgres store, and
// round-trips payloads through the codec so replay equality is exercised.
type MemoryStore struct {
	codec *domain.Codec

	mu        sync.Mutex
	byAgg     map[string][]StoredEvent
	log       []StoredEvent
	snapshots map[string]Snapshot
	seq       int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(codec *domain.Codec) *MemoryStore {
	return &MemoryStore{
		codec:     codec,
		byAgg:     make(map[string][]StoredEvent),
		snapshots: make(map[string]Snapshot),
	}
}

var _ Store = (*MemoryStore)(nil)

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, aggregateType, aggregateID string, events []domain.Event, expectedVersion int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return expectedVersion, nil
	}
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.byAgg[aggregateID]
	var head int64
	if len(existing) > 0 {
		last := existing[len(existing)-1]
		head = last.Version
		if last.TenantID != tenantID {
			return 0, apperrors.TenantMismatch("aggregate belongs to another tenant")
		}
	}
	if head != expectedVersion {
		return 0, apperrors.ConcurrencyConflict(expectedVersion, head)
	}

	now := time.Now().UTC()
	version := expectedVersion
	for i := range events {
		e := events[i]
		version++
		e.Version = version
		if e.Meta.TenantID != tenantID {
			return 0, apperrors.TenantMismatch("event tenant disagrees with scope")
		}
		if e.Meta.OccurredAt.IsZero() {
			e.Meta.OccurredAt = now
		}
		recs, err := EncodeEvents(s.codec, []domain.Event{e})
		if err != nil {
			return 0, apperrors.Persistence(err, "encode event")
		}
		rec := recs[0]
		rec.AggregateType = aggregateType
		s.seq++
		rec.GlobalSequence = s.seq
		s.byAgg[aggregateID] = append(s.byAgg[aggregateID], rec)
		s.log = append(s.log, rec)
	}
	return version, nil
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, aggregateID string) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decodeScoped(s.byAgg[aggregateID], tenantID, 0)
}

// LoadFromSnapshot implements Store.
func (s *MemoryStore) LoadFromSnapshot(ctx context.Context, aggregateID string) (*Snapshot, []domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.byAgg[aggregateID]
	// Cross-tenant aggregates look absent, snapshot included.
	if len(recs) > 0 && recs[0].TenantID != tenantID {
		return nil, nil, nil
	}

	var snap *Snapshot
	var after int64
	if stored, ok := s.snapshots[aggregateID]; ok {
		copied := stored
		snap = &copied
		after = stored.Version
	}
	events, err := s.decodeScoped(recs, tenantID, after)
	if err != nil {
		return nil, nil, err
	}
	return snap, events, nil
}

// SaveSnapshot implements Store.
func (s *MemoryStore) SaveSnapshot(_ context.Context, aggregateID string, version int64, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[aggregateID] = Snapshot{
		AggregateID: aggregateID,
		Version:     version,
		Payload:     append([]byte(nil), payload...),
		CreatedAt:   time.Now().UTC(),
	}
	return nil
}

// ReadFrom implements Store.
func (s *MemoryStore) ReadFrom(ctx context.Context, afterSequence int64, batchSize int) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := sort.Search(len(s.log), func(i int) bool { return s.log[i].GlobalSequence > afterSequence })
	out := make([]domain.Event, 0, batchSize)
	for _, rec := range s.log[idx:] {
		if len(out) == batchSize {
			break
		}
		e, err := DecodeEvent(s.codec, rec)
		if err != nil {
			return nil, apperrors.Persistence(err, "decode event")
		}
		out = append(out, e)
	}
	return out, nil
}

// HeadSequence implements Store.
func (s *MemoryStore) HeadSequence(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq, nil
}

func (s *MemoryStore) decodeScoped(recs []StoredEvent, tenantID domain.TenantID, afterVersion int64) ([]domain.Event, error) {
	var out []domain.Event
	for _, rec := range recs {
		if rec.TenantID != tenantID {
			// Cross-tenant aggregates look absent, not forbidden.
			return nil, nil
		}
		if rec.Version <= afterVersion {
			continue
		}
		e, err := DecodeEvent(s.codec, rec)
		if err != nil {
			return nil, apperrors.Persistence(err, "decode event")
		}
		out = append(out, e)
	}
	return out, nil
}
