package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/tenant"
)

// PostgresStore is the production event log. DDL and row-level-security
// policies live in embedded migrations; every transaction pins the tenant
// scope with set_config so the database enforces isolation independently of
// the query predicates.
type PostgresStore struct {
	pool  *pgxpool.Pool
	codec *domain.Codec
}

// NewPostgresStore creates a store over the shared pool.
func NewPostgresStore(pool *pgxpool.Pool, codec *domain.Codec) *PostgresStore {
	return &PostgresStore{pool: pool, codec: codec}
}

var _ Store = (*PostgresStore)(nil)

const uniqueViolation = "23505"

// Append implements Store. The version check and the inserts share one
// transaction; commit implies durability.
func (s *PostgresStore) Append(ctx context.Context, aggregateType, aggregateID string, events []domain.Event, expectedVersion int64) (int64, error) {
	if len(events) == 0 {
		return expectedVersion, nil
	}
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, apperrors.Persistence(err, "begin append tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := setTenantScope(ctx, tx, tenantID); err != nil {
		return 0, err
	}

	// Lock the head row so concurrent appends serialize on the version check.
	var head int64
	var headTenant string
	err = tx.QueryRow(ctx,
		`SELECT version, tenant_id FROM events
		 WHERE aggregate_id = $1 ORDER BY version DESC LIMIT 1 FOR UPDATE`,
		aggregateID,
	).Scan(&head, &headTenant)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		head = 0
	case err != nil:
		return 0, apperrors.Persistence(err, "read aggregate head")
	case headTenant != tenantID.String():
		// Only reachable when the role bypasses RLS; under an enforced policy
		// foreign rows are invisible and head stays 0.
		return 0, apperrors.TenantMismatch("aggregate belongs to another tenant")
	}
	if head != expectedVersion {
		// A zero head can mean "new aggregate" or "aggregate hidden by the
		// tenant policy". Tell them apart before blaming concurrency.
		if head == 0 && s.foreignAggregate(ctx, aggregateID, tenantID) {
			return 0, apperrors.TenantMismatch("aggregate belongs to another tenant")
		}
		return 0, apperrors.ConcurrencyConflict(expectedVersion, head)
	}

	version := expectedVersion
	for i := range events {
		e := events[i]
		version++
		e.Version = version
		if e.Meta.TenantID != tenantID {
			return 0, apperrors.TenantMismatch("event tenant disagrees with scope")
		}
		recs, err := EncodeEvents(s.codec, []domain.Event{e})
		if err != nil {
			return 0, apperrors.Persistence(err, "encode event")
		}
		rec := recs[0]
		_, err = tx.Exec(ctx,
			`INSERT INTO events
			   (event_id, aggregate_id, aggregate_type, version, event_type,
			    payload, tenant_id, actor_id, correlation_id, occurred_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),NULLIF($9,''), COALESCE(NULLIF($10::timestamptz, '0001-01-01T00:00:00Z'::timestamptz), now()))`,
			rec.EventID, aggregateID, aggregateType, rec.Version, string(rec.Type),
			rec.Payload, tenantID.String(), rec.ActorID.String(), rec.CorrelationID.String(),
			rec.OccurredAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				if head == 0 && s.foreignAggregate(ctx, aggregateID, tenantID) {
					return 0, apperrors.TenantMismatch("aggregate belongs to another tenant")
				}
				// Lost the race to another append between our check and insert.
				return 0, apperrors.ConcurrencyConflict(expectedVersion, rec.Version)
			}
			return 0, apperrors.Persistence(err, "insert event")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperrors.Persistence(err, "commit append tx")
	}
	return version, nil
}

// Load implements Store.
func (s *PostgresStore) Load(ctx context.Context, aggregateID string) ([]domain.Event, error) {
	return s.loadAfter(ctx, aggregateID, 0)
}

// LoadFromSnapshot implements Store.
func (s *PostgresStore) LoadFromSnapshot(ctx context.Context, aggregateID string) (*Snapshot, []domain.Event, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, apperrors.Persistence(err, "begin snapshot tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := setTenantScope(ctx, tx, tenantID); err != nil {
		return nil, nil, err
	}

	var snap *Snapshot
	row := tx.QueryRow(ctx,
		`SELECT s.aggregate_id, s.version, s.payload, s.created_at
		 FROM snapshots s
		 JOIN events e ON e.aggregate_id = s.aggregate_id AND e.version = 1
		 WHERE s.aggregate_id = $1 AND e.tenant_id = $2`,
		aggregateID, tenantID.String(),
	)
	var loaded Snapshot
	err = row.Scan(&loaded.AggregateID, &loaded.Version, &loaded.Payload, &loaded.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// No snapshot, or aggregate invisible in this tenant scope.
	case err != nil:
		return nil, nil, apperrors.Persistence(err, "load snapshot")
	default:
		snap = &loaded
	}

	var after int64
	if snap != nil {
		after = snap.Version
	}
	events, err := s.queryAfter(ctx, tx, aggregateID, tenantID, after)
	if err != nil {
		return nil, nil, err
	}
	return snap, events, nil
}

// SaveSnapshot implements Store. Replace-or-insert: at most one live
// snapshot per aggregate.
func (s *PostgresStore) SaveSnapshot(ctx context.Context, aggregateID string, version int64, payload []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO snapshots (aggregate_id, version, payload, created_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (aggregate_id)
		 DO UPDATE SET version = EXCLUDED.version, payload = EXCLUDED.payload, created_at = now()`,
		aggregateID, version, payload,
	)
	if err != nil {
		return apperrors.Persistence(err, "save snapshot")
	}
	return nil
}

// ReadFrom implements Store. Runs under the system scope: the projection
// engine re-establishes per-event tenant scope before dispatch.
func (s *PostgresStore) ReadFrom(ctx context.Context, afterSequence int64, batchSize int) ([]domain.Event, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.Persistence(err, "begin read tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := setSystemScope(ctx, tx); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT global_sequence, event_id, aggregate_id, aggregate_type, version,
		        event_type, payload, tenant_id, COALESCE(actor_id::text, ''),
		        COALESCE(correlation_id::text, ''), occurred_at
		 FROM events
		 WHERE global_sequence > $1
		 ORDER BY global_sequence ASC
		 LIMIT $2`,
		afterSequence, batchSize,
	)
	if err != nil {
		return nil, apperrors.Persistence(err, "read events")
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

// HeadSequence implements Store.
func (s *PostgresStore) HeadSequence(ctx context.Context) (int64, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return 0, apperrors.Persistence(err, "begin head tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := setSystemScope(ctx, tx); err != nil {
		return 0, err
	}
	var head int64
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(global_sequence), 0) FROM events`).Scan(&head); err != nil {
		return 0, apperrors.Persistence(err, "read head sequence")
	}
	return head, nil
}

// loadAfter runs under a tenant-pinned transaction so the RLS policy sees
// the scope.
func (s *PostgresStore) loadAfter(ctx context.Context, aggregateID string, afterVersion int64) ([]domain.Event, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.Persistence(err, "begin load tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := setTenantScope(ctx, tx, tenantID); err != nil {
		return nil, err
	}
	return s.queryAfter(ctx, tx, aggregateID, tenantID, afterVersion)
}

func (s *PostgresStore) queryAfter(ctx context.Context, tx pgx.Tx, aggregateID string, tenantID domain.TenantID, afterVersion int64) ([]domain.Event, error) {
	rows, err := tx.Query(ctx,
		`SELECT global_sequence, event_id, aggregate_id, aggregate_type, version,
		        event_type, payload, tenant_id, COALESCE(actor_id::text, ''),
		        COALESCE(correlation_id::text, ''), occurred_at
		 FROM events
		 WHERE aggregate_id = $1 AND tenant_id = $2 AND version > $3
		 ORDER BY version ASC`,
		aggregateID, tenantID.String(), afterVersion,
	)
	if err != nil {
		return nil, apperrors.Persistence(err, "load events")
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

func (s *PostgresStore) scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var out []domain.Event
	for rows.Next() {
		var rec StoredEvent
		var eventType, tenantID, actorID, correlationID string
		if err := rows.Scan(
			&rec.GlobalSequence, &rec.EventID, &rec.AggregateID, &rec.AggregateType,
			&rec.Version, &eventType, &rec.Payload, &tenantID, &actorID,
			&correlationID, &rec.OccurredAt,
		); err != nil {
			return nil, apperrors.Persistence(err, "scan event")
		}
		rec.Type = domain.EventType(eventType)
		rec.TenantID = domain.TenantID(tenantID)
		rec.ActorID = domain.UserID(actorID)
		rec.CorrelationID = domain.CorrelationID(correlationID)

		e, err := DecodeEvent(s.codec, rec)
		if err != nil {
			return nil, apperrors.Persistence(err, "decode event")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Persistence(err, "iterate events")
	}
	return out, nil
}

// foreignAggregate reports whether the aggregate has rows outside the given
// tenant. Runs under the system scope in its own transaction so the answer
// does not depend on whether the current role is subject to the policy.
func (s *PostgresStore) foreignAggregate(ctx context.Context, aggregateID string, tenantID domain.TenantID) bool {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return false
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := setSystemScope(ctx, tx); err != nil {
		return false
	}
	var foreign bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE aggregate_id = $1 AND tenant_id <> $2)`,
		aggregateID, tenantID.String(),
	).Scan(&foreign); err != nil {
		return false
	}
	return foreign
}

func setTenantScope(ctx context.Context, tx pgx.Tx, tenantID domain.TenantID) error {
	if _, err := tx.Exec(ctx, `SELECT set_config('app.tenant_id', $1, true)`, tenantID.String()); err != nil {
		return apperrors.Persistence(err, "set tenant scope")
	}
	return nil
}

func setSystemScope(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT set_config('app.scope', 'system', true)`); err != nil {
		return apperrors.Persistence(err, "set system scope")
	}
	return nil
}

// Migrate applies the event-store DDL and RLS policies. Idempotent.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{MigrationsTable: "eventstore_schema_migrations"})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply event store migrations: %w", err)
	}
	logger.Info("Event store migrations applied", zap.String("table", "events"))
	return nil
}
