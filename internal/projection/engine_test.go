package projection

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

type fixture struct {
	events *eventstore.MemoryStore
	store  *readmodel.MemoryStore
	engine *Engine
}

func newFixture() *fixture {
	events := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	store := readmodel.NewMemoryStore()
	engine := NewEngine(events, store, nil, Config{
		BatchSize:   10,
		MaxAttempts: 2,
		RetryDelay:  time.Millisecond,
	})
	return &fixture{events: events, store: store, engine: engine}
}

func (f *fixture) append(t *testing.T, tenantID domain.TenantID, aggregateType, aggregateID string, expected int64, payloads ...domain.Payload) {
	t.Helper()
	ctx := tenant.With(context.Background(), tenantID)
	meta := domain.Metadata{TenantID: tenantID, ActorID: "user-1", OccurredAt: time.Now().UTC()}
	events := make([]domain.Event, 0, len(payloads))
	for _, p := range payloads {
		events = append(events, domain.NewEvent(aggregateType, aggregateID, p, meta))
	}
	_, err := f.events.Append(ctx, aggregateType, aggregateID, events, expected)
	require.NoError(t, err)
}

func createdPayload() domain.VmRequestCreated {
	return domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		RequesterID: "user-1", RequesterName: "Riley", RequesterEmail: "riley@example.com",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	}
}

func TestRequestProjectorBuildsRows(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.engine.Register(NewRequestProjector(f.events))

	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 0, createdPayload())
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 1,
		domain.VmRequestApproved{ApprovedBy: "user-2", ApproverName: "Avery"})

	require.NoError(t, f.engine.CatchUp(context.Background()))

	ctx := tenant.With(context.Background(), "tenant-1")
	row, err := f.store.GetRequest(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, domain.RequestApproved, row.Status)
	assert.Equal(t, "Avery", row.DeciderName)
	assert.Equal(t, 4, row.CPUCores)
	assert.Equal(t, int64(2), row.Version)

	cursor, err := f.store.Cursor(context.Background(), SubscriberRequests)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cursor)

	// Re-delivery converges on the same row.
	require.NoError(t, f.engine.CatchUp(context.Background()))
	again, err := f.store.GetRequest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, row.Version, again.Version)
}

func TestTimelineProjectorAppendsEntries(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.engine.Register(NewTimelineProjector())

	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 0, createdPayload())
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 1,
		domain.VmRequestRejected{RejectedBy: "user-2", RejecterName: "Avery", Reason: "capacity exhausted this quarter"})

	require.NoError(t, f.engine.CatchUp(context.Background()))

	ctx := tenant.With(context.Background(), "tenant-1")
	rows, err := f.store.ListTimeline(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, readmodel.TimelineCreated, rows[0].EventType)
	assert.Equal(t, "Riley", rows[0].ActorName)
	assert.Equal(t, readmodel.TimelineRejected, rows[1].EventType)
	assert.Equal(t, "capacity exhausted this quarter", rows[1].Details)

	// Vm aggregate events are not part of the audit timeline.
	f.append(t, "tenant-1", domain.AggregateVm, "vm-agg-1", 0,
		domain.VmProvisioningStarted{RequestID: "req-1", Name: "PHOE-web-server", Size: domain.SizeM})
	require.NoError(t, f.engine.CatchUp(context.Background()))
	rows, err = f.store.ListTimeline(ctx, "req-1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// The ready entry names the VM: hypervisor id, hostname and address all
	// land in the audit trail.
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-2", 0, createdPayload())
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-2", 1,
		domain.VmRequestReady{VmwareVMID: "vm-0042", IPAddress: "10.0.0.5", Hostname: "phoe-web-server"})
	require.NoError(t, f.engine.CatchUp(context.Background()))
	rows, err = f.store.ListTimeline(ctx, "req-2")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, readmodel.TimelineVMReady, rows[1].EventType)
	assert.Contains(t, rows[1].Details, "vm-0042")
	assert.Contains(t, rows[1].Details, "phoe-web-server")
	assert.Contains(t, rows[1].Details, "10.0.0.5")
}

func TestProgressProjectorLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.engine.Register(NewProgressProjector(f.events))
	ctx := tenant.With(context.Background(), "tenant-1")

	f.append(t, "tenant-1", domain.AggregateVm, "vm-agg-1", 0,
		domain.VmProvisioningStarted{RequestID: "req-1", Name: "PHOE-web-server", Size: domain.SizeM})
	f.append(t, "tenant-1", domain.AggregateVm, "vm-agg-1", 1,
		domain.VmProvisioningProgressUpdated{Stage: domain.StageConfiguring})

	require.NoError(t, f.engine.CatchUp(context.Background()))

	row, err := f.store.GetProgress(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, domain.StageConfiguring, row.Stage)
	assert.Equal(t, 70, row.EstimatedRemainingSeconds)
	assert.Contains(t, row.StageTimestamps, domain.StageCloning)
	assert.Contains(t, row.StageTimestamps, domain.StageConfiguring)

	// Completion removes the progress row.
	f.append(t, "tenant-1", domain.AggregateVm, "vm-agg-1", 2,
		domain.VmProvisioned{VmwareVMID: "vm-0001", IPAddress: "10.0.0.5", Hostname: "h", PowerState: "poweredOn"})
	require.NoError(t, f.engine.CatchUp(context.Background()))

	row, err = f.store.GetProgress(ctx, "req-1")
	require.NoError(t, err)
	assert.Nil(t, row)
}

// poisonSubscriber fails on a specific event type, forever.
type poisonSubscriber struct {
	failOn domain.EventType
	seen   []domain.EventType
}

func (s *poisonSubscriber) Name() string { return "poison_test" }

func (s *poisonSubscriber) Handle(_ context.Context, _ readmodel.Tx, e domain.Event) error {
	s.seen = append(s.seen, e.Type)
	if e.Type == s.failOn {
		return fmt.Errorf("handler choked on %s", e.Type)
	}
	return nil
}

func TestPoisonedEventIsDeadLetteredAndSkipped(t *testing.T) {
	t.Parallel()

	f := newFixture()
	sub := &poisonSubscriber{failOn: domain.EventVmRequestApproved}
	f.engine.Register(sub)

	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 0, createdPayload())
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 1,
		domain.VmRequestApproved{ApprovedBy: "user-2", ApproverName: "Avery"})
	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 2,
		domain.VmRequestProvisioningStarted{VMID: "vm-agg-1"})

	require.NoError(t, f.engine.CatchUp(context.Background()))

	// The bad event was retried up to the budget, then skipped; the cursor
	// moved past it and the following event was still delivered.
	cursor, err := f.store.Cursor(context.Background(), sub.Name())
	require.NoError(t, err)
	assert.Equal(t, int64(3), cursor)
	assert.Equal(t, domain.EventVmRequestProvisioningStarted, sub.seen[len(sub.seen)-1])

	ctx := tenant.With(context.Background(), "tenant-1")
	letters, err := f.store.ListDeadLetters(ctx, 10)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "poison_test", letters[0].Subscriber)
	assert.Equal(t, string(domain.EventVmRequestApproved), letters[0].EventType)
	assert.Equal(t, int64(2), letters[0].GlobalSequence)
	assert.Equal(t, 2, letters[0].Attempts)
	assert.Contains(t, letters[0].LastError, "handler choked")
}

func TestTransientFailureRecoversWithoutDeadLetter(t *testing.T) {
	t.Parallel()

	f := newFixture()
	var calls int
	sub := &funcSubscriber{name: "flaky_test", handle: func(context.Context, readmodel.Tx, domain.Event) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("transient")
		}
		return nil
	}}
	f.engine.Register(sub)

	f.append(t, "tenant-1", domain.AggregateVmRequest, "req-1", 0, createdPayload())
	require.NoError(t, f.engine.CatchUp(context.Background()))

	cursor, err := f.store.Cursor(context.Background(), sub.Name())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cursor)

	letters, err := f.store.ListDeadLetters(tenant.With(context.Background(), "tenant-1"), 10)
	require.NoError(t, err)
	assert.Empty(t, letters)
}

type funcSubscriber struct {
	name   string
	handle func(ctx context.Context, tx readmodel.Tx, e domain.Event) error
}

func (s *funcSubscriber) Name() string { return s.name }

func (s *funcSubscriber) Handle(ctx context.Context, tx readmodel.Tx, e domain.Event) error {
	return s.handle(ctx, tx, e)
}
