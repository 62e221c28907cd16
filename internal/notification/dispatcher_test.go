package notification

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

func TestLoadAndRenderTemplates(t *testing.T) {
	t.Parallel()

	templates, err := LoadTemplates("")
	require.NoError(t, err)

	t.Run("approved", func(t *testing.T) {
		title, message, err := templates.Render(TypeRequestApproved, TemplateData{
			VMName: "web-server", Decider: "Avery Admin",
		})
		require.NoError(t, err)
		assert.Equal(t, `Request approved: web-server`, title)
		assert.Contains(t, message, "Avery Admin approved")
	})

	t.Run("rejected carries the reason", func(t *testing.T) {
		_, message, err := templates.Render(TypeRequestRejected, TemplateData{
			VMName: "web-server", Decider: "Avery Admin", Reason: "capacity exhausted",
		})
		require.NoError(t, err)
		assert.Contains(t, message, "Reason: capacity exhausted")
	})

	t.Run("vm ready includes the address", func(t *testing.T) {
		_, message, err := templates.Render(TypeVMReady, TemplateData{
			VMName: "web-server", IPAddress: "10.0.0.5",
		})
		require.NoError(t, err)
		assert.Contains(t, message, "10.0.0.5")
	})

	t.Run("unknown type errors", func(t *testing.T) {
		_, _, err := templates.Render("SOMETHING_ELSE", TemplateData{})
		assert.Error(t, err)
	})
}

func TestLoadTemplatesFromMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadTemplates("/does/not/exist.yaml")
	assert.Error(t, err)
}

// recordingSender captures outbound notifications; when failing is set every
// send errors.
type recordingSender struct {
	sent    []Outbound
	failing bool
}

func (s *recordingSender) Send(_ context.Context, out Outbound) error {
	s.sent = append(s.sent, out)
	if s.failing {
		return fmt.Errorf("relay refused connection")
	}
	return nil
}

func dispatcherFixture(t *testing.T) (*eventstore.MemoryStore, *readmodel.MemoryStore, *Dispatcher, *recordingSender) {
	t.Helper()
	events := eventstore.NewMemoryStore(domain.NewDefaultCodec())
	store := readmodel.NewMemoryStore()
	templates, err := LoadTemplates("")
	require.NoError(t, err)
	sender := &recordingSender{}
	return events, store, NewDispatcher(events, templates, sender), sender
}

func appendRequestEvent(t *testing.T, events *eventstore.MemoryStore, aggregateID string, expected int64, payload domain.Payload) domain.Event {
	t.Helper()
	ctx := tenant.With(context.Background(), "tenant-1")
	e := domain.NewEvent(domain.AggregateVmRequest, aggregateID, payload,
		domain.Metadata{TenantID: "tenant-1", ActorID: "user-2", OccurredAt: time.Now().UTC()})
	_, err := events.Append(ctx, domain.AggregateVmRequest, aggregateID, []domain.Event{e}, expected)
	require.NoError(t, err)
	e.Version = expected + 1
	e.GlobalSequence = expected + 1
	return e
}

func TestDispatcherWritesInboxEntries(t *testing.T) {
	t.Parallel()

	events, store, dispatcher, sender := dispatcherFixture(t)
	ctx := tenant.With(context.Background(), "tenant-1")

	created := appendRequestEvent(t, events, "req-1", 0, domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		RequesterID: "user-1", RequesterName: "Riley", RequesterEmail: "riley@example.com",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	})
	approved := appendRequestEvent(t, events, "req-1", 1, domain.VmRequestApproved{
		ApprovedBy: "user-2", ApproverName: "Avery Admin",
	})

	for _, e := range []domain.Event{created, approved} {
		err := store.InTx(ctx, func(tx readmodel.Tx) error {
			return dispatcher.Handle(ctx, tx, e)
		})
		require.NoError(t, err)
	}

	rows, err := store.ListNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first.
	assert.Equal(t, TypeRequestApproved, rows[0].Type)
	assert.Contains(t, rows[0].Message, "Avery Admin")
	assert.Equal(t, "vm_request", rows[0].ResourceType)
	assert.Equal(t, "req-1", rows[0].ResourceID)
	assert.Equal(t, approved.EventID, rows[0].ID)
	assert.Equal(t, TypeRequestSubmitted, rows[1].Type)

	// Each inbox entry also went out through the sender, addressed to the
	// requester.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "riley@example.com", sender.sent[1].Recipient)
	assert.Equal(t, TypeRequestApproved, sender.sent[1].Type)
	assert.Equal(t, rows[0].Title, sender.sent[1].Title)
}

func TestDispatcherToleratesSenderFailure(t *testing.T) {
	t.Parallel()

	events, store, dispatcher, sender := dispatcherFixture(t)
	sender.failing = true
	ctx := tenant.With(context.Background(), "tenant-1")

	created := appendRequestEvent(t, events, "req-1", 0, domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		RequesterID: "user-1", RequesterName: "Riley", RequesterEmail: "riley@example.com",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	})

	// The send is best-effort: a dead relay leaves the inbox row in place and
	// does not bounce the event back to the projection.
	err := store.InTx(ctx, func(tx readmodel.Tx) error {
		return dispatcher.Handle(ctx, tx, created)
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	rows, err := store.ListNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDispatcherRedeliveryIsIdempotent(t *testing.T) {
	t.Parallel()

	events, store, dispatcher, _ := dispatcherFixture(t)
	ctx := tenant.With(context.Background(), "tenant-1")

	created := appendRequestEvent(t, events, "req-1", 0, domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		RequesterID: "user-1", RequesterName: "Riley",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	})

	for i := 0; i < 3; i++ {
		err := store.InTx(ctx, func(tx readmodel.Tx) error {
			return dispatcher.Handle(ctx, tx, created)
		})
		require.NoError(t, err)
	}

	rows, err := store.ListNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDispatcherIgnoresNonLifecycleEvents(t *testing.T) {
	t.Parallel()

	events, store, dispatcher, _ := dispatcherFixture(t)
	ctx := tenant.With(context.Background(), "tenant-1")

	appendRequestEvent(t, events, "req-1", 0, domain.VmRequestCreated{
		ProjectID: "proj-1", ProjectName: "Phoenix",
		RequesterID: "user-1", RequesterName: "Riley",
		VMName: "web-server", Size: domain.SizeM, Justification: "load testing for the release",
	})

	// Cancellation and provisioning-start do not notify.
	cancelled := appendRequestEvent(t, events, "req-1", 1, domain.VmRequestCancelled{CancelledBy: "user-1"})
	err := store.InTx(ctx, func(tx readmodel.Tx) error {
		return dispatcher.Handle(ctx, tx, cancelled)
	})
	require.NoError(t, err)

	vmEvent := domain.NewEvent(domain.AggregateVm, "vm-agg-1", domain.VmProvisioningStarted{
		RequestID: "req-1", Name: "PHOE-web-server", Size: domain.SizeM,
	}, domain.Metadata{TenantID: "tenant-1", OccurredAt: time.Now().UTC()})
	err = store.InTx(ctx, func(tx readmodel.Tx) error {
		return dispatcher.Handle(ctx, tx, vmEvent)
	})
	require.NoError(t, err)

	rows, err := store.ListNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
