package hypervisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
)

// Mock is a scripted in-memory Provisioner for tests and local development.
// It walks the real stage sequence with a configurable delay per stage and
// can be told to fail at a specific stage.
type Mock struct {
	// StageDelay is how long each stage takes. Zero means instant.
	StageDelay time.Duration

	// FailAtStage, when set, makes CreateVM fail when that stage is reached.
	FailAtStage domain.Stage

	// FailErr overrides the error returned on a scripted failure.
	FailErr error

	mu      sync.Mutex
	nextID  int
	created map[string]*VMInfo
}

// NewMock creates a mock provisioner.
func NewMock() *Mock {
	return &Mock{created: make(map[string]*VMInfo)}
}

var _ Provisioner = (*Mock)(nil)

// CreateVM implements Provisioner.
func (m *Mock) CreateVM(ctx context.Context, spec CreateVMSpec, onStage StageFunc) (*CreatedVM, error) {
	for _, stage := range []domain.Stage{
		domain.StageCloning,
		domain.StageConfiguring,
		domain.StagePoweringOn,
		domain.StageWaitingForNetwork,
	} {
		if err := m.sleep(ctx); err != nil {
			return nil, err
		}
		onStage(stage)
		if m.FailAtStage == stage {
			return nil, m.failure(stage)
		}
	}
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	onStage(domain.StageReady)
	if m.FailAtStage == domain.StageReady {
		return nil, m.failure(domain.StageReady)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("vm-%04d", m.nextID)
	octet := m.nextID%250 + 2
	info := &VMInfo{
		PowerState: "poweredOn",
		IPAddress:  fmt.Sprintf("10.0.0.%d", octet),
		Hostname:   spec.Name,
		GuestOS:    "Ubuntu Linux (64-bit)",
		ObservedAt: time.Now().UTC(),
	}
	m.created[id] = info

	return &CreatedVM{
		VmwareVMID: id,
		IPAddress:  info.IPAddress,
		Hostname:   info.Hostname,
		PowerState: info.PowerState,
		GuestOS:    info.GuestOS,
	}, nil
}

// CreatedIDs returns the ids of every VM created so far.
func (m *Mock) CreatedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.created))
	for id := range m.created {
		ids = append(ids, id)
	}
	return ids
}

// VMInfo implements Provisioner.
func (m *Mock) VMInfo(ctx context.Context, vmwareVMID string) (*VMInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.created[vmwareVMID]
	if !ok {
		return nil, apperrors.Hypervisor(nil, apperrors.CodeHypervisorNotFound,
			fmt.Sprintf("vm %q not found", vmwareVMID))
	}
	copied := *info
	copied.ObservedAt = time.Now().UTC()
	return &copied, nil
}

// TestConnection implements Provisioner.
func (m *Mock) TestConnection(ctx context.Context) (*ConnectionResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	return &ConnectionResult{
		Version:    "8.0.2 (mock)",
		Datacenter: "mock-dc",
		Cluster:    "mock-cluster",
		LatencyMS:  1,
	}, nil
}

func (m *Mock) sleep(ctx context.Context) error {
	if m.StageDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.StageDelay):
		return nil
	}
}

func (m *Mock) failure(stage domain.Stage) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	return apperrors.Hypervisor(nil, apperrors.CodeHypervisorAPI,
		fmt.Sprintf("scripted failure at stage %s", stage))
}
