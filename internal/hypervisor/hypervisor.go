// Package hypervisor defines the provisioning port the orchestrator drives.
// Implementations: the vCenter adapter (production), the circuit-breaker
// decorator, and the scripted mock used by tests and local development.
package hypervisor

import (
	"context"
	"time"

	"vc-drover.io/drover/internal/domain"
)

// Config is the per-tenant connection and placement configuration.
type Config struct {
	URL        string
	Username   string
	Password   string
	Insecure   bool
	Datacenter string
	Cluster    string
	Datastore  string
	Network    string
	Template   string

	// CallTimeout bounds a single vCenter operation, not the whole
	// provisioning run.
	CallTimeout time.Duration
}

// CreateVMSpec describes the VM to provision.
type CreateVMSpec struct {
	// Name is the effective hypervisor-side name, prefix included.
	Name     string
	CPUCores int
	MemoryGB int
	DiskGB   int
}

// CreatedVM is the successful provisioning result.
type CreatedVM struct {
	VmwareVMID string
	IPAddress  string
	Hostname   string
	PowerState string
	GuestOS    string
}

// VMInfo is a point-in-time runtime observation of an existing VM.
type VMInfo struct {
	PowerState string
	IPAddress  string
	Hostname   string
	GuestOS    string
	ObservedAt time.Time
}

// ConnectionResult is what an admin connection test reports.
type ConnectionResult struct {
	Version    string
	Datacenter string
	Cluster    string
	LatencyMS  int64
}

// StageFunc receives stage transitions while CreateVM runs. Callbacks fire
// in stage order; implementations must tolerate a callback that blocks
// briefly but never one that fails.
type StageFunc func(stage domain.Stage)

// Provisioner is the driving port for one tenant's hypervisor.
type Provisioner interface {
	// CreateVM clones, configures, powers on and waits for the network,
	// reporting stages through onStage. Returns once the VM has an IP or a
	// stage fails.
	CreateVM(ctx context.Context, spec CreateVMSpec, onStage StageFunc) (*CreatedVM, error)

	// VMInfo fetches current runtime facts for a previously created VM.
	VMInfo(ctx context.Context, vmwareVMID string) (*VMInfo, error)

	// TestConnection verifies credentials and placement names.
	TestConnection(ctx context.Context) (*ConnectionResult, error)
}

// Factory builds a Provisioner from a tenant's configuration. The
// orchestrator resolves configuration per request, so the factory is the
// seam where the mock or the breaker-wrapped vCenter adapter is chosen.
type Factory func(cfg Config) Provisioner
