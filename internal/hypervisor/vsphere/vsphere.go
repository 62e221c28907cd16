// Package vsphere implements the hypervisor port against VMware vCenter
// through govmomi. One Provisioner instance serves one tenant configuration;
// the SOAP session is established lazily and kept for the lifetime of the
// instance.
package vsphere

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/property"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
)

const defaultCallTimeout = 5 * time.Minute

// Provisioner drives one vCenter endpoint.
type Provisioner struct {
	cfg hypervisor.Config

	mu      sync.Mutex
	client  *govmomi.Client
	finder  *find.Finder
	dc      *object.Datacenter
	session time.Time
}

// New creates a vCenter-backed provisioner for one tenant configuration.
func New(cfg hypervisor.Config) *Provisioner {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = defaultCallTimeout
	}
	return &Provisioner{cfg: cfg}
}

var _ hypervisor.Provisioner = (*Provisioner)(nil)

// connect establishes (or reuses) the SOAP session and the datacenter-bound
// finder.
func (p *Provisioner) connect(ctx context.Context) (*govmomi.Client, *find.Finder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		if active, _ := p.client.SessionManager.SessionIsActive(ctx); active {
			return p.client, p.finder, nil
		}
		_ = p.client.Logout(ctx)
		p.client, p.finder, p.dc = nil, nil, nil
	}

	soapURL, err := soap.ParseURL(p.cfg.URL)
	if err != nil || soapURL == nil {
		return nil, nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI,
			fmt.Sprintf("invalid vCenter URL %q", p.cfg.URL))
	}
	soapURL.User = nil

	client, err := govmomi.NewClient(ctx, soapURL, p.cfg.Insecure)
	if err != nil {
		return nil, nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI, "connect to vCenter")
	}
	if err := client.Login(ctx, url.UserPassword(p.cfg.Username, p.cfg.Password)); err != nil {
		_ = client.Logout(ctx)
		return nil, nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAuth, "vCenter login failed")
	}

	finder := find.NewFinder(client.Client, false)
	dc, err := finder.Datacenter(ctx, p.cfg.Datacenter)
	if err != nil {
		return nil, nil, notFoundErr(err, "datacenter", p.cfg.Datacenter)
	}
	finder.SetDatacenter(dc)

	p.client, p.finder, p.dc = client, finder, dc
	p.session = time.Now()
	return client, finder, nil
}

// CreateVM implements hypervisor.Provisioner. Stages: clone from template,
// reconfigure CPU/memory, power on, wait for the guest IP.
func (p *Provisioner) CreateVM(ctx context.Context, spec hypervisor.CreateVMSpec, onStage hypervisor.StageFunc) (*hypervisor.CreatedVM, error) {
	client, finder, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}

	template, err := finder.VirtualMachine(ctx, p.cfg.Template)
	if err != nil {
		return nil, notFoundErr(err, "template", p.cfg.Template)
	}
	cluster, err := finder.ClusterComputeResource(ctx, p.cfg.Cluster)
	if err != nil {
		return nil, notFoundErr(err, "cluster", p.cfg.Cluster)
	}
	pool, err := cluster.ResourcePool(ctx)
	if err != nil {
		return nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI, "resolve cluster resource pool")
	}
	datastore, err := finder.Datastore(ctx, p.cfg.Datastore)
	if err != nil {
		return nil, notFoundErr(err, "datastore", p.cfg.Datastore)
	}
	folder, err := finder.FolderOrDefault(ctx, "")
	if err != nil {
		return nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI, "resolve vm folder")
	}

	onStage(domain.StageCloning)
	poolRef := pool.Reference()
	dsRef := datastore.Reference()
	cloneSpec := types.VirtualMachineCloneSpec{
		Location: types.VirtualMachineRelocateSpec{
			Pool:      &poolRef,
			Datastore: &dsRef,
		},
		PowerOn: false,
	}
	vm, err := p.waitForClone(ctx, template, folder, spec.Name, cloneSpec)
	if err != nil {
		return nil, err
	}

	onStage(domain.StageConfiguring)
	configSpec := types.VirtualMachineConfigSpec{
		NumCPUs:  int32(spec.CPUCores),
		MemoryMB: int64(spec.MemoryGB) * 1024,
	}
	if err := p.waitForTask(ctx, "reconfigure", func() (*object.Task, error) {
		return vm.Reconfigure(ctx, configSpec)
	}); err != nil {
		return nil, err
	}

	onStage(domain.StagePoweringOn)
	if err := p.waitForTask(ctx, "power on", func() (*object.Task, error) {
		return vm.PowerOn(ctx)
	}); err != nil {
		return nil, err
	}

	onStage(domain.StageWaitingForNetwork)
	ip, err := p.waitForIP(ctx, vm)
	if err != nil {
		return nil, err
	}

	onStage(domain.StageReady)
	facts, err := p.vmFacts(ctx, client, vm.Reference())
	if err != nil {
		// The VM exists and has an IP; missing guest facts are a warning,
		// not a provisioning failure.
		logger.Warn("guest facts unavailable after provisioning",
			zap.String("vm", spec.Name),
			zap.Error(err),
		)
		facts = &hypervisor.VMInfo{PowerState: string(types.VirtualMachinePowerStatePoweredOn)}
	}

	return &hypervisor.CreatedVM{
		VmwareVMID: vm.Reference().Value,
		IPAddress:  ip,
		Hostname:   facts.Hostname,
		PowerState: facts.PowerState,
		GuestOS:    facts.GuestOS,
	}, nil
}

// VMInfo implements hypervisor.Provisioner.
func (p *Provisioner) VMInfo(ctx context.Context, vmwareVMID string) (*hypervisor.VMInfo, error) {
	client, _, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}
	ref := types.ManagedObjectReference{Type: "VirtualMachine", Value: vmwareVMID}
	return p.vmFacts(ctx, client, ref)
}

// TestConnection implements hypervisor.Provisioner.
func (p *Provisioner) TestConnection(ctx context.Context) (*hypervisor.ConnectionResult, error) {
	started := time.Now()
	client, finder, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}
	cluster, err := finder.ClusterComputeResource(ctx, p.cfg.Cluster)
	if err != nil {
		return nil, notFoundErr(err, "cluster", p.cfg.Cluster)
	}
	if _, err := finder.Datastore(ctx, p.cfg.Datastore); err != nil {
		return nil, notFoundErr(err, "datastore", p.cfg.Datastore)
	}
	if _, err := finder.VirtualMachine(ctx, p.cfg.Template); err != nil {
		return nil, notFoundErr(err, "template", p.cfg.Template)
	}
	return &hypervisor.ConnectionResult{
		Version:    client.ServiceContent.About.Version,
		Datacenter: p.cfg.Datacenter,
		Cluster:    cluster.Name(),
		LatencyMS:  time.Since(started).Milliseconds(),
	}, nil
}

func (p *Provisioner) waitForClone(ctx context.Context, template *object.VirtualMachine, folder *object.Folder, name string, spec types.VirtualMachineCloneSpec) (*object.VirtualMachine, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
	defer cancel()

	task, err := template.Clone(callCtx, folder, name, spec)
	if err != nil {
		return nil, taskErr(err, "clone")
	}
	res, err := task.WaitForResult(callCtx, nil)
	if err != nil {
		return nil, taskErr(err, "clone")
	}
	ref, ok := res.Result.(types.ManagedObjectReference)
	if !ok {
		return nil, apperrors.Hypervisor(nil, apperrors.CodeHypervisorAPI, "clone task returned no vm reference")
	}
	return object.NewVirtualMachine(p.client.Client, ref), nil
}

func (p *Provisioner) waitForTask(ctx context.Context, op string, start func() (*object.Task, error)) error {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
	defer cancel()

	task, err := start()
	if err != nil {
		return taskErr(err, op)
	}
	if err := task.Wait(callCtx); err != nil {
		return taskErr(err, op)
	}
	return nil
}

func (p *Provisioner) waitForIP(ctx context.Context, vm *object.VirtualMachine) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
	defer cancel()

	ip, err := vm.WaitForIP(callCtx, true)
	if err != nil {
		return "", taskErr(err, "wait for guest ip")
	}
	return ip, nil
}

func (p *Provisioner) vmFacts(ctx context.Context, client *govmomi.Client, ref types.ManagedObjectReference) (*hypervisor.VMInfo, error) {
	var moVM mo.VirtualMachine
	collector := property.DefaultCollector(client.Client)
	if err := collector.RetrieveOne(ctx, ref, []string{"guest", "runtime", "config"}, &moVM); err != nil {
		return nil, apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI, "retrieve vm properties")
	}

	info := &hypervisor.VMInfo{
		PowerState: string(moVM.Runtime.PowerState),
		ObservedAt: time.Now().UTC(),
	}
	if moVM.Guest != nil {
		info.IPAddress = moVM.Guest.IpAddress
		info.Hostname = moVM.Guest.HostName
		info.GuestOS = moVM.Guest.GuestFullName
	}
	if info.GuestOS == "" && moVM.Config != nil {
		info.GuestOS = moVM.Config.GuestFullName
	}
	return info, nil
}

func notFoundErr(err error, kind, name string) error {
	return apperrors.Hypervisor(err, apperrors.CodeHypervisorNotFound,
		fmt.Sprintf("%s %q not found in vCenter inventory", kind, name))
}

func taskErr(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Hypervisor(err, apperrors.CodeHypervisorTimeout,
			fmt.Sprintf("vCenter %s timed out", op))
	}
	return apperrors.Hypervisor(err, apperrors.CodeHypervisorAPI,
		fmt.Sprintf("vCenter %s failed", op))
}
