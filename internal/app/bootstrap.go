// Package app is the composition root: manual dependency wiring, route
// registration and lifecycle control. No business logic lives here.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"vc-drover.io/drover/internal/api/handlers"
	"vc-drover.io/drover/internal/command"
	"vc-drover.io/drover/internal/config"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/eventstore"
	"vc-drover.io/drover/internal/hypervisor"
	"vc-drover.io/drover/internal/hypervisor/vsphere"
	"vc-drover.io/drover/internal/infrastructure"
	"vc-drover.io/drover/internal/jobs"
	"vc-drover.io/drover/internal/notification"
	"vc-drover.io/drover/internal/orchestrator"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/pkg/worker"
	"vc-drover.io/drover/internal/projection"
	"vc-drover.io/drover/internal/query"
	"vc-drover.io/drover/internal/readmodel/entstore"
	"vc-drover.io/drover/internal/secrets"
)

// Application holds the composed application.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Engine *projection.Engine

	engineCancel context.CancelFunc
}

// Bootstrap wires every component. Order matters: storage, then the
// orchestrator and its queue workers, then the projection subscribers, then
// the HTTP edge.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:    cfg.Worker.GeneralPoolSize,
		HypervisorPoolSize: cfg.Worker.HypervisorPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	codec := domain.NewDefaultCodec()
	events := eventstore.NewPostgresStore(db.Pool, codec)
	store := entstore.New(db.EntClient)

	encryptor, err := secrets.NewEncryptorFromBase64(cfg.Security.EncryptionKey)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init encryptor: %w", err)
	}

	engine := projection.NewEngine(events, store, pools.General, projection.Config{
		PollInterval: cfg.Projection.PollInterval,
		BatchSize:    cfg.Projection.BatchSize,
		MaxAttempts:  cfg.Projection.MaxAttempts,
		RetryDelay:   cfg.Projection.RetryDelay,
	})

	resolver := orchestrator.NewConfigResolver(store, encryptor,
		cfg.Orchestrator.ConfigCacheTTL, cfg.VSphere.Insecure, cfg.VSphere.CallTimeout)
	factory := newProvisionerFactory(cfg)
	orch := orchestrator.New(events, resolver, factory, engine.Wake)

	// River: workers, periodic sweeps, dedicated provisioning queue. The
	// enqueuer is bound once the client exists.
	enqueuer := jobs.NewRiverEnqueuer()
	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewProvisionWorker(orch))
	river.AddWorker(workers, jobs.NewStallSweepWorker(store, enqueuer, cfg.River.StallThreshold))
	river.AddWorker(workers, jobs.NewStatusSyncWorker(store, orch))

	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.River.StallSweepInterval),
			func() (river.JobArgs, *river.InsertOpts) { return jobs.StallSweepArgs{}, nil },
			nil,
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.River.StatusSyncInterval),
			func() (river.JobArgs, *river.InsertOpts) { return jobs.StatusSyncArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
	queues := map[string]river.QueueConfig{
		river.QueueDefault:     {MaxWorkers: cfg.River.MaxWorkers},
		jobs.QueueProvisioning: {MaxWorkers: cfg.Worker.HypervisorPoolSize},
	}
	if err := db.InitRiverClient(workers, periodic, cfg.River, queues); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river: %w", err)
	}
	enqueuer.Bind(db.RiverClient)

	// Projection subscribers. Registration order is cosmetic; each owns its
	// cursor.
	templates, err := notification.LoadTemplates(cfg.Notification.TemplatesPath)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("load notification templates: %w", err)
	}
	engine.Register(projection.NewRequestProjector(events))
	engine.Register(projection.NewTimelineProjector())
	engine.Register(projection.NewProgressProjector(events))
	engine.Register(notification.NewDispatcher(events, templates, notification.NewLogSender()))
	engine.Register(orchestrator.NewTrigger(events, enqueuer))

	// Use cases and HTTP edge.
	quota := command.NewMaxPendingQuota(store, cfg.Quota.MaxPendingPerRequester)
	commands := command.NewService(events, quota, engine.Wake)
	queries := query.NewService(store)
	vmware := command.NewVMwareConfigService(store, encryptor, resolver, factory)

	server := handlers.NewServer(handlers.ServerDeps{
		Commands: commands,
		Queries:  queries,
		VMware:   vmware,
		Pools:    pools,
		PingDB:   db.Pool.Ping,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server),
		DB:     db,
		Pools:  pools,
		Engine: engine,
	}, nil
}

// newProvisionerFactory picks the scripted mock for local development or the
// breaker-wrapped vCenter adapter.
func newProvisionerFactory(cfg *config.Config) hypervisor.Factory {
	if cfg.Orchestrator.UseMock {
		logger.Warn("hypervisor mock enabled; no real VMs will be created")
		mock := hypervisor.NewMock()
		return func(hypervisor.Config) hypervisor.Provisioner { return mock }
	}
	return func(hcfg hypervisor.Config) hypervisor.Provisioner {
		return hypervisor.WithBreaker(vsphere.New(hcfg),
			hypervisor.DefaultBreakerSettings("vcenter"))
	}
}
