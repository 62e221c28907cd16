package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/pkg/logger"
)

// Start launches the background services: the projection engine loops and
// the River job consumers.
func (a *Application) Start(ctx context.Context) error {
	engineCtx, cancel := context.WithCancel(ctx)
	a.engineCancel = cancel

	if err := a.Engine.Start(engineCtx); err != nil {
		cancel()
		return fmt.Errorf("start projection engine: %w", err)
	}
	logger.Info("Projection engine started")

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("River client started, jobs will now be consumed")
	}
	return nil
}

// Shutdown stops everything in reverse start order: job consumers first so
// no new work arrives, then the projection loops, then the pools and the
// database.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop river client", zap.Error(err))
		}
		logger.Info("River client stopped")
	}

	if a.engineCancel != nil {
		a.engineCancel()
		a.Engine.Drain()
		logger.Info("Projection engine drained")
	}

	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
