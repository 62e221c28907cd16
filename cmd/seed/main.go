// Package main seeds a local development environment: it prints bearer
// tokens for a demo tenant and, when the hypervisor mock is enabled, stores
// a placeholder vCenter configuration so provisioning works end to end.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/api/middleware"
	"vc-drover.io/drover/internal/config"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/infrastructure"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/readmodel/entstore"
	"vc-drover.io/drover/internal/secrets"
	"vc-drover.io/drover/internal/tenant"
)

const demoTenant = "tenant-demo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Seeding development environment", zap.String("tenant", demoTenant))

	if cfg.Orchestrator.UseMock {
		if err := seedMockVMwareConfig(ctx, cfg, db); err != nil {
			return fmt.Errorf("seed vmware config: %w", err)
		}
	}

	return printDevTokens(cfg)
}

// seedMockVMwareConfig stores a placeholder configuration for the demo
// tenant. The mock provisioner ignores it, but the orchestrator requires one
// to exist. Idempotent: an existing configuration is left alone.
func seedMockVMwareConfig(ctx context.Context, cfg *config.Config, db *infrastructure.DatabaseClients) error {
	encryptor, err := secrets.NewEncryptorFromBase64(cfg.Security.EncryptionKey)
	if err != nil {
		return err
	}
	store := entstore.New(db.EntClient)
	tenantCtx := tenant.With(ctx, domain.TenantID(demoTenant))

	existing, err := store.GetVMwareConfig(tenantCtx)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Info("VMware config already seeded, skipping")
		return nil
	}

	passwordEnc, err := encryptor.Encrypt("mock-password")
	if err != nil {
		return err
	}
	if _, err := store.SaveVMwareConfig(tenantCtx, readmodel.VMwareConfig{
		VCenterURL:  "https://vcenter.demo.local",
		Username:    "administrator@vsphere.local",
		PasswordEnc: passwordEnc,
		Datacenter:  "DC1",
		Cluster:     "Cluster1",
		Datastore:   "datastore1",
		Network:     "VM Network",
		Template:    "ubuntu-22.04-template",
	}); err != nil {
		return err
	}
	if err := store.MarkVMwareConfigVerified(tenantCtx, time.Now().UTC()); err != nil {
		return err
	}
	logger.Info("Seeded mock VMware config")
	return nil
}

// printDevTokens issues long-lived tokens for a demo admin and a demo user.
func printDevTokens(cfg *config.Config) error {
	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.JWTSecret),
		Issuer:     "drover-seed",
		ExpiresIn:  30 * 24 * time.Hour,
	}

	identities := []tenant.Identity{
		{
			UserID:   "user-admin",
			TenantID: demoTenant,
			Name:     "Avery Admin",
			Email:    "admin@demo.local",
			Roles:    []string{"admin"},
		},
		{
			UserID:   "user-dev",
			TenantID: demoTenant,
			Name:     "Devin Developer",
			Email:    "dev@demo.local",
			Roles:    []string{"member"},
		},
	}

	for _, ident := range identities {
		token, expiresAt, err := middleware.GenerateToken(jwtCfg, ident)
		if err != nil {
			return fmt.Errorf("generate token for %s: %w", ident.UserID, err)
		}
		fmt.Printf("\n%s (%v, expires %s):\n  %s\n",
			ident.Name, ident.Roles, expiresAt.Format(time.RFC3339), token)
	}
	fmt.Println()
	return nil
}
