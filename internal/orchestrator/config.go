package orchestrator

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/secrets"
	"vc-drover.io/drover/internal/tenant"
)

// ConfigResolver turns the current tenant's stored vCenter settings into a
// ready hypervisor.Config, decrypting the credential and caching the result
// briefly so a provisioning run does not hammer the config table.
type ConfigResolver struct {
	store     readmodel.Store
	encryptor *secrets.Encryptor
	cache     *gocache.Cache

	insecure    bool
	callTimeout time.Duration
}

// NewConfigResolver creates the resolver. ttl bounds cache staleness: an
// admin config change takes at most ttl to reach in-flight provisioning.
func NewConfigResolver(store readmodel.Store, encryptor *secrets.Encryptor, ttl time.Duration, insecure bool, callTimeout time.Duration) *ConfigResolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ConfigResolver{
		store:       store,
		encryptor:   encryptor,
		cache:       gocache.New(ttl, 2*ttl),
		insecure:    insecure,
		callTimeout: callTimeout,
	}
}

// Resolve returns the tenant's hypervisor configuration.
func (r *ConfigResolver) Resolve(ctx context.Context) (hypervisor.Config, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return hypervisor.Config{}, err
	}
	if cached, ok := r.cache.Get(tenantID.String()); ok {
		return cached.(hypervisor.Config), nil
	}

	stored, err := r.store.GetVMwareConfig(ctx)
	if err != nil {
		return hypervisor.Config{}, err
	}
	if stored == nil {
		return hypervisor.Config{}, apperrors.New(apperrors.KindInvalidState,
			apperrors.CodeVMwareConfigMissing, "no vmware configuration for tenant")
	}
	if stored.VerifiedAt == nil {
		logger.Warn("vmware configuration in use was never verified",
			zap.String("tenant_id", tenantID.String()),
		)
	}

	password, err := r.encryptor.Decrypt(stored.PasswordEnc)
	if err != nil {
		return hypervisor.Config{}, err
	}

	cfg := hypervisor.Config{
		URL:         stored.VCenterURL,
		Username:    stored.Username,
		Password:    password,
		Insecure:    r.insecure,
		Datacenter:  stored.Datacenter,
		Cluster:     stored.Cluster,
		Datastore:   stored.Datastore,
		Network:     stored.Network,
		Template:    stored.Template,
		CallTimeout: r.callTimeout,
	}
	r.cache.Set(tenantID.String(), cfg, gocache.DefaultExpiration)
	return cfg, nil
}

// Invalidate drops the cached config for a tenant after an admin update.
func (r *ConfigResolver) Invalidate(tenantID string) {
	r.cache.Delete(tenantID)
}
