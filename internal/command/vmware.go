package command

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/hypervisor"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/pkg/logger"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/secrets"
	"vc-drover.io/drover/internal/tenant"
)

// ConfigInvalidator drops a tenant's cached hypervisor configuration after
// an admin change.
type ConfigInvalidator interface {
	Invalidate(tenantID string)
	Resolve(ctx context.Context) (hypervisor.Config, error)
}

// VMwareConfigService manages the per-tenant vCenter configuration. All
// operations are admin only.
type VMwareConfigService struct {
	store     readmodel.Store
	encryptor *secrets.Encryptor
	resolver  ConfigInvalidator
	factory   hypervisor.Factory
}

// NewVMwareConfigService creates the service.
func NewVMwareConfigService(store readmodel.Store, encryptor *secrets.Encryptor, resolver ConfigInvalidator, factory hypervisor.Factory) *VMwareConfigService {
	return &VMwareConfigService{
		store:     store,
		encryptor: encryptor,
		resolver:  resolver,
		factory:   factory,
	}
}

// VMwareConfigView is the configuration as shown to admins. The password
// never leaves the service in any form.
type VMwareConfigView struct {
	VCenterURL  string
	Username    string
	HasPassword bool
	Datacenter  string
	Cluster     string
	Datastore   string
	Network     string
	Template    string
	VerifiedAt  *time.Time
	UpdatedAt   time.Time
	Version     int64
}

// SaveVMwareConfigInput carries the admin-supplied configuration fields.
// Password may be empty on update, meaning "keep the stored credential".
type SaveVMwareConfigInput struct {
	VCenterURL string
	Username   string
	Password   string
	Datacenter string
	Cluster    string
	Datastore  string
	Network    string
	Template   string

	// Version is the version the admin last saw; a stale version is
	// rejected with a conflict.
	Version int64
}

// GetVMwareConfig returns the tenant's configuration, or nil when unset.
func (s *VMwareConfigService) GetVMwareConfig(ctx context.Context) (*VMwareConfigView, error) {
	if _, err := requireAdminIdentity(ctx); err != nil {
		return nil, err
	}
	stored, err := s.store.GetVMwareConfig(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	view := toConfigView(stored)
	return &view, nil
}

// SaveVMwareConfig creates or updates the tenant's configuration. Any change
// clears the verified mark; the admin is expected to re-test.
func (s *VMwareConfigService) SaveVMwareConfig(ctx context.Context, in SaveVMwareConfigInput) (*VMwareConfigView, error) {
	identity, err := requireAdminIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateConfigInput(in); err != nil {
		return nil, err
	}

	existing, err := s.store.GetVMwareConfig(ctx)
	if err != nil {
		return nil, err
	}

	var passwordEnc string
	switch {
	case in.Password != "":
		passwordEnc, err = s.encryptor.Encrypt(in.Password)
		if err != nil {
			return nil, err
		}
	case existing != nil:
		passwordEnc = existing.PasswordEnc
	default:
		return nil, apperrors.Validation("password", "password is required")
	}

	saved, err := s.store.SaveVMwareConfig(ctx, readmodel.VMwareConfig{
		VCenterURL:  strings.TrimSpace(in.VCenterURL),
		Username:    strings.TrimSpace(in.Username),
		PasswordEnc: passwordEnc,
		Datacenter:  in.Datacenter,
		Cluster:     in.Cluster,
		Datastore:   in.Datastore,
		Network:     in.Network,
		Template:    in.Template,
		Version:     in.Version,
	})
	if err != nil {
		return nil, err
	}
	s.resolver.Invalidate(identity.TenantID.String())

	logger.Info("vmware configuration saved",
		zap.String("tenant_id", identity.TenantID.String()),
		zap.String("admin_id", identity.UserID.String()),
		zap.Int64("version", saved.Version),
	)
	view := toConfigView(saved)
	return &view, nil
}

// TestConnection verifies the stored configuration against vCenter and, on
// success, stamps it verified.
func (s *VMwareConfigService) TestConnection(ctx context.Context) (*hypervisor.ConnectionResult, error) {
	identity, err := requireAdminIdentity(ctx)
	if err != nil {
		return nil, err
	}

	// Always test what is stored now, not a cached copy.
	s.resolver.Invalidate(identity.TenantID.String())
	cfg, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.factory(cfg).TestConnection(ctx)
	if err != nil {
		logger.Warn("vmware connection test failed",
			zap.String("tenant_id", identity.TenantID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.store.MarkVMwareConfigVerified(ctx, time.Now().UTC()); err != nil {
		return nil, err
	}
	logger.Info("vmware configuration verified",
		zap.String("tenant_id", identity.TenantID.String()),
		zap.String("vcenter_version", result.Version),
		zap.Int64("latency_ms", result.LatencyMS),
	)
	return result, nil
}

func validateConfigInput(in SaveVMwareConfigInput) error {
	required := map[string]string{
		"vcenter_url": in.VCenterURL,
		"username":    in.Username,
		"datacenter":  in.Datacenter,
		"cluster":     in.Cluster,
		"datastore":   in.Datastore,
		"network":     in.Network,
		"template":    in.Template,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return apperrors.Validation(field, field+" is required")
		}
	}
	if !strings.HasPrefix(in.VCenterURL, "https://") && !strings.HasPrefix(in.VCenterURL, "http://") {
		return apperrors.Validation("vcenter_url", "vcenter_url must be an http(s) URL")
	}
	return nil
}

func toConfigView(cfg *readmodel.VMwareConfig) VMwareConfigView {
	return VMwareConfigView{
		VCenterURL:  cfg.VCenterURL,
		Username:    cfg.Username,
		HasPassword: cfg.PasswordEnc != "",
		Datacenter:  cfg.Datacenter,
		Cluster:     cfg.Cluster,
		Datastore:   cfg.Datastore,
		Network:     cfg.Network,
		Template:    cfg.Template,
		VerifiedAt:  cfg.VerifiedAt,
		UpdatedAt:   cfg.UpdatedAt,
		Version:     cfg.Version,
	}
}

func requireAdminIdentity(ctx context.Context) (tenant.Identity, error) {
	identity, err := tenant.IdentityFromContext(ctx)
	if err != nil {
		return tenant.Identity{}, err
	}
	if !identity.IsAdmin() {
		return tenant.Identity{}, apperrors.Forbidden(apperrors.CodeAdminRequired, "administrator role required")
	}
	return identity, nil
}
