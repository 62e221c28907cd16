// Package config provides configuration management for Drover.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Log          LogConfig          `mapstructure:"log"`
	River        RiverConfig        `mapstructure:"river"`
	Projection   ProjectionConfig   `mapstructure:"projection"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
	VSphere      VSphereConfig      `mapstructure:"vsphere"`
	Security     SecurityConfig     `mapstructure:"security"`
	Quota        QuotaConfig        `mapstructure:"quota"`
	Notification NotificationConfig `mapstructure:"notification"`
	Worker       WorkerConfig       `mapstructure:"worker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings. One pgx pool is
// shared by the event store, Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
	StallSweepInterval          time.Duration `mapstructure:"stall_sweep_interval"`
	StallThreshold              time.Duration `mapstructure:"stall_threshold"`
	StatusSyncInterval          time.Duration `mapstructure:"status_sync_interval"`
}

// ProjectionConfig tunes the projection engine.
type ProjectionConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	RetryDelay   time.Duration `mapstructure:"retry_delay"`
}

// OrchestratorConfig tunes provisioning behavior.
type OrchestratorConfig struct {
	ConfigCacheTTL time.Duration `mapstructure:"config_cache_ttl"`
	UseMock        bool          `mapstructure:"use_mock"`
}

// VSphereConfig contains deployment-level vCenter client settings.
// Per-tenant endpoint and placement settings live in the database.
type VSphereConfig struct {
	Insecure    bool          `mapstructure:"insecure"`
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

// SecurityConfig contains security-related settings.
type SecurityConfig struct {
	// EncryptionKey is the base64-encoded 32-byte key sealing tenant
	// hypervisor credentials.
	EncryptionKey string `mapstructure:"encryption_key"`

	// JWTSecret verifies HS256 bearer tokens from the identity provider.
	JWTSecret string `mapstructure:"jwt_secret"`
}

// QuotaConfig bounds per-user request load.
type QuotaConfig struct {
	MaxPendingPerRequester int `mapstructure:"max_pending_per_requester"`
}

// NotificationConfig points at the optional template override file.
type NotificationConfig struct {
	TemplatesPath string `mapstructure:"templates_path"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize    int `mapstructure:"general_pool_size"`
	HypervisorPoolSize int `mapstructure:"hypervisor_pool_size"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables. Standard
// environment variables without prefix: DATABASE_URL, SERVER_PORT,
// LOG_LEVEL; nested keys map as database.max_conns → DATABASE_MAX_CONNS.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/drover")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret must not be empty")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if key, err := base64.StdEncoding.DecodeString(c.Security.EncryptionKey); err != nil || len(key) != 32 {
		return fmt.Errorf("security.encryption_key must be 32 bytes, base64-encoded")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets on first boot so a dev setup
// works out of the box. Production deployments must pin them via env vars.
func (c *Config) ensureSecrets() error {
	if c.Security.JWTSecret == "" {
		secret, err := generateSecureRandomBase64(48)
		if err != nil {
			return fmt.Errorf("auto-generate jwt secret: %w", err)
		}
		c.Security.JWTSecret = secret
		logBootstrapWarn(
			"auto-generated jwt_secret; set SECURITY_JWT_SECRET env var for persistence",
			zap.Int("length", len(secret)),
		)
	}
	if c.Security.EncryptionKey == "" {
		key, err := generateSecureRandomBase64(32)
		if err != nil {
			return fmt.Errorf("auto-generate encryption key: %w", err)
		}
		c.Security.EncryptionKey = key
		logBootstrapWarn(
			"auto-generated encryption_key; set SECURITY_ENCRYPTION_KEY env var for persistence",
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomBase64 produces a base64-encoded string of n random
// bytes.
func generateSecureRandomBase64(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173"})

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "drover")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "drover")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")
	v.SetDefault("river.stall_sweep_interval", "5m")
	v.SetDefault("river.stall_threshold", "15m")
	v.SetDefault("river.status_sync_interval", "10m")

	// Projection engine
	v.SetDefault("projection.poll_interval", "500ms")
	v.SetDefault("projection.batch_size", 100)
	v.SetDefault("projection.max_attempts", 5)
	v.SetDefault("projection.retry_delay", "100ms")

	// Orchestrator
	v.SetDefault("orchestrator.config_cache_ttl", "5m")
	v.SetDefault("orchestrator.use_mock", false)

	// vSphere client
	v.SetDefault("vsphere.insecure", false)
	v.SetDefault("vsphere.call_timeout", "5m")

	// Quota
	v.SetDefault("quota.max_pending_per_requester", 5)

	// Notifications
	v.SetDefault("notification.templates_path", "")

	// Worker pool
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.hypervisor_pool_size", 20)
}
