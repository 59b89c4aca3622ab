// Package config loads wastewise settings from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyCatalogPath       = "catalog.path"
	KeyClassifierSeed    = "classifier.seed"
	KeyClassifierLatency = "classifier.latency"
	KeyClassifierTimeout = "classifier.timeout"
	KeyClassifierRetries = "classifier.retries"
	KeyMarketplaceDB     = "marketplace.database"
	KeyServerAddr        = "server.addr"
	KeyLoggingLevel      = "logging.level"
	KeyLoggingFormat     = "logging.format"
)

const (
	defaultServerAddr     = "localhost:8080"
	defaultClassifierWait = 2 * time.Second
)

// Config is the resolved application configuration.
type Config struct {
	CatalogPath     string
	MarketplacePath string
	ServerAddr      string
	LogLevel        string
	LogFormat       string
	Latency         time.Duration
	Timeout         time.Duration
	Seed            uint64
	RetryAttempts   int
}

// EnvPrefix is prepended to every key when read from the environment,
// so classifier.retries becomes WASTEWISE_CLASSIFIER_RETRIES.
const EnvPrefix = "WASTEWISE"

// BindEnv makes every key settable through WASTEWISE_* variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyClassifierLatency, defaultClassifierWait)
	v.SetDefault(KeyClassifierTimeout, 10*time.Second)
	v.SetDefault(KeyClassifierRetries, 1)
	v.SetDefault(KeyMarketplaceDB, ":memory:")
	v.SetDefault(KeyServerAddr, defaultServerAddr)
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")
}

// Load resolves configuration from v, falling back to the global viper.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	cfg := &Config{
		CatalogPath:     ExpandPath(v.GetString(KeyCatalogPath)),
		MarketplacePath: v.GetString(KeyMarketplaceDB),
		ServerAddr:      v.GetString(KeyServerAddr),
		LogLevel:        v.GetString(KeyLoggingLevel),
		LogFormat:       v.GetString(KeyLoggingFormat),
		Latency:         v.GetDuration(KeyClassifierLatency),
		Timeout:         v.GetDuration(KeyClassifierTimeout),
		Seed:            v.GetUint64(KeyClassifierSeed),
		RetryAttempts:   v.GetInt(KeyClassifierRetries),
	}

	if cfg.MarketplacePath != ":memory:" {
		cfg.MarketplacePath = ExpandPath(cfg.MarketplacePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine can't run with.
func (c *Config) Validate() error {
	if c.Latency < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", common.ErrInvalidConfig, KeyClassifierLatency, c.Latency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", common.ErrInvalidConfig, KeyClassifierTimeout, c.Timeout)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", common.ErrInvalidConfig, KeyClassifierRetries, c.RetryAttempts)
	}
	if strings.TrimSpace(c.ServerAddr) == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyServerAddr)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
