package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/wastewise/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Latency)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.Equal(t, ":memory:", cfg.MarketplacePath)
	assert.Equal(t, "localhost:8080", cfg.ServerAddr)
	assert.Empty(t, cfg.CatalogPath)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WASTEWISE_SERVER_ADDR", "0.0.0.0:9999")
	t.Setenv("WASTEWISE_CLASSIFIER_RETRIES", "4")
	t.Setenv("WASTEWISE_CLASSIFIER_LATENCY", "500ms")
	t.Setenv("WASTEWISE_MARKETPLACE_DATABASE", ":memory:")

	v := viper.New()
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.ServerAddr)
	assert.Equal(t, 4, cfg.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
classifier:
  seed: 42
  latency: 250ms
  timeout: 1s
  retries: 3
catalog:
  path: $WASTEWISE_TEST_DIR/catalog.yaml
logging:
  format: json
`), 0o600))
	t.Setenv("WASTEWISE_TEST_DIR", "/srv/wastewise")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, "/srv/wastewise/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "negative latency", key: KeyClassifierLatency, value: "-1s"},
		{name: "zero retries", key: KeyClassifierRetries, value: 0},
		{name: "bad level", key: KeyLoggingLevel, value: "chatty"},
		{name: "bad format", key: KeyLoggingFormat, value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("WASTEWISE_HOME", "/opt/ww")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data", "market.db"), ExpandPath("~/data/market.db"))
	assert.Equal(t, "/opt/ww/catalog.yaml", ExpandPath("$WASTEWISE_HOME/catalog.yaml"))
	assert.Equal(t, "relative/path", ExpandPath("relative/path"))
}
