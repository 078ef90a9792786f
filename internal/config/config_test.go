package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inventar/decimal/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Empty(t, cfg.LogLevel)
	require.Equal(t, 2, cfg.Decimal.Scale)
	require.False(t, cfg.Metrics.Enabled)
	require.Equal(t, "inventar", cfg.Metrics.Namespace)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
logLevel: warn
decimal:
  scale: 3
metrics:
  enabled: true
  namespace: editor
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 3, cfg.Decimal.Scale)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "editor", cfg.Metrics.Namespace)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DECIMAL_SCALE", "0")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, 0, cfg.Decimal.Scale)
	require.True(t, cfg.Metrics.Enabled)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative scale", content: "decimal:\n  scale: -1\n"},
		{name: "malformed yaml", content: "decimal: [scale\n"},
		{name: "wrong type", content: "decimal:\n  scale: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
