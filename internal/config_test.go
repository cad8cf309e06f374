package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-events/pkg/executor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
	assert.Equal(t, executor.DefaultScript(), cfg.Steps())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
pretty_logs: false
script:
  - op: add
    product: Pear
    quantity: 3
  - {op: clear, product: basket, quantity: 0}
`)

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))

	assert.Equal(t, AppVersion, cfg.Version)
	assert.False(t, cfg.PrettyLogs)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
	assert.Equal(t, []executor.Step{
		{Op: executor.OpAdd, Product: "Pear", Quantity: 3},
		{Op: executor.OpClear, Product: "basket", Quantity: 0},
	}, cfg.Steps())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))

	assert.True(t, cfg.PrettyLogs)
	assert.Equal(t, executor.DefaultScript(), cfg.Steps())
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := DefaultConfig()

	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
	assert.Error(t, LoadConfig(writeConfig(t, "log_level: [nope\n"), &cfg))

	err := LoadConfig(writeConfig(t, "log_level: loud\n"), &cfg)
	assert.ErrorContains(t, err, "log_level")
}
