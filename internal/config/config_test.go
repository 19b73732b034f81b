package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogTransitions, "")
	t.Setenv(EnvNoAltScreen, "")

	cfg := Load()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.LogTransitions)
	assert.True(t, cfg.AltScreen)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(EnvCatalog, "/tmp/metals.yaml")
	t.Setenv(EnvLogTransitions, "true")
	t.Setenv(EnvNoAltScreen, "1")

	cfg := Load()
	assert.Equal(t, "/tmp/metals.yaml", cfg.CatalogPath)
	assert.True(t, cfg.LogTransitions)
	assert.False(t, cfg.AltScreen)
}

func TestLoad_IgnoresUnparsableBools(t *testing.T) {
	t.Setenv(EnvLogTransitions, "sometimes")
	t.Setenv(EnvNoAltScreen, "maybe")

	cfg := Load()
	assert.False(t, cfg.LogTransitions)
	assert.True(t, cfg.AltScreen)
}

func TestBindFlags_OverrideEnv(t *testing.T) {
	t.Setenv(EnvCatalog, "/from/env.yaml")
	cfg := Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--catalog", "/from/flag.yaml", "--log-transitions"}))

	assert.Equal(t, "/from/flag.yaml", cfg.CatalogPath)
	assert.True(t, cfg.LogTransitions)
}

func TestBindFlags_KeepsEnvWhenUnset(t *testing.T) {
	t.Setenv(EnvCatalog, "/from/env.yaml")
	cfg := Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, "/from/env.yaml", cfg.CatalogPath)
}
