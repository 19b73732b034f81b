// Package config resolves runtime settings from the environment and flags.
package config

import (
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// Environment variables read by Load.
const (
	EnvCatalog        = "ENBRIDGE_CATALOG"
	EnvLogTransitions = "ENBRIDGE_LOG_TRANSITIONS"
	EnvNoAltScreen    = "ENBRIDGE_NO_ALT_SCREEN"
)

// Config holds all runtime settings.
type Config struct {
	// CatalogPath is a YAML catalog file; empty means the built-in catalog.
	CatalogPath    string
	LogTransitions bool
	AltScreen      bool
}

// DefaultConfig returns the built-in catalog, no transition log, alt screen on.
func DefaultConfig() Config {
	return Config{
		AltScreen: true,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or unparsable values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogTransitions); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogTransitions = b
		}
	}
	if v := os.Getenv(EnvNoAltScreen); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AltScreen = !b
		}
	}

	return cfg
}

// BindFlags registers flags that override cfg in place when parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML catalog file (default: built-in metals vs oxygen)")
	fs.BoolVar(&cfg.LogTransitions, "log-transitions", cfg.LogTransitions, "Log stage transitions to stderr")
}
