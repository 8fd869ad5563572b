package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file at the monorepo root.
const LocalConfigFileName = ".mr.toml"

// LocalConfig holds per-repo configuration overrides from .mr.toml.
// Zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Runner   string `toml:"runner"`
	Manifest string `toml:"manifest"`
}

// LoadLocal reads a per-repo .mr.toml from the given root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(root string) (*LocalConfig, error) {
	configFile := filepath.Join(root, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if md.IsDefined("lockfile") {
		return nil, fmt.Errorf("lockfile cannot be set in %s: the root must be found before the file is read", configFile)
	}

	if err := validateEnum(local.Runner, "runner", ValidRunners); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateFileName(local.Manifest, "manifest"); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	if local.Runner != "" {
		merged.Runner = local.Runner
	}
	if local.Manifest != "" {
		merged.Manifest = local.Manifest
	}
	return &merged
}
