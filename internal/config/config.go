package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/mr/internal/storage"
)

// Config holds the mr configuration
type Config struct {
	Runner   string `toml:"runner"`
	Lockfile string `toml:"lockfile"`
	Manifest string `toml:"manifest"`
	// Theme names the picker colour scheme. Empty means "default".
	Theme string `toml:"theme"`
}

// Defaults
const (
	DefaultRunner   = "yarn"
	DefaultLockfile = "yarn.lock"
	DefaultManifest = "package.json"
)

// Environment variable overrides
const (
	EnvRunner   = "MR_RUNNER"
	EnvLockfile = "MR_LOCKFILE"
	EnvManifest = "MR_MANIFEST"
	EnvTheme    = "MR_THEME"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Runner:   DefaultRunner,
		Lockfile: DefaultLockfile,
		Manifest: DefaultManifest,
	}
}

// Path returns the path to the global config file
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mr", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mr", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	// Use defaults for empty values
	cfg.fillDefaults()

	return cfg, nil
}

// ApplyEnv overrides fields from MR_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvRunner); v != "" {
		c.Runner = v
	}
	if v := getenv(EnvLockfile); v != "" {
		c.Lockfile = v
	}
	if v := getenv(EnvManifest); v != "" {
		c.Manifest = v
	}
	if v := getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	return c.Validate()
}

// Validate checks field values. Empty fields are allowed (they mean default).
func (c *Config) Validate() error {
	if err := validateEnum(c.Runner, "runner", ValidRunners); err != nil {
		return err
	}
	if err := validateFileName(c.Lockfile, "lockfile"); err != nil {
		return err
	}
	if err := validateFileName(c.Manifest, "manifest"); err != nil {
		return err
	}
	return validateEnum(c.Theme, "theme", ValidThemes)
}

func (c *Config) fillDefaults() {
	if c.Runner == "" {
		c.Runner = DefaultRunner
	}
	if c.Lockfile == "" {
		c.Lockfile = DefaultLockfile
	}
	if c.Manifest == "" {
		c.Manifest = DefaultManifest
	}
}

const defaultConfig = `# mr configuration

# Script runner used for "mr <dir> <script>"
# Supported: "yarn", "npm", "pnpm", "bun"
# runner = "yarn"

# File whose presence marks the monorepo root (content is never read)
# lockfile = "yarn.lock"

# File at the root declaring the workspace package patterns
# package.json: reads workspaces.packages (or a plain workspaces array)
# *.yaml/*.yml: reads the top-level packages list (pnpm-workspace.yaml)
# manifest = "package.json"

# Colour scheme of the interactive picker (mr -i)
# Supported: "default", "nord", "dracula", "none"
# theme = "default"

# Example for a pnpm monorepo:
# runner = "pnpm"
# lockfile = "pnpm-lock.yaml"
# manifest = "pnpm-workspace.yaml"

# Per-repo overrides: place a .mr.toml at the monorepo root.
# It may set runner and manifest.
#
# Environment overrides: MR_RUNNER, MR_LOCKFILE, MR_MANIFEST, MR_THEME
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at path.
// If force is true, overwrites existing file
func Init(path string, force bool) error {
	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	return storage.WriteFile(path, []byte(defaultConfig), 0o644)
}
