//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/mr/internal/config"
)

// TestConfigShow_Local tests that config show applies .mr.toml.
//
// Scenario: root has .mr.toml with runner = "bun"; user runs `mr config show`
// Expected: effective runner is bun, lockfile stays at the default
func TestConfigShow_Local(t *testing.T) {
	t.Parallel()

	root := setupMonorepo(t)
	writeFile(t, filepath.Join(root, ".mr.toml"), "runner = \"bun\"\n")

	stdout, _, err := runMr(t, testEnv{workDir: filepath.Join(root, "packages", "web")}, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, `runner = "bun"`) {
		t.Errorf("stdout = %q, want runner = \"bun\"", stdout)
	}
	if !strings.Contains(stdout, `lockfile = "yarn.lock"`) {
		t.Errorf("stdout = %q, want default lockfile", stdout)
	}
}

// TestConfigShow_OutsideMonorepo tests config show without a root.
func TestConfigShow_OutsideMonorepo(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMr(t, testEnv{workDir: resolvePath(t, t.TempDir())}, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, `runner = "yarn"`) {
		t.Errorf("stdout = %q, want default runner", stdout)
	}
}

// TestConfigShow_InvalidLocal tests that a broken .mr.toml is reported.
func TestConfigShow_InvalidLocal(t *testing.T) {
	t.Parallel()

	root := setupMonorepo(t)
	writeFile(t, filepath.Join(root, ".mr.toml"), "lockfile = \"other.lock\"\n")

	_, _, err := runMr(t, testEnv{workDir: root}, "config", "show")
	if err == nil || !strings.Contains(err.Error(), "lockfile cannot be set") {
		t.Fatalf("error = %v, want lockfile rejection", err)
	}
}

// TestConfigInit_Stdout tests printing the default config.
func TestConfigInit_Stdout(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMr(t, testEnv{workDir: t.TempDir()}, "config", "init", "--stdout")
	if err != nil {
		t.Fatalf("config init --stdout failed: %v", err)
	}
	if stdout != config.DefaultConfig() {
		t.Errorf("stdout does not match the default config template")
	}
}

// TestConfigInit_WritesFile tests creating the global config file.
//
// Scenario: User runs `mr config init` twice, then with --force
// Expected: first succeeds, second refuses, forced run overwrites
func TestConfigInit_WritesFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	path := filepath.Join(xdg, "mr", "config.toml")

	if _, _, err := runMr(t, testEnv{workDir: xdg}, "config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	_, _, err := runMr(t, testEnv{workDir: xdg}, "config", "init")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("second config init error = %v, want already exists", err)
	}

	if _, _, err := runMr(t, testEnv{workDir: xdg}, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
}
