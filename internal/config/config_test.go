package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Runner != "yarn" {
		t.Errorf("Runner = %q, want %q", cfg.Runner, "yarn")
	}
	if cfg.Lockfile != "yarn.lock" {
		t.Errorf("Lockfile = %q, want %q", cfg.Lockfile, "yarn.lock")
	}
	if cfg.Manifest != "package.json" {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, "package.json")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Config
		wantErr string
	}{
		{
			name:    "full config",
			content: "runner = \"pnpm\"\nlockfile = \"pnpm-lock.yaml\"\nmanifest = \"pnpm-workspace.yaml\"\n",
			want:    Config{Runner: "pnpm", Lockfile: "pnpm-lock.yaml", Manifest: "pnpm-workspace.yaml"},
		},
		{
			name:    "partial config keeps defaults",
			content: "runner = \"bun\"\n",
			want:    Config{Runner: "bun", Lockfile: DefaultLockfile, Manifest: DefaultManifest},
		},
		{
			name:    "empty file",
			content: "",
			want:    Default(),
		},
		{
			name:    "invalid runner",
			content: "runner = \"make\"\n",
			wantErr: `invalid runner "make"`,
		},
		{
			name:    "lockfile with path",
			content: "lockfile = \"sub/yarn.lock\"\n",
			wantErr: "invalid lockfile",
		},
		{
			name:    "manifest with path",
			content: "manifest = \"../package.json\"\n",
			wantErr: "invalid manifest",
		},
		{
			name:    "theme",
			content: "theme = \"nord\"\n",
			want:    Config{Runner: DefaultRunner, Lockfile: DefaultLockfile, Manifest: DefaultManifest, Theme: "nord"},
		},
		{
			name:    "invalid theme",
			content: "theme = \"solarized\"\n",
			wantErr: `invalid theme "solarized"`,
		},
		{
			name:    "syntax error",
			content: "runner = \n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			got, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
				}
				if got != Default() {
					t.Errorf("LoadFile() on error = %+v, want defaults", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadFile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	got, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got != Default() {
		t.Errorf("LoadFile() = %+v, want defaults", got)
	}
}

func TestPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if want := filepath.Join(dir, "mr", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvRunner:   "npm",
		EnvLockfile: "package-lock.json",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	want := Config{Runner: "npm", Lockfile: "package-lock.json", Manifest: DefaultManifest}
	if cfg != want {
		t.Errorf("ApplyEnv() = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvRunner {
			return "cargo"
		}
		return ""
	})
	if err == nil {
		t.Fatal("ApplyEnv() expected error for invalid runner")
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestDefaultConfigParses(t *testing.T) {
	t.Parallel()

	var cfg Config
	if _, err := toml.Decode(DefaultConfig(), &cfg); err != nil {
		t.Fatalf("default config template does not parse: %v", err)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mr", "config.toml")

	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != DefaultConfig() {
		t.Error("written config does not match template")
	}

	if err := Init(path, false); err == nil {
		t.Error("Init() should refuse to overwrite without force")
	}
	if err := Init(path, true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{Runner: "bun", Lockfile: "bun.lockb", Manifest: DefaultManifest}
	ctx := WithConfig(context.Background(), cfg)
	if got := FromContext(ctx); got != cfg {
		t.Error("FromContext did not return the stored config")
	}

	if got := FromContext(context.Background()); *got != Default() {
		t.Errorf("FromContext(empty) = %+v, want defaults", *got)
	}
}
