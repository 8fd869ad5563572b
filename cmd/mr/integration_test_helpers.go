//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/mr/internal/config"
	"github.com/raphi011/mr/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// setupMonorepo creates a yarn workspace with packages/api, packages/web and
// packages/config plus a non-package tools/scripts directory.
// Returns the canonical root.
func setupMonorepo(t *testing.T) string {
	t.Helper()

	root := resolvePath(t, t.TempDir())
	writeFile(t, filepath.Join(root, "yarn.lock"), "")
	writeFile(t, filepath.Join(root, "package.json"), `{
  "private": true,
  "workspaces": {"packages": ["packages/*"]}
}`)
	writeFile(t, filepath.Join(root, "packages", "api", "package.json"),
		`{"name": "api", "scripts": {"start": "node .", "test": "jest"}}`)
	writeFile(t, filepath.Join(root, "packages", "web", "package.json"),
		`{"name": "web", "scripts": {"build": "vite build", "dev": "vite"}}`)
	writeFile(t, filepath.Join(root, "packages", "config", "package.json"),
		`{"name": "config"}`)
	if err := os.MkdirAll(filepath.Join(root, "tools", "scripts"), 0o755); err != nil {
		t.Fatalf("failed to create tools/scripts: %v", err)
	}
	return root
}

// testEnv describes the process state a test run pretends to have.
type testEnv struct {
	workDir string
	oldPwd  string
	vars    map[string]string
}

func (e testEnv) environment() environment {
	return environment{
		workDir: e.workDir,
		oldPwd:  e.oldPwd,
		getenv:  func(k string) string { return e.vars[k] },
	}
}

// testContext builds the context Execute would, with stdout going to buf.
func testContext(t *testing.T, env testEnv, buf *bytes.Buffer) context.Context {
	t.Helper()
	cfg := config.Default()
	if err := cfg.ApplyEnv(env.environment().getenv); err != nil {
		t.Fatalf("invalid test env: %v", err)
	}
	ctx := config.WithConfig(context.Background(), &cfg)
	ctx = output.WithPrinter(ctx, buf)
	return withEnv(ctx, env.environment())
}

// runMr executes the root command with args and returns stdout and stderr.
func runMr(t *testing.T, env testEnv, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := testContext(t, env, &stdout)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
