// Package config handles loading and validation of mr configuration.
//
// Configuration is read from ~/.config/mr/config.toml ($XDG_CONFIG_HOME is
// honoured), optionally overridden per repository by a .mr.toml file at the
// monorepo root, and finally by environment variables.
//
// # Configuration Sources (highest priority first)
//
//   - MR_RUNNER, MR_LOCKFILE, MR_MANIFEST, MR_THEME env vars
//   - .mr.toml at the monorepo root (runner and manifest only)
//   - Global config file
//   - Default values
//
// # Key Settings
//
//   - runner: script runner used for "mr <dir> <script>" (yarn, npm, pnpm, bun; default: yarn)
//   - lockfile: file whose presence marks the monorepo root (default: yarn.lock)
//   - manifest: file declaring the workspace patterns (default: package.json)
//   - theme: colour scheme of the interactive picker (default, nord, dracula, none)
//
// The lockfile cannot be set in .mr.toml: it is needed to find the root, and
// with it the local file.
//
// # Path Validation
//
// lockfile and manifest are plain file names relative to the root; path
// separators are rejected.
package config
