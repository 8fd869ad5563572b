// Package workspace locates a package-manager monorepo and enumerates its
// packages.
//
// # Root Detection
//
// The root is the nearest ancestor of the start directory that contains the
// lockfile marker (yarn.lock by default). Only the marker's presence matters;
// its content is never read.
//
// # Package Expansion
//
// Package directories are declared as glob patterns in the root manifest:
//
//	package.json         {"workspaces": {"packages": ["packages/*"]}}
//	package.json         {"workspaces": ["packages/*"]}
//	pnpm-workspace.yaml  packages: ["packages/*", "!**/test/**"]
//
// Patterns support *, **, ?, [...] and {a,b}. A leading ! excludes matches.
// Results keep pattern order, then filesystem order within a pattern.
//
// # Degrading
//
// Expand treats a missing or malformed manifest, and malformed glob syntax, as
// an empty package set: resolving / or - and walking relative paths still
// work without a declared workspace. A pattern that is not a representable
// path (invalid UTF-8, NUL) is always an error.
package workspace
