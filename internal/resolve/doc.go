// Package resolve turns a user-typed fragment into a directory inside the
// monorepo.
//
// # Fragments
//
// Fragments are checked in this order, first match wins:
//
//   - "-": the previous directory ($OLDPWD), or the current directory when
//     unset. Returned as-is.
//   - "/": the monorepo root.
//   - ".": the current directory.
//   - Suffix match: the first package directory whose path ends with the
//     fragment. The test is on the raw string, so "app" matches both
//     packages/app and packages/webapp; package order decides.
//   - Upward walk: current/fragment, then parent/fragment, stopping at the
//     root. This handles exact relative paths like ../../shared.
//
// Everything except "-" is returned canonicalized and must exist on disk.
package resolve
