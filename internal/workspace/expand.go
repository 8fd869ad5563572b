package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/raphi011/mr/internal/log"
)

// ExpandPackages returns the package directories declared by root/manifest.
// Errors are returned as-is; see Expand for the lenient variant.
func ExpandPackages(root, manifest string) ([]string, error) {
	patterns, err := ReadPatterns(root, manifest)
	if err != nil {
		return nil, err
	}

	var include, exclude []string
	for _, p := range patterns {
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			rest = path.Clean(filepath.ToSlash(rest))
			if !doublestar.ValidatePattern(rest) {
				return nil, fmt.Errorf("exclude %q: %w", rest, doublestar.ErrBadPattern)
			}
			exclude = append(exclude, rest)
			continue
		}
		include = append(include, p)
	}

	var dirs []string
	for _, p := range include {
		matches, err := globDirs(root, p)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p, err)
		}
		for _, m := range matches {
			if isExcluded(root, m, exclude) {
				continue
			}
			dirs = append(dirs, m)
		}
	}

	return dirs, nil
}

// Expand is ExpandPackages with the degrade-to-empty rule applied: an
// unreadable or unparsable manifest and malformed glob syntax yield an empty
// set. Invalid patterns and I/O errors are still returned.
func Expand(ctx context.Context, root, manifest string) ([]string, error) {
	l := log.FromContext(ctx)

	pkgs, err := ExpandPackages(root, manifest)
	if err != nil {
		if errors.Is(err, ErrManifestUnreadable) ||
			errors.Is(err, ErrManifestUnparsable) ||
			errors.Is(err, doublestar.ErrBadPattern) {
			l.Debug("no workspace packages", "root", root, "reason", err)
			return nil, nil
		}
		return nil, err
	}

	l.Debug("expanded workspace", "root", root, "manifest", manifest, "packages", len(pkgs))
	return pkgs, nil
}

// globDirs expands one pattern relative to root and keeps directories only.
// Patterns inside root are matched through an fs.FS so metacharacters in the
// root path itself are never interpreted.
func globDirs(root, pattern string) ([]string, error) {
	var matches []string

	rel := path.Clean(filepath.ToSlash(pattern))
	if fs.ValidPath(rel) {
		found, err := doublestar.Glob(os.DirFS(root), rel, doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			matches = append(matches, filepath.Join(root, filepath.FromSlash(m)))
		}
	} else {
		abs := pattern
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, pattern)
		}
		found, err := doublestar.FilepathGlob(abs, doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, err
		}
		matches = found
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue // dangling symlink
			}
			return nil, err
		}
		if info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	return dirs, nil
}

func isExcluded(root, dir string, exclude []string) bool {
	if len(exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, p := range exclude {
		// patterns were validated in ExpandPackages
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
