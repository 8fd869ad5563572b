package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor contains the lockfile marker.
var ErrRootNotFound = errors.New("monorepo root not found")

// LocateRoot walks upward from startDir and returns the first directory that
// contains an entry named marker, canonicalized.
func LocateRoot(startDir, marker string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.Name() == marker {
				return Canonical(dir)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrRootNotFound, marker, startDir)
		}
		dir = parent
	}
}

// Canonical returns the absolute path with symlinks resolved and . and ..
// collapsed. The path must exist.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
