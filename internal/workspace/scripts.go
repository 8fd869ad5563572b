package workspace

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// PackageFile is the per-package manifest that declares scripts.
const PackageFile = "package.json"

// Scripts returns the script names declared in dir/package.json, sorted.
// A package without a scripts field yields no names and no error.
func Scripts(dir string) ([]string, error) {
	path := filepath.Join(dir, PackageFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}

	var pkg struct {
		Scripts map[string]json.RawMessage `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestUnparsable, path, err)
	}

	return slices.Sorted(maps.Keys(pkg.Scripts)), nil
}
