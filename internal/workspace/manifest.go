package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrManifestUnreadable is returned when the manifest cannot be read.
	ErrManifestUnreadable = errors.New("workspace manifest unreadable")
	// ErrManifestUnparsable is returned when the manifest is not valid JSON/YAML
	// or the workspace field has the wrong shape.
	ErrManifestUnparsable = errors.New("workspace manifest unparsable")
	// ErrInvalidPattern is returned for a pattern that cannot be used as a path.
	ErrInvalidPattern = errors.New("invalid workspace pattern")
)

// rootPattern is what a non-string manifest entry expands to.
const rootPattern = "."

// ReadPatterns returns the workspace patterns declared in root/manifest,
// in declaration order. A manifest without a workspace field yields no
// patterns and no error.
func ReadPatterns(root, manifest string) ([]string, error) {
	path := filepath.Join(root, manifest)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}

	var patterns []string
	switch filepath.Ext(manifest) {
	case ".yaml", ".yml":
		patterns, err = parseYAMLPatterns(data)
	default:
		patterns, err = parseJSONPatterns(data)
	}
	if err != nil {
		if errors.Is(err, ErrInvalidPattern) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestUnparsable, path, err)
	}

	return patterns, nil
}

// packageJSON holds the only field read from package.json.
// Workspaces is either a list of patterns or an object with a packages list.
type packageJSON struct {
	Workspaces json.RawMessage `json:"workspaces"`
}

func parseJSONPatterns(data []byte) ([]string, error) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}

	ws := bytes.TrimSpace(pkg.Workspaces)
	if len(ws) == 0 || bytes.Equal(ws, []byte("null")) {
		return nil, nil
	}

	var entries []json.RawMessage
	if ws[0] == '[' {
		if err := json.Unmarshal(ws, &entries); err != nil {
			return nil, err
		}
	} else {
		var obj struct {
			Packages []json.RawMessage `json:"packages"`
		}
		if err := json.Unmarshal(ws, &obj); err != nil {
			return nil, err
		}
		entries = obj.Packages
	}

	patterns := make([]string, 0, len(entries))
	for i, raw := range entries {
		// encoding/json replaces invalid UTF-8 while decoding, so check the raw bytes.
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: entry %d is not valid UTF-8", ErrInvalidPattern, i)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			patterns = append(patterns, rootPattern)
			continue
		}
		if err := validatePattern(s); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		patterns = append(patterns, s)
	}
	return patterns, nil
}

// pnpmWorkspace mirrors pnpm-workspace.yaml.
type pnpmWorkspace struct {
	Packages []yaml.Node `yaml:"packages"`
}

func parseYAMLPatterns(data []byte) ([]string, error) {
	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	patterns := make([]string, 0, len(ws.Packages))
	for i, node := range ws.Packages {
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			patterns = append(patterns, rootPattern)
			continue
		}
		if err := validatePattern(node.Value); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		patterns = append(patterns, node.Value)
	}
	return patterns, nil
}

func validatePattern(p string) error {
	if !utf8.ValidString(p) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPattern, p)
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidPattern, p)
	}
	return nil
}
