package resolve

import (
	"path/filepath"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to limit package base names that fuzzy-match fragment,
// best match first.
func Suggest(fragment string, pkgs []string, limit int) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range pkgs {
		if p == "" {
			continue
		}
		name := filepath.Base(p)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	matches := fuzzy.Find(filepath.Base(fragment), names)

	var out []string
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
