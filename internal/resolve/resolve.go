package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/mr/internal/workspace"
)

var (
	// ErrNotFound is returned when neither the package list nor the upward walk
	// resolves the fragment.
	ErrNotFound = errors.New("could not find given directory within project")
	// ErrInvalidInput is returned for fragments that cannot name a path.
	ErrInvalidInput = errors.New("invalid directory fragment")
)

// Special fragments.
const (
	Previous = "-"
	Root     = "/"
	Current  = "."
)

// Resolver resolves fragments against a monorepo.
type Resolver struct {
	// Root is the canonical monorepo root.
	Root string
	// CurrentDir is the directory the user is in. It must be inside Root.
	CurrentDir string
	// PreviousDir is returned for "-". Falls back to CurrentDir when empty.
	PreviousDir string
	// Packages returns the workspace package directories. It is only called
	// when no special fragment matched. Nil means no packages.
	Packages func() ([]string, error)
}

// Resolve returns the directory the fragment refers to.
func (r *Resolver) Resolve(fragment string) (string, error) {
	if err := validateFragment(fragment); err != nil {
		return "", err
	}

	switch fragment {
	case Previous:
		if r.PreviousDir != "" {
			return r.PreviousDir, nil
		}
		return r.CurrentDir, nil
	case Root:
		return r.Root, nil
	case Current:
		return r.CurrentDir, nil
	}

	var pkgs []string
	if r.Packages != nil {
		var err error
		pkgs, err = r.Packages()
		if err != nil {
			return "", err
		}
	}

	if match, ok := SuffixMatch(pkgs, fragment); ok {
		return workspace.Canonical(match)
	}

	path, err := r.walkUp(fragment)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", &NotFoundError{Fragment: fragment, Suggestions: Suggest(fragment, pkgs, maxSuggestions)}
		}
		return "", err
	}
	return path, nil
}

// SuffixMatch returns the first non-empty entry ending with fragment.
func SuffixMatch(pkgs []string, fragment string) (string, bool) {
	for _, p := range pkgs {
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, fragment) {
			return p, true
		}
	}
	return "", false
}

// walkUp tests dir/fragment from CurrentDir up to and including Root.
func (r *Resolver) walkUp(fragment string) (string, error) {
	dir, err := workspace.Canonical(r.CurrentDir)
	if err != nil {
		return "", fmt.Errorf("resolve current directory: %w", err)
	}
	if !within(r.Root, dir) {
		return "", ErrNotFound
	}

	for {
		candidate := filepath.Join(dir, fragment)
		if _, err := os.Stat(candidate); err == nil {
			return workspace.Canonical(candidate)
		}

		if dir == r.Root {
			return "", ErrNotFound
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// within reports whether dir is root or below it.
func within(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func validateFragment(fragment string) error {
	switch {
	case fragment == "":
		return fmt.Errorf("%w: empty", ErrInvalidInput)
	case strings.ContainsRune(fragment, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidInput, fragment)
	}
	return nil
}

// NotFoundError reports an unresolved fragment together with close package
// names. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Fragment    string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrNotFound, e.Fragment)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
