package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidRunners lists the supported script runners.
var ValidRunners = []string{"yarn", "npm", "pnpm", "bun"}

// ValidThemes lists the picker colour schemes.
var ValidThemes = []string{"default", "nord", "dracula", "none"}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateFileName checks that value (if non-empty) is a bare file name.
func validateFileName(value, field string) error {
	if value == "" {
		return nil
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, 0) {
		return fmt.Errorf("invalid %s %q: must be a file name without path separators", field, value)
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
