// Package shell builds the command lines mr prints for the calling shell to
// evaluate, and the wrapper functions that do the evaluating.
//
// Every path and script name is quoted so that evaluating the output never
// splits, globs or expands it. Bash and zsh words are quoted with mvdan.cc/sh;
// fish has its own single-quote rules.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrUnquotable is returned for words the shell cannot represent (NUL bytes).
var ErrUnquotable = errors.New("cannot quote for shell")

// EnvShell is set by the fish wrapper so mr quotes its output for fish.
const EnvShell = "MR_SHELL"

// Dialect is the quoting syntax of the shell evaluating mr's output.
type Dialect int

const (
	// Bash covers bash and zsh.
	Bash Dialect = iota
	Fish
)

// DialectFor maps the value of EnvShell to a Dialect. Anything but "fish"
// is Bash.
func DialectFor(name string) Dialect {
	if name == "fish" {
		return Fish
	}
	return Bash
}

// cwdFlags maps a script runner to the flag that sets its working directory.
var cwdFlags = map[string]string{
	"yarn": "--cwd",
	"bun":  "--cwd",
	"npm":  "--prefix",
	"pnpm": "--dir",
}

// Quote returns s quoted for the dialect. Words that need no quoting are
// returned unchanged.
func (d Dialect) Quote(s string) (string, error) {
	if d == Fish {
		return quoteFish(s)
	}
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrUnquotable, s, err)
	}
	return q, nil
}

// fishPlain holds the bytes fish reads literally in an unquoted word.
const fishPlain = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789/._-+,:=@"

// quoteFish single-quotes s. Inside fish single quotes only \ and ' are
// special, so control bytes and non-UTF-8 bytes pass through as they are.
func quoteFish(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", fmt.Errorf("%w: %q: NUL byte", ErrUnquotable, s)
	}
	if s != "" && strings.Trim(s, fishPlain) == "" {
		return s, nil
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'", nil
}

// Cd returns "cd <dir>".
func (d Dialect) Cd(dir string) (string, error) {
	q, err := d.Quote(dir)
	if err != nil {
		return "", err
	}
	return "cd " + q, nil
}

// Run returns "<runner> run <cwd-flag>=<dir> <script>".
func (d Dialect) Run(runner, dir, script string) (string, error) {
	flag, ok := cwdFlags[runner]
	if !ok {
		flag = "--cwd"
	}

	qDir, err := d.Quote(dir)
	if err != nil {
		return "", err
	}
	qScript, err := d.Quote(script)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s run %s=%s %s", runner, flag, qDir, qScript), nil
}

// List returns a command printing each directory on its own line.
// An empty list yields a no-op.
func (d Dialect) List(dirs []string) (string, error) {
	if len(dirs) == 0 {
		return "true", nil
	}

	words := make([]string, 0, len(dirs)+2)
	words = append(words, "printf", `'%s\n'`)
	for _, dir := range dirs {
		q, err := d.Quote(dir)
		if err != nil {
			return "", err
		}
		words = append(words, q)
	}
	return strings.Join(words, " "), nil
}

// Quote quotes s for bash/zsh.
func Quote(s string) (string, error) { return Bash.Quote(s) }

// Cd returns "cd <dir>" quoted for bash/zsh.
func Cd(dir string) (string, error) { return Bash.Cd(dir) }

// Run returns the script command quoted for bash/zsh.
func Run(runner, dir, script string) (string, error) { return Bash.Run(runner, dir, script) }

// List returns the listing command quoted for bash/zsh.
func List(dirs []string) (string, error) { return Bash.List(dirs) }
