// Package log provides context-aware logging for mr.
//
// Everything written through a Logger goes to stderr. Stdout is reserved for
// the shell command the caller evaluates (see the output package).
package log

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger provides diagnostic output with verbose and quiet modes.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	kv      *charmlog.Logger
}

// New creates a new logger. Quiet wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := charmlog.WarnLevel
	if verbose && !quiet {
		level = charmlog.DebugLevel
	}

	return &Logger{
		out:     out,
		verbose: verbose,
		quiet:   quiet,
		kv: charmlog.NewWithOptions(out, charmlog.Options{
			Level:           level,
			ReportTimestamp: false,
		}),
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug logs a message with key/value pairs. Only printed in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	l.kv.Debug(msg, evenKeyvals(keyvals)...)
}

// Warn logs a warning with key/value pairs unless quiet.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l.quiet {
		return
	}
	l.kv.Warn(msg, evenKeyvals(keyvals)...)
}

// IsVerbose returns true if debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func evenKeyvals(keyvals []any) []any {
	if len(keyvals)%2 != 0 {
		return keyvals[:len(keyvals)-1]
	}
	return keyvals
}
