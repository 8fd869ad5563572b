package main

import (
	"context"
	"os"

	"github.com/raphi011/mr/internal/shell"
)

// environment is the process state a run depends on besides flags.
type environment struct {
	workDir string
	oldPwd  string
	getenv  func(string) string
}

type envKey struct{}

func withEnv(ctx context.Context, env environment) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// envFromContext returns the attached environment, or the process's own.
func envFromContext(ctx context.Context) environment {
	if env, ok := ctx.Value(envKey{}).(environment); ok {
		return env
	}
	wd, _ := os.Getwd()
	return environment{
		workDir: wd,
		oldPwd:  os.Getenv("OLDPWD"),
		getenv:  os.Getenv,
	}
}

// dialect is the quoting the evaluating shell expects, as announced by the
// wrapper function.
func (e environment) dialect() shell.Dialect {
	if e.getenv == nil {
		return shell.Bash
	}
	return shell.DialectFor(e.getenv(shell.EnvShell))
}
