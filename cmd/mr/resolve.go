package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/mr/internal/config"
	"github.com/raphi011/mr/internal/log"
	"github.com/raphi011/mr/internal/output"
	"github.com/raphi011/mr/internal/resolve"
	"github.com/raphi011/mr/internal/ui/picker"
	"github.com/raphi011/mr/internal/ui/styles"
	"github.com/raphi011/mr/internal/workspace"
)

var (
	errMissingDir    = errors.New("missing directory argument (see 'mr --help')")
	errNoTerminal    = errors.New("interactive mode needs a terminal")
	errListArguments = errors.New("--list takes no arguments")
)

type resolveOptions struct {
	list        bool
	dir         string
	interactive bool
	copy        bool
}

// target splits the positional arguments into the directory fragment and the
// optional script. With --dir or --interactive every positional is a script.
func (o resolveOptions) target(args []string) (fragment, script string, err error) {
	switch {
	case o.list:
		if len(args) > 0 {
			return "", "", errListArguments
		}
		return "", "", nil
	case o.dir != "" || o.interactive:
		if len(args) > 1 {
			return "", "", fmt.Errorf("unexpected argument %q", args[1])
		}
		if len(args) == 1 {
			script = args[0]
		}
		return o.dir, script, nil
	case len(args) == 0:
		return "", "", errMissingDir
	}

	fragment = args[0]
	if len(args) == 2 {
		script = args[1]
	}
	return fragment, script, nil
}

// runResolve is the root command: find the directory and print the command
// that takes the shell there.
func runResolve(ctx context.Context, opts resolveOptions, args []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	env := envFromContext(ctx)
	cfg := *config.FromContext(ctx)

	fragment, script, err := opts.target(args)
	if err != nil {
		return err
	}

	cwd, err := workspace.Canonical(env.workDir)
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	// The previous directory does not depend on the monorepo.
	if fragment == resolve.Previous && !opts.interactive {
		r := &resolve.Resolver{CurrentDir: cwd, PreviousDir: env.oldPwd}
		dir, err := r.Resolve(fragment)
		if err != nil {
			return err
		}
		l.Debug("resolved previous directory", "dir", dir)
		return emit(ctx, cfg, opts, dir, script)
	}

	root, err := workspace.LocateRoot(cwd, cfg.Lockfile)
	if err != nil {
		if errors.Is(err, workspace.ErrRootNotFound) {
			return fmt.Errorf("no %s found in %s or any parent directory: %w", cfg.Lockfile, cwd, err)
		}
		return err
	}
	l.Debug("located monorepo root", "root", root, "lockfile", cfg.Lockfile)

	cfg, err = repoConfig(cfg, root, env.getenv)
	if err != nil {
		return err
	}

	packages := sync.OnceValues(func() ([]string, error) {
		return workspace.Expand(ctx, root, cfg.Manifest)
	})

	if opts.list {
		pkgs, err := packages()
		if err != nil {
			return err
		}
		line, err := env.dialect().List(pkgs)
		if err != nil {
			return err
		}
		return out.Command(line)
	}

	var dir string
	if opts.interactive {
		dir, err = pick(ctx, cfg, root, fragment, packages)
		if err != nil {
			return err
		}
		if dir == "" {
			l.Debug("selection cancelled")
			return nil
		}
	} else {
		r := &resolve.Resolver{
			Root:        root,
			CurrentDir:  cwd,
			PreviousDir: env.oldPwd,
			Packages:    packages,
		}
		dir, err = r.Resolve(fragment)
		if err != nil {
			return err
		}
	}
	l.Debug("resolved directory", "fragment", fragment, "dir", dir)

	return emit(ctx, cfg, opts, dir, script)
}

// repoConfig layers the root's .mr.toml over cfg. Environment overrides are
// reapplied so they win over the per-repo file.
func repoConfig(cfg config.Config, root string, getenv func(string) string) (config.Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	local, err := config.LoadLocal(root)
	if err != nil {
		return cfg, err
	}
	merged := *config.MergeLocal(&cfg, local)
	if err := merged.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	return merged, nil
}

// pick runs the fuzzy picker over the workspace packages. An empty result
// means the user cancelled.
func pick(ctx context.Context, cfg config.Config, root, filter string, packages func() ([]string, error)) (string, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return "", errNoTerminal
	}

	pkgs, err := packages()
	if err != nil {
		return "", err
	}
	if len(pkgs) == 0 {
		return "", fmt.Errorf("no workspace packages found in %s", root)
	}

	styles.Init(cfg.Theme)
	res, err := picker.Run("Package", filter, picker.Items(root, pkgs))
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", nil
	}
	log.FromContext(ctx).Debug("picked package", "dir", res.Path)
	return workspace.Canonical(res.Path)
}

// emit prints the command for dir, then handles --copy and the terminal hint.
func emit(ctx context.Context, cfg config.Config, opts resolveOptions, dir, script string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	sh := envFromContext(ctx).dialect()

	var line string
	var err error
	if script != "" {
		line, err = sh.Run(cfg.Runner, dir, script)
	} else {
		line, err = sh.Cd(dir)
	}
	if err != nil {
		return err
	}

	if opts.copy {
		if err := clipboard.WriteAll(dir); err != nil {
			l.Warn("failed to copy to clipboard", "err", err)
		}
	}

	if f, ok := out.Writer().(*os.File); ok && isTerminal(f) {
		l.Println("mr prints a command for your shell to evaluate; run 'mr init <shell>' to install the wrapper.")
	}

	return out.Command(line)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
