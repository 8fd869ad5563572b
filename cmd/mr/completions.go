package main

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/mr/internal/config"
	"github.com/raphi011/mr/internal/resolve"
	"github.com/raphi011/mr/internal/workspace"
)

// completeArgs completes the directory fragment and then the script name.
func completeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dirFlag, _ := cmd.Flags().GetString("dir")
	interactive, _ := cmd.Flags().GetBool("interactive")

	switch {
	case dirFlag != "" && len(args) == 0:
		return completeScripts(ctx, dirFlag, toComplete)
	case dirFlag != "" || interactive:
		return nil, cobra.ShellCompDirectiveNoFileComp
	case len(args) == 0:
		return completeDirs(ctx, toComplete), cobra.ShellCompDirectiveNoFileComp
	case len(args) == 1:
		return completeScripts(ctx, args[0], toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func completeDirFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return completeDirs(ctx, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirs offers package base names and root-relative package paths.
func completeDirs(ctx context.Context, toComplete string) []string {
	root, pkgs, ok := workspacePackages(ctx)
	if !ok {
		return nil
	}

	var matches []string
	for _, p := range pkgs {
		candidates := []string{filepath.Base(p)}
		if rel, err := filepath.Rel(root, p); err == nil && rel != "." {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
		for _, c := range candidates {
			if strings.HasPrefix(c, toComplete) && !slices.Contains(matches, c) {
				matches = append(matches, c)
			}
		}
	}
	return matches
}

// completeScripts offers the scripts of the package fragment resolves to.
func completeScripts(ctx context.Context, fragment, toComplete string) ([]string, cobra.ShellCompDirective) {
	env := envFromContext(ctx)
	root, pkgs, ok := workspacePackages(ctx)
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cwd, err := workspace.Canonical(env.workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	r := &resolve.Resolver{
		Root:        root,
		CurrentDir:  cwd,
		PreviousDir: env.oldPwd,
		Packages:    func() ([]string, error) { return pkgs, nil },
	}
	dir, err := r.Resolve(fragment)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	scripts, err := workspace.Scripts(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, s := range scripts {
		if strings.HasPrefix(s, toComplete) {
			matches = append(matches, s)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// workspacePackages locates the root from the working directory and expands
// its packages. Completion never reports errors, it just offers nothing.
func workspacePackages(ctx context.Context) (string, []string, bool) {
	env := envFromContext(ctx)
	cfg := *config.FromContext(ctx)

	root, err := workspace.LocateRoot(env.workDir, cfg.Lockfile)
	if err != nil {
		return "", nil, false
	}
	if cfg, err = repoConfig(cfg, root, env.getenv); err != nil {
		return "", nil, false
	}
	pkgs, err := workspace.Expand(ctx, root, cfg.Manifest)
	if err != nil {
		return "", nil, false
	}
	return root, pkgs, true
}
