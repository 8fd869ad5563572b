package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/mr/internal/config"
	"github.com/raphi011/mr/internal/log"
	"github.com/raphi011/mr/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupConfig = "config"
)

// newRootCmd builds the command tree. The root command itself resolves a
// directory; init and config are subcommands.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		opts    resolveOptions
	)

	cmd := &cobra.Command{
		Use:   "mr [flags] <dir> [script]",
		Short: "Jump between packages of a JavaScript monorepo",
		Long: `mr resolves a short directory name inside a yarn/npm/pnpm/bun monorepo
and prints a shell command for the calling shell to evaluate.

Without a script it prints "cd <dir>". With a script it prints
"<runner> run --cwd=<dir> <script>". Install the shell wrapper with
'mr init <shell>' so the command is evaluated for you.

Directory arguments:
  -        the previous directory ($OLDPWD)
  /        the monorepo root
  .        the current directory
  <name>   the first workspace package whose path ends with <name>,
           otherwise <name> looked up in the current directory and each
           parent up to the monorepo root`,
		Example: `  mr web              # cd into packages/web
  mr web build        # yarn run --cwd=<root>/packages/web build
  mr /                # cd to the monorepo root
  mr -                # cd back to the previous directory
  mr -l               # list all workspace packages
  mr -i               # pick a package interactively
  mr -d config        # a package named like a subcommand`,
		Args:                  cobra.RangeArgs(0, 2),
		ValidArgsFunction:     completeArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), opts, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show how the directory was resolved")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List workspace package directories")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to resolve (instead of the first argument)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Pick the package with a fuzzy finder")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the resolved directory to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("list", "interactive")
	cmd.MarkFlagsMutuallyExclusive("list", "dir")
	cmd.MarkFlagsMutuallyExclusive("list", "copy")

	_ = cmd.RegisterFlagCompletionFunc("dir", completeDirFlag)

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"})
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.SetCompletionCommandGroupID(GroupConfig)
	cmd.SetHelpCommandGroupID(GroupConfig)

	return cmd
}

// Execute builds the context and runs the root command.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mr: warning: %v\n", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "mr: %v\n", err)
		os.Exit(1)
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mr: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	ctx = config.WithConfig(ctx, &cfg)
	ctx = output.WithPrinter(ctx, os.Stdout)
	ctx = withEnv(ctx, environment{
		workDir: workDir,
		oldPwd:  os.Getenv("OLDPWD"),
		getenv:  os.Getenv,
	})

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mr: %v\n", err)
		os.Exit(1)
	}
}
