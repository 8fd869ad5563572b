package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/mr/internal/config"
	"github.com/raphi011/mr/internal/log"
	"github.com/raphi011/mr/internal/output"
	"github.com/raphi011/mr/internal/workspace"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage mr configuration.

Global config: $XDG_CONFIG_HOME/mr/config.toml (default ~/.config/mr/config.toml)
Local config:  .mr.toml (at the monorepo root)
Environment:   MR_RUNNER, MR_LOCKFILE, MR_MANIFEST, MR_THEME`,
		Example: `  mr config init          # Create default global config
  mr config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  mr config init           # Create global config
  mr config init -f        # Overwrite existing config
  mr config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}

			out.Println("Created config file:", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration for the current directory.

Inside a monorepo the root's .mr.toml is applied on top of the global
config; environment overrides win over both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			env := envFromContext(ctx)
			cfg := *config.FromContext(ctx)

			root, err := workspace.LocateRoot(env.workDir, cfg.Lockfile)
			switch {
			case err == nil:
				l.Debug("applying local config", "root", root)
				if cfg, err = repoConfig(cfg, root, env.getenv); err != nil {
					return err
				}
			case errors.Is(err, workspace.ErrRootNotFound):
				l.Debug("not inside a monorepo, showing global config")
			default:
				return err
			}

			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(cfg)
		},
	}

	return cmd
}
