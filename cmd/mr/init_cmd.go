package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/mr/internal/output"
	"github.com/raphi011/mr/internal/shell"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Output shell wrapper function",
		GroupID:   GroupConfig,
		ValidArgs: shell.Shells,
		Args:      cobra.ExactArgs(1),
		Long: `Output the shell wrapper function that evaluates mr's output.

A subprocess cannot change the directory of its parent shell, so mr only
prints a command. The wrapper runs mr and evaluates what it printed; the
init, config, completion and help subcommands are passed through unchanged.`,
		Example: `  eval "$(mr init bash)"           # add to ~/.bashrc
  eval "$(mr init zsh)"            # add to ~/.zshrc
  mr init fish | source            # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := shell.Init(args[0])
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Print(script)
			return nil
		},
	}

	return cmd
}
