package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hostgen/internal/wire"
)

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Long: `Start the numbered interactive menu.

Running hostgen with no subcommand does the same.`,
		Args: cobra.NoArgs,
		RunE: RunMenu,
	}
}

// RunMenu runs the interactive shell on the command's streams.
func RunMenu(cmd *cobra.Command, args []string) error {
	return wire.Shell(cmd.InOrStdin(), cmd.OutOrStdout()).Run(NewContext())
}
