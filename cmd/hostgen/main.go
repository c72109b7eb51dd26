package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/hostgen/internal/adapters/cli"
	"github.com/example/hostgen/internal/cli"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/version"
	"github.com/example/hostgen/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hostgen",
		Short:   "hostgen - structured machine hostname generator",
		Version: version.String(),
		Long: `hostgen issues hostnames of the form CNL-<supplier><type><sector><location>-NNN
from a local catalog of supplier, type, sector and location codes.

Run without a subcommand for the interactive menu.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: cli.Bootstrap,
		RunE:              cli.RunMenu,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cli.AddGlobalFlags(rootCmd)

	// Hostname commands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.SectorsCmd())
	rootCmd.AddCommand(cli.MachinesCmd())

	// Catalog management
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.MigrateCmd())

	rootCmd.AddCommand(cli.MenuCmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil {
		logging.Default().Warn().Err(cerr).Msg("Failed to close catalog store")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.New(color.FgRed).Sprint("Error:"), cliadapter.Describe(err))
		os.Exit(1)
	}
}
