package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hostgen/internal/wire"
)

// SectorsCmd returns the sectors command
func SectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "List sectors with their machine counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Sectors(NewContext())
			return err
		},
	}
}

// MachinesCmd returns the machines command
func MachinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "machines [sector]",
		Short: "List the machines of a sector",
		Long: `List the hostnames issued in a sector, grouped by their
supplier+type+sector+location code prefix.

Examples:
  hostgen machines ti`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Machines(NewContext(), args[0])
			return err
		},
	}
}
