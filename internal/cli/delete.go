package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/hostgen/internal/wire"
)

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [hostname]",
		Short: "Delete an issued hostname",
		Long: `Remove a hostname from the machine registry, freeing its sequence number.

The hostname must match exactly. Nothing is written when it is not found.

Examples:
  hostgen delete CNL-ACL011-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Delete(NewContext(), args[0])
			return err
		},
	}
}
