package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/hostgen/internal/adapters/cli"
	"github.com/example/hostgen/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole catalog",
		Long: `Print every category and the machine registry to stdout.

The json format is the same document the json backend stores, so
"hostgen --backend sqlite export > base.json" produces a usable json store.

Examples:
  hostgen export
  hostgen export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Export(NewContext(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cliadapter.FormatJSON, "output format: json or yaml")

	return cmd
}
