package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
	"github.com/example/hostgen/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var req primary.GenerateHostnameRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a hostname for a new machine",
		Long: `Generate and register a hostname from the four category names.

The sequence number is the smallest free number in the sector unless
--number is given. Unknown names are not registered automatically; use
"hostgen category add" or the interactive menu.

Examples:
  hostgen generate --supplier acme --type laptop --sector ti --location matriz
  hostgen generate --supplier acme --type desktop --sector rh --location matriz --number 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Generate(NewContext(), req)
			return withRegisterHint(err)
		},
	}

	cmd.Flags().StringVar(&req.Supplier, "supplier", "", "supplier name")
	cmd.Flags().StringVar(&req.Type, "type", "", "machine type name")
	cmd.Flags().StringVar(&req.Sector, "sector", "", "sector name")
	cmd.Flags().StringVar(&req.Location, "location", "", "location name")
	cmd.Flags().IntVar(&req.Number, "number", 0, "explicit sequence number (default: next free)")
	for _, name := range []string{"supplier", "type", "sector", "location"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// withRegisterHint adds the command that would register a missing category name.
func withRegisterHint(err error) error {
	var nf *hosterrors.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	if _, perr := models.ParseCategory(nf.Resource); perr != nil {
		return err
	}
	return fmt.Errorf("%w\nRegister it with: hostgen category add %s %s <code>", err, nf.Resource, nf.Name)
}
