package cli

import (
	"github.com/spf13/cobra"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/wire"
)

// CategoryCmd returns the category command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage supplier, type, sector and location codes",
		Long: `Register and list the name-to-code entries hostnames are built from.

Categories: supplier, type, sector, location.`,
	}

	cmd.AddCommand(categoryAddCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryResolveCmd())

	return cmd
}

func categoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [category] [name] [code]",
		Short: "Register a name and its code",
		Long: `Register a name with its code in a category.

Names are stored lowercase. Type codes are stored uppercase. A code
already used in the category is rejected, including the code the name
already has. Registering an existing name with a new code replaces it.

Examples:
  hostgen category add supplier Acme AC
  hostgen category add type laptop L
  hostgen category add sector ti 01
  hostgen category add location matriz 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategoryArg(args[0])
			if err != nil {
				return err
			}
			_, err = wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).AddEntry(NewContext(), category, args[1], args[2])
			return err
		},
	}
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List the entries of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategoryArg(args[0])
			if err != nil {
				return err
			}
			_, err = wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).ListCategory(NewContext(), category)
			return err
		},
	}
}

func categoryResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [category] [name]",
		Short: "Show the code registered for a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategoryArg(args[0])
			if err != nil {
				return err
			}
			_, err = wire.CatalogAdapterWithOutput(cmd.OutOrStdout()).Resolve(NewContext(), category, args[1])
			return err
		},
	}
}

func parseCategoryArg(s string) (models.Category, error) {
	category, err := models.ParseCategory(s)
	if err != nil {
		return "", hosterrors.NewInvalidInputError("category", s, "want supplier, type, sector or location")
	}
	return category, nil
}
