package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hostgen/internal/config"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/ports/primary"
	"github.com/example/hostgen/internal/wire"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	var to, dest string
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the catalog into another backend",
		Long: `Copy every category entry and issued hostname from the configured
store into a new store.

The destination must be empty unless --force is given. A dry run does
not create a sqlite destination that does not exist yet.

Examples:
  hostgen migrate --to sqlite
  hostgen migrate --to sqlite --dest /var/lib/hostgen/base.db --dry-run
  hostgen --backend sqlite migrate --to json --dest base.json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := config.ParseBackend(to)
			if err != nil {
				return err
			}
			if dest == "" {
				dest = config.DefaultPath(backend)
			}

			svc, release, err := wire.MigrationService(backend, dest, dryRun)
			if err != nil {
				return err
			}
			defer func() {
				if err := release(); err != nil {
					logging.Default().Warn().Err(err).Str("dest", dest).Msg("Failed to close destination store")
				}
			}()

			resp, err := svc.Migrate(NewContext(), primary.MigrateRequest{DryRun: dryRun, Force: force})
			if err != nil {
				return err
			}

			displayMigration(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination backend: json or sqlite")
	cmd.Flags().StringVar(&dest, "dest", "", "destination path (default base.json or base.db)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be copied without writing")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite a destination that already holds a catalog")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func displayMigration(cmd *cobra.Command, resp *primary.MigrateResponse) {
	out := cmd.OutOrStdout()
	if resp.Written {
		fmt.Fprintf(out, "%s Migrated %s → %s\n", color.New(color.FgGreen).Sprint("✓"), resp.Source, resp.Destination)
	} else {
		fmt.Fprintf(out, "%s Dry run: %s → %s (nothing written)\n", color.New(color.FgYellow).Sprint("!"), resp.Source, resp.Destination)
	}
	fmt.Fprintf(out, "  Category entries: %d\n", resp.Entries)
	fmt.Fprintf(out, "  Sectors:          %d\n", resp.Sectors)
	fmt.Fprintf(out, "  Machines:         %d\n", resp.Machines)
}
