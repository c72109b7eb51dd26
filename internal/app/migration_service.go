package app

import (
	"context"
	"fmt"
	"path/filepath"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
	"github.com/example/hostgen/internal/ports/secondary"
)

// MigrationServiceImpl implements the MigrationService interface.
type MigrationServiceImpl struct {
	source      secondary.CatalogStore
	destination secondary.CatalogStore
}

// NewMigrationService creates a MigrationService copying source into destination.
func NewMigrationService(source, destination secondary.CatalogStore) *MigrationServiceImpl {
	return &MigrationServiceImpl{
		source:      source,
		destination: destination,
	}
}

// Migrate loads the source, checks the destination is empty (unless forced)
// and saves the source catalog there unchanged.
func (s *MigrationServiceImpl) Migrate(ctx context.Context, req primary.MigrateRequest) (*primary.MigrateResponse, error) {
	if sameLocation(s.source.Location(), s.destination.Location()) {
		return nil, hosterrors.NewInvalidInputError("destination", s.destination.Location(), "same as the source store")
	}

	c, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load source catalog: %w", err)
	}
	c.Normalize()

	resp := &primary.MigrateResponse{
		Source:      s.source.Location(),
		Destination: s.destination.Location(),
		Entries:     entryCount(c),
		Sectors:     len(c.Machines),
		Machines:    c.MachineCount(),
	}

	if !req.Force {
		existing, err := s.destination.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect destination: %w", err)
		}
		existing.Normalize()
		if entryCount(existing) > 0 || len(existing.Machines) > 0 {
			return nil, hosterrors.NewInvalidInputError("destination", s.destination.Location(), "already holds a catalog; use --force to overwrite")
		}
	}

	if req.DryRun {
		return resp, nil
	}

	if err := s.destination.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save destination catalog: %w", err)
	}
	resp.Written = true

	logging.FromContext(ctx).Info().
		Str("source", resp.Source).
		Str("destination", resp.Destination).
		Int("entries", resp.Entries).
		Int("machines", resp.Machines).
		Msg("Catalog migrated")

	return resp, nil
}

func entryCount(c *models.Catalog) int {
	n := 0
	for _, category := range models.Categories {
		n += len(c.Entries(category))
	}
	return n
}

// sameLocation reports whether two store locations name the same file.
func sameLocation(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Ensure MigrationServiceImpl implements the interface
var _ primary.MigrationService = (*MigrationServiceImpl)(nil)
