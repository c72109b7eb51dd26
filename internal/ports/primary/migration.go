package primary

import "context"

// MigrationService copies the catalog from the configured store into another one.
type MigrationService interface {
	// Migrate copies every category entry and registry bucket to the destination.
	Migrate(ctx context.Context, req MigrateRequest) (*MigrateResponse, error)
}

// MigrateRequest contains parameters for a migration.
type MigrateRequest struct {
	DryRun bool // Count what would be copied without writing
	Force  bool // Overwrite a destination that already holds data
}

// MigrateResponse summarizes a migration.
type MigrateResponse struct {
	Source      string
	Destination string
	Entries     int // Category entries across all four categories
	Sectors     int
	Machines    int
	Written     bool
}
