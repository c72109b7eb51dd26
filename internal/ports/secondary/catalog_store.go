// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/hostgen/internal/models"
)

// CatalogStore defines the secondary port for catalog persistence.
// The whole catalog is read and written at once; there are no partial updates.
type CatalogStore interface {
	// Load returns the persisted catalog, or an empty one if nothing is persisted yet.
	// Unreadable or undecodable content is reported as a StorageError.
	Load(ctx context.Context) (*models.Catalog, error)

	// Save replaces the persisted catalog with c.
	Save(ctx context.Context, c *models.Catalog) error

	// Location describes where the catalog lives, for messages and logs.
	Location() string
}
