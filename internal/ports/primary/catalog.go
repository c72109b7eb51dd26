package primary

import (
	"context"

	"github.com/example/hostgen/internal/models"
)

// CatalogService defines the primary port for catalog and hostname operations.
type CatalogService interface {
	// CheckStore loads the store once so an unreadable store is reported up front.
	CheckStore(ctx context.Context) error

	// AddCategoryEntry registers name->code in a category.
	AddCategoryEntry(ctx context.Context, req AddCategoryEntryRequest) (*CategoryEntry, error)

	// ResolveCategory looks up a name in a category without mutating anything.
	ResolveCategory(ctx context.Context, category models.Category, name string) (*Resolution, error)

	// ListCategory lists the entries of a category sorted by name.
	ListCategory(ctx context.Context, category models.Category) ([]*CategoryEntry, error)

	// GenerateHostname issues a new hostname and persists it.
	GenerateHostname(ctx context.Context, req GenerateHostnameRequest) (*GenerateHostnameResponse, error)

	// DeleteHostname removes an issued hostname.
	DeleteHostname(ctx context.Context, hostname string) (*DeleteHostnameResponse, error)

	// ListSectors summarizes every sector bucket of the registry.
	ListSectors(ctx context.Context) ([]*SectorSummary, error)

	// ListMachines lists the machines of a sector grouped by code prefix.
	ListMachines(ctx context.Context, sector string) ([]*MachineGroup, error)

	// Snapshot returns a copy of the whole catalog for export.
	Snapshot(ctx context.Context) (*models.Catalog, error)
}

// AddCategoryEntryRequest contains parameters for registering a category entry.
type AddCategoryEntryRequest struct {
	Category models.Category
	Name     string
	Code     string
}

// CategoryEntry is one name->code pair of a category at the port boundary.
type CategoryEntry struct {
	Category models.Category
	Name     string
	Code     string
	Replaced string // previous code when an existing name was overwritten
}

// Resolution is the outcome of a category lookup. Found is false when the
// name is not registered; that is not an error.
type Resolution struct {
	Category models.Category
	Name     string // normalized name
	Code     string
	Found    bool
}

// GenerateHostnameRequest contains the four category names of a new machine.
type GenerateHostnameRequest struct {
	Supplier string
	Type     string
	Sector   string
	Location string
	Number   int // 0 picks the smallest free number
}

// GenerateHostnameResponse contains the result of issuing a hostname.
type GenerateHostnameResponse struct {
	Hostname string
	Sector   string
	Number   int
}

// DeleteHostnameResponse identifies the registry entry that was removed.
type DeleteHostnameResponse struct {
	Hostname string
	Sector   string
	Number   string
}

// SectorSummary reports how many machines a sector holds.
type SectorSummary struct {
	Sector   string
	Code     string // "" when the sector is no longer in the sector map
	Machines int
}

// MachineGroup holds the hostnames of one sector sharing a code prefix.
// Prefix is "" for hostnames that do not parse.
type MachineGroup struct {
	Prefix    string
	Hostnames []string
}
