// Package wire provides dependency injection for hostgen.
// It builds the catalog store once from configuration and hands out
// services and adapters over it.
package wire

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"

	cliadapter "github.com/example/hostgen/internal/adapters/cli"
	"github.com/example/hostgen/internal/adapters/jsonfile"
	"github.com/example/hostgen/internal/adapters/sqlite"
	"github.com/example/hostgen/internal/app"
	"github.com/example/hostgen/internal/config"
	"github.com/example/hostgen/internal/db"
	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
	"github.com/example/hostgen/internal/ports/secondary"
)

var (
	cfg            = &config.Config{Backend: config.BackendJSON, DataPath: config.DefaultJSONPath}
	store          secondary.CatalogStore
	closeStore     func() error
	catalogService primary.CatalogService
	once           sync.Once
)

// Configure sets the configuration used to build services. It must be
// called before the first service is requested; later calls have no effect
// on services already built.
func Configure(c *config.Config) {
	if c != nil {
		cfg = c
	}
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// Store returns the singleton catalog store.
func Store() secondary.CatalogStore {
	once.Do(initServices)
	return store
}

// initServices initializes the store and services.
// This is called once via sync.Once.
func initServices() {
	s, closer, err := OpenStore(cfg.Backend, cfg.DataPath)
	if err != nil {
		logging.Default().Fatal().Err(err).
			Str("backend", cfg.Backend).
			Str("path", cfg.DataPath).
			Msg("Failed to open catalog store")
	}

	store = s
	closeStore = closer
	catalogService = app.NewCatalogService(store)
}

// Close releases the store if one was opened.
func Close() error {
	if closeStore == nil {
		return nil
	}
	return closeStore()
}

// OpenStore builds a catalog store for backend at path. The returned func
// releases it.
func OpenStore(backend, path string) (secondary.CatalogStore, func() error, error) {
	backend, err := config.ParseBackend(backend)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		path = config.DefaultPath(backend)
	}

	switch backend {
	case config.BackendSQLite:
		database, err := db.Open(path)
		if err != nil {
			return nil, nil, hosterrors.WrapStorage("open", path, err)
		}
		return sqlite.NewCatalogStore(database, path), database.Close, nil
	default:
		return jsonfile.NewStore(path), func() error { return nil }, nil
	}
}

// MigrationService returns a MigrationService copying the configured store
// into a new store for backend at path. The returned func releases the
// destination.
func MigrationService(backend, path string, dryRun bool) (primary.MigrationService, func() error, error) {
	dest, release, err := OpenDestination(backend, path, dryRun)
	if err != nil {
		return nil, nil, err
	}
	return app.NewMigrationService(Store(), dest), release, nil
}

// OpenDestination opens a migration destination. On a dry run a sqlite
// database that does not exist yet is not created; it reads as empty.
func OpenDestination(backend, path string, dryRun bool) (secondary.CatalogStore, func() error, error) {
	parsed, err := config.ParseBackend(backend)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		path = config.DefaultPath(parsed)
	}

	if dryRun && parsed == config.BackendSQLite {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return absentStore(path), func() error { return nil }, nil
		}
	}
	return OpenStore(parsed, path)
}

// absentStore stands in for a store file that has not been created.
type absentStore string

var _ secondary.CatalogStore = absentStore("")

func (a absentStore) Load(ctx context.Context) (*models.Catalog, error) {
	return models.NewCatalog(), nil
}

func (a absentStore) Save(ctx context.Context, c *models.Catalog) error {
	return hosterrors.NewStorageError("save", string(a), errors.New("store not created on a dry run"))
}

func (a absentStore) Location() string {
	return string(a)
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CatalogAdapter() *cliadapter.CatalogAdapter {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given output.
func CatalogAdapterWithOutput(out io.Writer) *cliadapter.CatalogAdapter {
	once.Do(initServices)
	return cliadapter.NewCatalogAdapter(catalogService, out)
}

// Shell returns the interactive menu over the given streams.
func Shell(in io.Reader, out io.Writer) *cliadapter.Shell {
	once.Do(initServices)
	return cliadapter.NewShell(catalogService, in, out)
}
