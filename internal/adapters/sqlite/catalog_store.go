// Package sqlite contains the SQLite implementation of the catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/secondary"
)

// CatalogStore implements secondary.CatalogStore with SQLite.
// It keeps the whole-document semantics of the JSON store: Save replaces
// every row inside one transaction.
type CatalogStore struct {
	db       *sql.DB
	location string
}

// NewCatalogStore creates a new SQLite catalog store. location is only used
// in messages.
func NewCatalogStore(db *sql.DB, location string) *CatalogStore {
	return &CatalogStore{db: db, location: location}
}

// Location returns the database path.
func (s *CatalogStore) Location() string {
	return s.location
}

// Load reads every table into a catalog.
func (s *CatalogStore) Load(ctx context.Context) (*models.Catalog, error) {
	c := models.NewCatalog()

	if err := s.loadEntries(ctx, c); err != nil {
		return nil, hosterrors.WrapStorage("load", s.location, err)
	}
	if err := s.loadMachines(ctx, c); err != nil {
		return nil, hosterrors.WrapStorage("load", s.location, err)
	}

	return c, nil
}

func (s *CatalogStore) loadEntries(ctx context.Context, c *models.Catalog) error {
	rows, err := s.db.QueryContext(ctx, "SELECT category, name, code FROM category_entries")
	if err != nil {
		return fmt.Errorf("failed to query category entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, name, code string
		if err := rows.Scan(&category, &name, &code); err != nil {
			return fmt.Errorf("failed to scan category entry: %w", err)
		}
		entries := c.Entries(models.Category(category))
		if entries == nil {
			return fmt.Errorf("unknown category %q in database", category)
		}
		entries[name] = code
	}
	return rows.Err()
}

func (s *CatalogStore) loadMachines(ctx context.Context, c *models.Catalog) error {
	sectors, err := s.db.QueryContext(ctx, "SELECT sector FROM machine_sectors")
	if err != nil {
		return fmt.Errorf("failed to query machine sectors: %w", err)
	}
	defer sectors.Close()

	for sectors.Next() {
		var sector string
		if err := sectors.Scan(&sector); err != nil {
			return fmt.Errorf("failed to scan machine sector: %w", err)
		}
		c.Machines[sector] = map[string]string{}
	}
	if err := sectors.Err(); err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT sector, number, hostname FROM machines")
	if err != nil {
		return fmt.Errorf("failed to query machines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sector, number, hostname string
		if err := rows.Scan(&sector, &number, &hostname); err != nil {
			return fmt.Errorf("failed to scan machine: %w", err)
		}
		bucket, ok := c.Machines[sector]
		if !ok {
			bucket = map[string]string{}
			c.Machines[sector] = bucket
		}
		bucket[number] = hostname
	}
	return rows.Err()
}

// Save replaces the stored catalog with c in a single transaction.
func (s *CatalogStore) Save(ctx context.Context, c *models.Catalog) error {
	if c == nil {
		c = models.NewCatalog()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return hosterrors.WrapStorage("save", s.location, err)
	}

	if err := replaceAll(ctx, tx, c); err != nil {
		tx.Rollback()
		return hosterrors.WrapStorage("save", s.location, err)
	}

	if err := tx.Commit(); err != nil {
		return hosterrors.WrapStorage("save", s.location, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.location).
		Int("machines", c.MachineCount()).
		Msg("Store saved")
	return nil
}

func replaceAll(ctx context.Context, tx *sql.Tx, c *models.Catalog) error {
	for _, table := range []string{"machines", "machine_sectors", "category_entries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, category := range models.Categories {
		for name, code := range c.Entries(category) {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO category_entries (category, name, code) VALUES (?, ?, ?)",
				string(category), name, code,
			)
			if err != nil {
				return fmt.Errorf("failed to insert %s %q: %w", category, name, err)
			}
		}
	}

	for sector, bucket := range c.Machines {
		if _, err := tx.ExecContext(ctx, "INSERT INTO machine_sectors (sector) VALUES (?)", sector); err != nil {
			return fmt.Errorf("failed to insert sector %q: %w", sector, err)
		}
		for number, hostname := range bucket {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO machines (sector, number, hostname) VALUES (?, ?, ?)",
				sector, number, hostname,
			)
			if err != nil {
				return fmt.Errorf("failed to insert machine %s: %w", hostname, err)
			}
		}
	}

	return nil
}

// Ensure CatalogStore implements the interface
var _ secondary.CatalogStore = (*CatalogStore)(nil)
