package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the version recorded for databases created by SchemaSQL.
const SchemaVersion = 1

// SchemaSQL is the complete schema of the catalog database.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests open
// databases through Open or InitSchema instead of declaring tables.
//
// machine_sectors lists registry buckets separately from machines so an
// emptied sector survives a save/load cycle, matching the JSON document.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Category entries (supplier, type, sector, location name -> code)
CREATE TABLE IF NOT EXISTS category_entries (
	category TEXT NOT NULL CHECK(category IN ('supplier', 'type', 'sector', 'location')),
	name TEXT NOT NULL,
	code TEXT NOT NULL,
	PRIMARY KEY (category, name)
);

-- Machine registry buckets
CREATE TABLE IF NOT EXISTS machine_sectors (
	sector TEXT PRIMARY KEY
);

-- Issued hostnames
CREATE TABLE IF NOT EXISTS machines (
	sector TEXT NOT NULL,
	number TEXT NOT NULL,
	hostname TEXT NOT NULL,
	PRIMARY KEY (sector, number),
	FOREIGN KEY (sector) REFERENCES machine_sectors(sector) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_machines_hostname ON machines(hostname);
`

// InitSchema creates the schema on database if it is not there yet.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var current int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, SchemaVersion)
	}
	if current < SchemaVersion {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	return nil
}
