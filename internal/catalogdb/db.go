// Package catalogdb persists the curated parts catalog in a local sqlite
// database so conversions can run against a stable, queryable catalog
// instead of re-reading CSV exports.
package catalogdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the catalog database handle.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the catalog database at path and brings its
// schema up to date.
func Open(path string) (*DB, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	db := &DB{handle}
	if err := db.migrateUp(); err != nil {
		handle.Close()
		return nil, err
	}
	return db, nil
}
