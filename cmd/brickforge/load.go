package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brickforge/brickforge/internal/catalogdb"
	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/catalog"
	"github.com/brickforge/brickforge/pkg/mesh"
	"github.com/brickforge/brickforge/pkg/stl"
)

// defaultFootprints covers the common full-height brick sizes and is used
// when no catalog is supplied.
var defaultFootprints = []brick.Footprint{
	{Width: 4, Depth: 2},
	{Width: 2, Depth: 4},
	{Width: 2, Depth: 2},
	{Width: 2, Depth: 1},
	{Width: 1, Depth: 1},
}

// loadMesh reads an STL or OBJ file, chosen by extension.
func loadMesh(filename string) (mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".stl":
		return stl.Load(filename)
	case ".obj":
		return mesh.LoadOBJ(filename)
	default:
		return mesh.Mesh{}, fmt.Errorf("unsupported mesh format %q (expected .stl or .obj)", filepath.Ext(filename))
	}
}

// loadFootprints resolves the footprint list from a CSV catalog, a catalog
// database, or the built-in defaults when neither is given.
func loadFootprints(csvPath, dbPath string) ([]brick.Footprint, error) {
	switch {
	case csvPath != "" && dbPath != "":
		return nil, fmt.Errorf("--catalog and --db are mutually exclusive")

	case csvPath != "":
		parts, err := catalog.LoadCSV(csvPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		return brick.FootprintsFromParts(parts)

	case dbPath != "":
		db, err := catalogdb.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog database: %w", err)
		}
		defer db.Close()

		parts, err := db.ActiveParts()
		if err != nil {
			return nil, err
		}
		return brick.FootprintsFromParts(parts)

	default:
		return defaultFootprints, nil
	}
}
