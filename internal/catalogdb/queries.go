package catalogdb

import (
	"fmt"

	"github.com/brickforge/brickforge/pkg/catalog"
)

// ImportParts replaces the stored catalog with the given parts, preserving
// their order. The import is transactional: either every part lands or the
// previous catalog stays intact.
func (db *DB) ImportParts(parts []catalog.Part) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM parts`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO parts (part_id, name, category, category_name, stud_x, stud_y, height_units, material, active, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, part := range parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("part %q: %w", part.PartID, err)
		}
		if _, err := stmt.Exec(
			part.PartID, part.Name, part.CategoryID, part.CategoryName,
			part.StudX, part.StudY, part.HeightUnits, part.Material,
			part.Active, i,
		); err != nil {
			return fmt.Errorf("failed to insert part %q: %w", part.PartID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// AllParts returns every stored part in import order.
func (db *DB) AllParts() ([]catalog.Part, error) {
	return db.queryParts(`
		SELECT part_id, name, category, category_name, stud_x, stud_y, height_units, material, active
		FROM parts ORDER BY position
	`)
}

// ActiveParts returns the active parts in import order.
func (db *DB) ActiveParts() ([]catalog.Part, error) {
	return db.queryParts(`
		SELECT part_id, name, category, category_name, stud_x, stud_y, height_units, material, active
		FROM parts WHERE active = 1 ORDER BY position
	`)
}

// CountParts returns the number of stored parts.
func (db *DB) CountParts() (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM parts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count parts: %w", err)
	}
	return count, nil
}

func (db *DB) queryParts(query string) ([]catalog.Part, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts: %w", err)
	}
	defer rows.Close()

	var parts []catalog.Part
	for rows.Next() {
		var p catalog.Part
		if err := rows.Scan(
			&p.PartID, &p.Name, &p.CategoryID, &p.CategoryName,
			&p.StudX, &p.StudY, &p.HeightUnits, &p.Material, &p.Active,
		); err != nil {
			return nil, fmt.Errorf("failed to scan part row: %w", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read part rows: %w", err)
	}
	return parts, nil
}
