// Package catalog loads and curates the external parts catalog the brick
// placer draws its footprints from.
package catalog

import "fmt"

// Part is one curated catalog record. StudX and StudY are the footprint in
// grid-cell units; HeightUnits is the raw height classification from the
// catalog ("1" for a full brick, "1/3" for a plate, ...).
type Part struct {
	PartID       string
	Name         string
	CategoryID   int
	CategoryName string
	StudX        int
	StudY        int
	HeightUnits  string
	Material     string
	Active       bool
}

// Validate checks the record-level constraints every catalog source must
// guarantee before a Part enters the pipeline.
func (p Part) Validate() error {
	if p.PartID == "" {
		return fmt.Errorf("part_id must not be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if p.CategoryName == "" {
		return fmt.Errorf("category_name must not be empty")
	}
	if p.StudX <= 0 {
		return fmt.Errorf("stud_x must be > 0, got %d", p.StudX)
	}
	if p.StudY <= 0 {
		return fmt.Errorf("stud_y must be > 0, got %d", p.StudY)
	}
	if p.HeightUnits == "" {
		return fmt.Errorf("height_units must not be empty")
	}
	if p.Material == "" {
		return fmt.Errorf("material must not be empty")
	}
	return nil
}

// FilterActive returns the active parts in their original order
func FilterActive(parts []Part) []Part {
	active := make([]Part, 0, len(parts))
	for _, part := range parts {
		if part.Active {
			active = append(active, part)
		}
	}
	return active
}
