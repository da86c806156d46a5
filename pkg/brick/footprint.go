package brick

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/brickforge/brickforge/pkg/catalog"
)

// ErrNoFootprints is returned when catalog filtering leaves no usable
// footprint.
var ErrNoFootprints = errors.New("no usable footprints in catalog")

// ErrMissingUnitFootprint is returned when the catalog lacks the 1x1 part
// the placer relies on as the guaranteed-fitting fallback.
var ErrMissingUnitFootprint = errors.New("catalog has no 1x1 fallback footprint")

// eligibleCategory is the only part category that yields placeable
// footprints. Tiles, plates, slopes and specialty parts are excluded.
const eligibleCategory = "bricks"

// Footprint is one placement orientation of a catalog part: a width x depth
// rectangle in grid-cell units.
type Footprint struct {
	Width int
	Depth int
}

// Area returns the footprint's cell count
func (f Footprint) Area() int { return f.Width * f.Depth }

func (f Footprint) String() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Depth)
}

// FootprintsFromParts derives the ordered footprint list used for placement
// from raw catalog parts.
//
// Eligibility: active parts, height classification of exactly one grid layer
// ("1" or "1.0"), category "Bricks" (case-insensitive, whitespace-trimmed).
// The 1x2 "vertical" orientation is never emitted; a 1x2 catalog entry is
// re-expressed as its rotated 2x1 counterpart.
//
// The result is deduplicated and sorted by placement priority: area
// descending, then width descending, then depth descending. That exact
// tie-break decides which orientation is tried first when footprints share
// an area, so it is part of the output contract.
func FootprintsFromParts(parts []catalog.Part) ([]Footprint, error) {
	unique := make(map[Footprint]struct{})

	for _, part := range parts {
		if !part.Active {
			continue
		}
		if !isFullLayerHeight(part.HeightUnits) {
			continue
		}
		if strings.ToLower(strings.TrimSpace(part.CategoryName)) != eligibleCategory {
			continue
		}

		fp := Footprint{Width: part.StudX, Depth: part.StudY}
		if fp.Width == 1 && fp.Depth == 2 {
			// Forbidden vertical orientation: keep the part, rotate it.
			fp = Footprint{Width: 2, Depth: 1}
		}
		unique[fp] = struct{}{}
	}

	if len(unique) == 0 {
		return nil, fmt.Errorf("%w: expected active parts with height_units=1 and category=Bricks", ErrNoFootprints)
	}
	if _, ok := unique[Footprint{Width: 1, Depth: 1}]; !ok {
		return nil, fmt.Errorf("%w: placement needs a footprint that fits any single cell", ErrMissingUnitFootprint)
	}

	footprints := make([]Footprint, 0, len(unique))
	for fp := range unique {
		footprints = append(footprints, fp)
	}
	sort.Slice(footprints, func(i, j int) bool {
		a, b := footprints[i], footprints[j]
		if a.Area() != b.Area() {
			return a.Area() > b.Area()
		}
		if a.Width != b.Width {
			return a.Width > b.Width
		}
		return a.Depth > b.Depth
	})

	return footprints, nil
}

// isFullLayerHeight accepts the catalog's encodings of "one full grid
// layer". Sub-unit heights like "1/3" (plates) are rejected.
func isFullLayerHeight(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "1" || trimmed == "1.0"
}
