package brick

import (
	"errors"
	"fmt"

	"github.com/brickforge/brickforge/pkg/voxel"
)

// ErrNoFootprintFits is returned when the placer reaches a filled, uncovered
// cell no footprint can cover. With a catalog that passed
// FootprintsFromParts this cannot happen (the 1x1 fallback always fits), so
// it signals a contract violation, not a recoverable condition.
var ErrNoFootprintFits = errors.New("no footprint fits")

// Place tiles every filled voxel of the surface shell with bricks from the
// given footprint list, largest-first.
//
// The scan is a single fixed order: z ascending (bottom layer first), then y
// ascending, then x ascending. At each filled, uncovered cell the first
// footprint in priority order whose whole rectangle is in bounds, filled and
// uncovered is placed. The scan direction is never mirrored or alternated
// per layer; doing so would make output depend on layer parity and break
// symmetry between mirrored inputs.
//
// The result covers every filled shell voxel exactly once, bricks never
// overlap, and the same grid and footprint list always produce the same
// bricks in the same order.
func Place(surface *voxel.Grid, footprints []Footprint) ([]Brick, error) {
	if surface == nil {
		return nil, errors.New("surface grid must not be nil")
	}
	if len(footprints) == 0 {
		return nil, ErrNoFootprints
	}

	covered := newCoverageMask(surface.Width(), surface.Height(), surface.Depth())
	var bricks []Brick

	for z := 0; z < surface.Depth(); z++ {
		for y := 0; y < surface.Height(); y++ {
			for x := 0; x < surface.Width(); x++ {
				if !surface.Filled(x, y, z) || covered.get(x, y, z) {
					continue
				}

				placed, err := placeAt(surface, covered, x, y, z, footprints)
				if err != nil {
					return nil, err
				}
				bricks = append(bricks, placed)
				covered.markBrick(placed)
			}
		}
	}

	return bricks, nil
}

// placeAt tries each footprint in priority order at (x, y, z) and returns
// the first that fits as a placed brick.
func placeAt(surface *voxel.Grid, covered *coverageMask, x, y, z int, footprints []Footprint) (Brick, error) {
	for _, fp := range footprints {
		if fits(surface, covered, x, y, z, fp) {
			return Brick{X: x, Y: y, Z: z, Width: fp.Width, Depth: fp.Depth, Height: 1}, nil
		}
	}
	return Brick{}, fmt.Errorf("%w at (%d,%d,%d): footprint list must include 1x1 as fallback", ErrNoFootprintFits, x, y, z)
}

// fits reports whether every cell of the footprint rectangle at (x, y, z) is
// in bounds, filled in the shell and not yet covered.
func fits(surface *voxel.Grid, covered *coverageMask, x, y, z int, fp Footprint) bool {
	if x+fp.Width > surface.Width() || y+fp.Depth > surface.Height() {
		return false
	}
	for dy := 0; dy < fp.Depth; dy++ {
		for dx := 0; dx < fp.Width; dx++ {
			cx, cy := x+dx, y+dy
			if !surface.Filled(cx, cy, z) || covered.get(cx, cy, z) {
				return false
			}
		}
	}
	return true
}

// coverageMask tracks which shell cells have already been claimed by a
// brick during a single placement run.
type coverageMask struct {
	width, height int
	cells         []bool
}

func newCoverageMask(width, height, depth int) *coverageMask {
	return &coverageMask{
		width:  width,
		height: height,
		cells:  make([]bool, width*height*depth),
	}
}

func (m *coverageMask) get(x, y, z int) bool {
	return m.cells[x+m.width*(y+m.height*z)]
}

func (m *coverageMask) markBrick(b Brick) {
	for z := b.Z; z < b.MaxZ(); z++ {
		for y := b.Y; y < b.MaxY(); y++ {
			for x := b.X; x < b.MaxX(); x++ {
				m.cells[x+m.width*(y+m.height*z)] = true
			}
		}
	}
}
