package voxel

import "fmt"

// Grid is a 3D occupancy field over integer cell coordinates
// [0,Width) x [0,Height) x [0,Depth). A cell is either filled (inside the
// model) or empty.
//
// Reads outside the grid return empty; writes outside the grid are a
// programming error and panic.
type Grid struct {
	width  int
	height int
	depth  int
	cells  []bool
}

// NewGrid creates an all-empty grid with the given dimensions.
// All dimensions must be positive.
func NewGrid(width, height, depth int) *Grid {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(fmt.Sprintf("voxel: grid dimensions must be > 0: %dx%dx%d", width, height, depth))
	}
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]bool, width*height*depth),
	}
}

// Width returns the grid's x dimension
func (g *Grid) Width() int { return g.width }

// Height returns the grid's y dimension
func (g *Grid) Height() int { return g.height }

// Depth returns the grid's z dimension
func (g *Grid) Depth() int { return g.depth }

// Filled reports whether the cell at (x, y, z) is filled.
// Out-of-bounds coordinates read as empty.
func (g *Grid) Filled(x, y, z int) bool {
	if !g.inBounds(x, y, z) {
		return false
	}
	return g.cells[g.index(x, y, z)]
}

// SetFilled marks the cell at (x, y, z) as filled or empty.
// Panics when the coordinate is outside the grid.
func (g *Grid) SetFilled(x, y, z int, filled bool) {
	if !g.inBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: cell (%d,%d,%d) outside %dx%dx%d grid", x, y, z, g.width, g.height, g.depth))
	}
	g.cells[g.index(x, y, z)] = filled
}

// CountFilled returns the number of filled cells in the grid
func (g *Grid) CountFilled() int {
	count := 0
	for _, filled := range g.cells {
		if filled {
			count++
		}
	}
	return count
}

// FilledPosX reports whether the +X neighbor of (x, y, z) is filled
func (g *Grid) FilledPosX(x, y, z int) bool { return g.Filled(x+1, y, z) }

// FilledNegX reports whether the -X neighbor of (x, y, z) is filled
func (g *Grid) FilledNegX(x, y, z int) bool { return g.Filled(x-1, y, z) }

// FilledPosY reports whether the +Y neighbor of (x, y, z) is filled
func (g *Grid) FilledPosY(x, y, z int) bool { return g.Filled(x, y+1, z) }

// FilledNegY reports whether the -Y neighbor of (x, y, z) is filled
func (g *Grid) FilledNegY(x, y, z int) bool { return g.Filled(x, y-1, z) }

// FilledPosZ reports whether the +Z neighbor of (x, y, z) is filled
func (g *Grid) FilledPosZ(x, y, z int) bool { return g.Filled(x, y, z+1) }

// FilledNegZ reports whether the -Z neighbor of (x, y, z) is filled
func (g *Grid) FilledNegZ(x, y, z int) bool { return g.Filled(x, y, z-1) }

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.width &&
		y >= 0 && y < g.height &&
		z >= 0 && z < g.depth
}

func (g *Grid) index(x, y, z int) int {
	return x + g.width*(y+g.height*z)
}
