package voxel

// ExtractSurface reduces a solid occupancy grid to its hollow boundary
// shell. A cell is kept when it is filled in the input and at least one of
// its six axis-aligned neighbors is empty or outside the grid; pure interior
// cells are dropped. The input grid is not modified.
//
// Cells on the grid boundary always have an out-of-bounds neighbor, so a
// filled boundary cell is always part of the shell, and an isolated filled
// cell survives as a shell of size one.
func ExtractSurface(solid *Grid) *Grid {
	surface := NewGrid(solid.Width(), solid.Height(), solid.Depth())

	for z := 0; z < solid.Depth(); z++ {
		for y := 0; y < solid.Height(); y++ {
			for x := 0; x < solid.Width(); x++ {
				if solid.Filled(x, y, z) && hasEmptyNeighbor(solid, x, y, z) {
					surface.SetFilled(x, y, z, true)
				}
			}
		}
	}

	return surface
}

func hasEmptyNeighbor(g *Grid, x, y, z int) bool {
	return !g.FilledPosX(x, y, z) ||
		!g.FilledNegX(x, y, z) ||
		!g.FilledPosY(x, y, z) ||
		!g.FilledNegY(x, y, z) ||
		!g.FilledPosZ(x, y, z) ||
		!g.FilledNegZ(x, y, z)
}
