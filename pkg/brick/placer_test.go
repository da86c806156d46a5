package brick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickforge/brickforge/pkg/voxel"
)

func shellWith(t *testing.T, width, height, depth int, cells [][3]int) *voxel.Grid {
	t.Helper()
	g := voxel.NewGrid(width, height, depth)
	for _, c := range cells {
		g.SetFilled(c[0], c[1], c[2], true)
	}
	return g
}

func TestPlaceThreeVoxelRow(t *testing.T) {
	surface := shellWith(t, 4, 4, 1, [][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	footprints := []Footprint{{Width: 2, Depth: 1}, {Width: 1, Depth: 1}}

	bricks, err := Place(surface, footprints)
	require.NoError(t, err)

	require.Equal(t, []Brick{
		{X: 0, Y: 0, Z: 0, Width: 2, Depth: 1, Height: 1},
		{X: 2, Y: 0, Z: 0, Width: 1, Depth: 1, Height: 1},
	}, bricks)
}

func TestPlaceCoversEveryFilledVoxelExactlyOnce(t *testing.T) {
	// L-shaped slab across two layers.
	cells := [][3]int{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0},
		{0, 1, 0}, {1, 1, 0},
		{0, 2, 0}, {1, 2, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
	}
	surface := shellWith(t, 5, 5, 2, cells)
	footprints := []Footprint{
		{Width: 2, Depth: 2},
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}

	bricks, err := Place(surface, footprints)
	require.NoError(t, err)

	// Count how many bricks claim each filled cell.
	coverage := map[[3]int]int{}
	for _, b := range bricks {
		assert.Equal(t, 1, b.Height, "bricks are always one layer tall")
		for z := b.Z; z < b.MaxZ(); z++ {
			for y := b.Y; y < b.MaxY(); y++ {
				for x := b.X; x < b.MaxX(); x++ {
					require.True(t, surface.Filled(x, y, z),
						"brick %v covers unfilled cell (%d,%d,%d)", b, x, y, z)
					coverage[[3]int{x, y, z}]++
				}
			}
		}
	}

	for _, c := range cells {
		assert.Equal(t, 1, coverage[c], "cell %v must be covered exactly once", c)
	}
	assert.Len(t, coverage, len(cells))
}

func TestPlaceNoOverlaps(t *testing.T) {
	cells := [][3]int{}
	// Hollow 4x4 ring on one layer.
	for i := 0; i < 4; i++ {
		cells = append(cells, [3]int{i, 0, 0}, [3]int{i, 3, 0}, [3]int{0, i, 0}, [3]int{3, i, 0})
	}
	surface := shellWith(t, 4, 4, 1, cells)
	footprints := []Footprint{
		{Width: 4, Depth: 1},
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}

	bricks, err := Place(surface, footprints)
	require.NoError(t, err)

	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			assert.False(t, bricks[i].Overlaps(bricks[j]),
				"bricks %v and %v overlap", bricks[i], bricks[j])
		}
	}
}

func TestPlaceIsDeterministic(t *testing.T) {
	cells := [][3]int{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 1, 0}, {2, 1, 0},
		{0, 2, 0}, {1, 2, 0}, {2, 2, 0},
	}
	surface := shellWith(t, 3, 3, 1, cells)
	footprints := []Footprint{
		{Width: 3, Depth: 1},
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}

	first, err := Place(surface, footprints)
	require.NoError(t, err)
	second, err := Place(surface, footprints)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("placement differs between runs (-first +second):\n%s", diff)
	}
}

func TestPlaceScanOrderBottomUp(t *testing.T) {
	cells := [][3]int{{1, 1, 2}, {1, 1, 0}, {1, 1, 1}}
	surface := shellWith(t, 3, 3, 3, cells)

	bricks, err := Place(surface, []Footprint{{Width: 1, Depth: 1}})
	require.NoError(t, err)

	require.Len(t, bricks, 3)
	assert.Equal(t, 0, bricks[0].Z)
	assert.Equal(t, 1, bricks[1].Z)
	assert.Equal(t, 2, bricks[2].Z)
}

func TestPlaceLargestFootprintWins(t *testing.T) {
	cells := [][3]int{
		{0, 0, 0}, {1, 0, 0},
		{0, 1, 0}, {1, 1, 0},
	}
	surface := shellWith(t, 2, 2, 1, cells)
	footprints := []Footprint{
		{Width: 2, Depth: 2},
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}

	bricks, err := Place(surface, footprints)
	require.NoError(t, err)

	require.Equal(t, []Brick{{X: 0, Y: 0, Z: 0, Width: 2, Depth: 2, Height: 1}}, bricks)
}

func TestPlaceWithoutFallbackFails(t *testing.T) {
	surface := shellWith(t, 3, 3, 1, [][3]int{{0, 0, 0}})

	// Only a 2x1 available: nothing fits on an isolated cell.
	_, err := Place(surface, []Footprint{{Width: 2, Depth: 1}})
	assert.ErrorIs(t, err, ErrNoFootprintFits)
}

func TestPlaceEmptyFootprintList(t *testing.T) {
	surface := shellWith(t, 2, 2, 1, [][3]int{{0, 0, 0}})

	_, err := Place(surface, nil)
	assert.ErrorIs(t, err, ErrNoFootprints)
}

func TestPlaceNilSurface(t *testing.T) {
	_, err := Place(nil, []Footprint{{Width: 1, Depth: 1}})
	assert.Error(t, err)
}

func TestPlaceEmptySurface(t *testing.T) {
	bricks, err := Place(voxel.NewGrid(4, 4, 4), []Footprint{{Width: 1, Depth: 1}})
	require.NoError(t, err)
	assert.Empty(t, bricks)
}

func TestPlaceNeverEmitsForbiddenOrientation(t *testing.T) {
	cells := [][3]int{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cells = append(cells, [3]int{x, y, 0})
		}
	}
	surface := shellWith(t, 4, 4, 1, cells)
	footprints := []Footprint{
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}

	bricks, err := Place(surface, footprints)
	require.NoError(t, err)

	for _, b := range bricks {
		assert.False(t, b.Width == 1 && b.Depth == 2,
			"placer emitted forbidden 1x2 vertical brick %v", b)
	}
}
