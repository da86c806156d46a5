package brick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickforge/brickforge/pkg/catalog"
)

func part(studX, studY int, heightUnits, categoryName string, active bool) catalog.Part {
	return catalog.Part{
		PartID:       "p",
		Name:         "part",
		CategoryName: categoryName,
		StudX:        studX,
		StudY:        studY,
		HeightUnits:  heightUnits,
		Material:     "ABS",
		Active:       active,
	}
}

func TestFootprintsFilteringRules(t *testing.T) {
	parts := []catalog.Part{
		part(1, 1, "1", "Bricks", true),
		part(2, 2, "1", "Bricks", true),
		part(4, 2, "1", "Bricks", false),     // inactive
		part(2, 4, "1/3", "Bricks", true),    // plate height
		part(3, 3, "1", "Tiles", true),       // wrong category
		part(2, 2, "1", "Slopes", true),      // wrong category
		part(8, 2, "2", "Bricks", true),      // double height
		part(4, 4, "1.0", "Bricks", true),    // "1.0" counts as one layer
		part(6, 2, "1", "  bricks  ", true),  // case/whitespace-insensitive
	}

	footprints, err := FootprintsFromParts(parts)
	require.NoError(t, err)

	assert.Equal(t, []Footprint{
		{Width: 4, Depth: 4},
		{Width: 6, Depth: 2},
		{Width: 2, Depth: 2},
		{Width: 1, Depth: 1},
	}, footprints)
}

func TestFootprintsForbiddenOrientationRotated(t *testing.T) {
	parts := []catalog.Part{
		part(1, 1, "1", "Bricks", true),
		part(1, 2, "1", "Bricks", true),
	}

	footprints, err := FootprintsFromParts(parts)
	require.NoError(t, err)

	assert.Contains(t, footprints, Footprint{Width: 2, Depth: 1})
	assert.NotContains(t, footprints, Footprint{Width: 1, Depth: 2})
}

func TestFootprintsForbiddenOrientationDedupedWithRotation(t *testing.T) {
	// A catalog carrying both orientations yields the horizontal one once.
	parts := []catalog.Part{
		part(1, 1, "1", "Bricks", true),
		part(1, 2, "1", "Bricks", true),
		part(2, 1, "1", "Bricks", true),
	}

	footprints, err := FootprintsFromParts(parts)
	require.NoError(t, err)
	assert.Equal(t, []Footprint{
		{Width: 2, Depth: 1},
		{Width: 1, Depth: 1},
	}, footprints)
}

func TestFootprintsPriorityOrder(t *testing.T) {
	parts := []catalog.Part{
		part(1, 1, "1", "Bricks", true),
		part(2, 4, "1", "Bricks", true),
		part(4, 2, "1", "Bricks", true),
		part(8, 1, "1", "Bricks", true),
		part(2, 2, "1", "Bricks", true),
	}

	footprints, err := FootprintsFromParts(parts)
	require.NoError(t, err)

	// Area desc; within area 8, width desc puts 8x1 before 4x2 before 2x4.
	assert.Equal(t, []Footprint{
		{Width: 8, Depth: 1},
		{Width: 4, Depth: 2},
		{Width: 2, Depth: 4},
		{Width: 2, Depth: 2},
		{Width: 1, Depth: 1},
	}, footprints)
}

func TestFootprintsEmptyAfterFiltering(t *testing.T) {
	parts := []catalog.Part{
		part(2, 2, "1/2", "Bricks", true),
		part(2, 2, "1", "Plates", true),
		part(2, 2, "1", "Bricks", false),
	}

	_, err := FootprintsFromParts(parts)
	assert.ErrorIs(t, err, ErrNoFootprints)
}

func TestFootprintsMissingUnitFallback(t *testing.T) {
	parts := []catalog.Part{
		part(2, 2, "1", "Bricks", true),
		part(4, 2, "1", "Bricks", true),
	}

	_, err := FootprintsFromParts(parts)
	assert.ErrorIs(t, err, ErrMissingUnitFootprint)
}

func TestFootprintsDeterministicOrder(t *testing.T) {
	parts := []catalog.Part{
		part(1, 1, "1", "Bricks", true),
		part(2, 2, "1", "Bricks", true),
		part(4, 1, "1", "Bricks", true),
		part(1, 4, "1", "Bricks", true),
		part(3, 2, "1", "Bricks", true),
	}

	first, err := FootprintsFromParts(parts)
	require.NoError(t, err)
	second, err := FootprintsFromParts(parts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
