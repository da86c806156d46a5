package voxel

import (
	"fmt"
	"math"

	"github.com/brickforge/brickforge/pkg/geometry"
	"github.com/brickforge/brickforge/pkg/mesh"
)

// Numerical tolerance for the ray-triangle intersection test. Fixed rather
// than derived from the input so identical meshes always produce identical
// grids.
const epsilon = 1e-9

// Ray-origin biases for center-sample mode, applied on the two axes
// orthogonal to the +X ray direction. They nudge sample points off shared
// triangle edges and vertices, where the parity test degenerates. The two
// values must stay close in magnitude: a large gap between them breaks
// mirror symmetry for symmetric input meshes.
const (
	rayBiasY = 1.1e-6
	rayBiasZ = 1.2e-6
)

// Supersample offsets form a symmetric 4x4x4 sub-grid within each cell.
var sampleOffsets = [4]float64{0.125, 0.375, 0.625, 0.875}

// Mode selects the occupancy sampling strategy.
type Mode int

const (
	// ModeSupersample tests a symmetric 4x4x4 sub-grid per cell and fills
	// the cell when the inside-sample fraction reaches the configured
	// threshold. Smoother on sloped surfaces, 64x the ray casts.
	ModeSupersample Mode = iota

	// ModeCenterSample tests a single biased point at the cell center.
	// Cheap, adequate for blocky models.
	ModeCenterSample
)

// DefaultFillThreshold is the inside-sample fraction at which supersampling
// marks a cell filled. 0.25 keeps partially covered boundary cells and
// reduces stair-stepping on slopes.
const DefaultFillThreshold = 0.25

// Options configures voxelization. The zero value selects supersampling
// with the default fill threshold.
type Options struct {
	Mode Mode

	// FillThreshold is the fraction of inside samples required to fill a
	// cell in ModeSupersample. Zero means DefaultFillThreshold.
	FillThreshold float64
}

func (o Options) fillThreshold() float64 {
	if o.FillThreshold == 0 {
		return DefaultFillThreshold
	}
	return o.FillThreshold
}

func (o Options) validate() error {
	if o.Mode != ModeSupersample && o.Mode != ModeCenterSample {
		return fmt.Errorf("voxel: unknown sampling mode %d", o.Mode)
	}
	if t := o.FillThreshold; t < 0 || t > 1 {
		return fmt.Errorf("voxel: fill threshold must be between 0 and 1, got %v", t)
	}
	return nil
}

// Voxelize rasterizes a normalized mesh into a resolution^3 occupancy grid.
//
// The mesh must already be normalized so its largest axis spans
// [0, resolution]; each cell then covers [x,x+1] x [y,y+1] x [z,z+1]. Cell
// occupancy is decided by ray-casting parity: a ray cast in +X from a sample
// point crosses the surface an odd number of times exactly when the point is
// inside. A mesh with no triangles yields an all-empty grid.
func Voxelize(m mesh.Mesh, resolution int, opts Options) (*Grid, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: got %d", mesh.ErrInvalidResolution, resolution)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(resolution, resolution, resolution)

	for z := 0; z < resolution; z++ {
		for y := 0; y < resolution; y++ {
			for x := 0; x < resolution; x++ {
				if cellFilled(m, x, y, z, opts) {
					grid.SetFilled(x, y, z, true)
				}
			}
		}
	}

	return grid, nil
}

func cellFilled(m mesh.Mesh, x, y, z int, opts Options) bool {
	if opts.Mode == ModeCenterSample {
		return isInside(m,
			float64(x)+0.5,
			float64(y)+0.5+rayBiasY,
			float64(z)+0.5+rayBiasZ,
		)
	}

	insideCount := 0
	for _, dz := range sampleOffsets {
		for _, dy := range sampleOffsets {
			for _, dx := range sampleOffsets {
				if isInside(m, float64(x)+dx, float64(y)+dy, float64(z)+dz) {
					insideCount++
				}
			}
		}
	}

	totalSamples := len(sampleOffsets) * len(sampleOffsets) * len(sampleOffsets)
	required := int(math.Ceil(opts.fillThreshold() * float64(totalSamples)))
	return insideCount >= required
}

func isInside(m mesh.Mesh, ox, oy, oz float64) bool {
	intersections := 0
	for _, triangle := range m.Triangles {
		if rayHitsTriangle(ox, oy, oz, triangle) {
			intersections++
		}
	}
	return intersections%2 == 1
}

// rayHitsTriangle tests a ray from (ox, oy, oz) in direction +X against a
// triangle using the Moller-Trumbore algorithm, specialized for the fixed
// ray direction (1, 0, 0).
func rayHitsTriangle(ox, oy, oz float64, t geometry.Triangle) bool {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	// h = dir x edge2 with dir = (1, 0, 0)
	hy := -edge2.Z
	hz := edge2.Y

	a := edge1.Y*hy + edge1.Z*hz
	if math.Abs(a) < epsilon {
		return false // ray parallel to triangle plane
	}
	f := 1.0 / a

	sx := ox - t.V1.X
	sy := oy - t.V1.Y
	sz := oz - t.V1.Z

	u := f * (sy*hy + sz*hz)
	if u < -epsilon || u > 1.0+epsilon {
		return false
	}

	// q = s x edge1
	qx := sy*edge1.Z - sz*edge1.Y
	qy := sz*edge1.X - sx*edge1.Z
	qz := sx*edge1.Y - sy*edge1.X

	// v = f * dot(dir, q) with dir = (1, 0, 0)
	v := f * qx
	if v < -epsilon || u+v > 1.0+epsilon {
		return false
	}

	// distance along the ray
	dist := f * (edge2.X*qx + edge2.Y*qy + edge2.Z*qz)
	return dist > epsilon
}
