package mesh

import (
	"errors"
	"fmt"

	"github.com/brickforge/brickforge/pkg/geometry"
)

// ErrDegenerateMesh is returned when a mesh has a zero-size bounding box
// and therefore cannot be scaled into voxel space.
var ErrDegenerateMesh = errors.New("mesh is degenerate (zero size)")

// ErrInvalidResolution is returned for voxel grid resolutions below 2.
var ErrInvalidResolution = errors.New("resolution must be >= 2")

// Normalize maps a mesh into voxel space: the bounding-box minimum corner is
// translated to the origin and the mesh is scaled uniformly so its largest
// dimension spans exactly [0, resolution].
//
// The scale factor is the same on all three axes. Scaling per axis would
// stretch the model to fill the grid and distort its proportions; the voxel
// grid is only faithful to the input shape because the aspect ratio survives
// normalization.
func Normalize(m Mesh, resolution int) (Mesh, error) {
	if resolution < 2 {
		return Mesh{}, fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}

	bbox, err := m.BoundingBox()
	if err != nil {
		return Mesh{}, err
	}

	maxDimension := bbox.MaxDimension()
	if maxDimension <= 0 {
		return Mesh{}, ErrDegenerateMesh
	}

	scale := float64(resolution) / maxDimension

	normalized := make([]geometry.Triangle, 0, len(m.Triangles))
	for _, triangle := range m.Triangles {
		normalized = append(normalized, geometry.Triangle{
			V1: triangle.V1.Sub(bbox.Min).Mul(scale),
			V2: triangle.V2.Sub(bbox.Min).Mul(scale),
			V3: triangle.V3.Sub(bbox.Min).Mul(scale),
		})
	}

	return Mesh{Name: m.Name, Triangles: normalized}, nil
}
