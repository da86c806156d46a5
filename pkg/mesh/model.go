package mesh

import (
	"errors"

	"github.com/brickforge/brickforge/pkg/geometry"
)

// ErrEmptyMesh is returned when an operation requires at least one triangle.
var ErrEmptyMesh = errors.New("mesh contains no triangles")

// Mesh represents a triangulated 3D surface.
// Triangle order is preserved so repeated runs over the same input
// produce identical results.
type Mesh struct {
	Name      string
	Triangles []geometry.Triangle
}

// New creates a mesh from a triangle list. The slice is used as-is;
// callers hand over ownership.
func New(name string, triangles []geometry.Triangle) Mesh {
	return Mesh{Name: name, Triangles: triangles}
}

// TriangleCount returns the number of triangles in the mesh
func (m Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox computes the axis-aligned bounding box over all vertices.
// An empty mesh has no bounds and returns ErrEmptyMesh.
func (m Mesh) BoundingBox() (geometry.BoundingBox, error) {
	if len(m.Triangles) == 0 {
		return geometry.BoundingBox{}, ErrEmptyMesh
	}

	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox, nil
}

// SurfaceArea calculates the total surface area of the mesh
func (m Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
