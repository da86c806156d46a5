package analysis

import (
	"math"

	"github.com/brickforge/brickforge/pkg/geometry"
	"github.com/brickforge/brickforge/pkg/mesh"
)

// degenerateArea is the triangle area below which a facet contributes
// nothing to voxelization and is flagged as degenerate.
const degenerateArea = 1e-12

// MeasurementResult contains measurements of a mesh relevant before
// converting it: overall size, edge statistics and quality flags.
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int

	// SignedVolume is computed from oriented facets. It is only
	// meaningful for closed meshes; a value near zero on a non-flat
	// mesh suggests inconsistent winding.
	SignedVolume float64

	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	DegenerateTriangles int
}

// AnalyzeMesh measures a mesh. An empty mesh returns mesh.ErrEmptyMesh.
func AnalyzeMesh(m mesh.Mesh) (MeasurementResult, error) {
	bbox, err := m.BoundingBox()
	if err != nil {
		return MeasurementResult{}, err
	}

	result := MeasurementResult{
		BoundingBox:   bbox,
		Dimensions:    bbox.Size(),
		SurfaceArea:   m.SurfaceArea(),
		TriangleCount: m.TriangleCount(),
		MinEdgeLength: math.MaxFloat64,
	}

	totalLength := 0.0
	for _, triangle := range m.Triangles {
		if triangle.Area() < degenerateArea {
			result.DegenerateTriangles++
		}

		// Signed tetrahedron volume against the origin; the sum is
		// the enclosed volume for a closed, consistently wound mesh.
		result.SignedVolume += triangle.V1.Dot(triangle.V2.Cross(triangle.V3)) / 6.0

		for _, edge := range [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		} {
			length := edge[1].Sub(edge[0]).Length()
			totalLength += length
			if length < result.MinEdgeLength {
				result.MinEdgeLength = length
			}
			if length > result.MaxEdgeLength {
				result.MaxEdgeLength = length
			}
		}
	}

	result.EdgeCount = 3 * result.TriangleCount
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	return result, nil
}
