// Package export serializes voxel grids and placed bricks as Wavefront OBJ
// files for external viewers. Pure geometry output; no placement decisions
// happen here.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// cuboidFaces lists the 12 triangles of a unit cuboid as 1-based indices
// into its 8 corner vertices, two per face, consistent outward winding.
var cuboidFaces = [12][3]int{
	{1, 2, 3}, {1, 3, 4}, // bottom
	{5, 7, 6}, {5, 8, 7}, // top
	{1, 6, 2}, {1, 5, 6}, // front
	{2, 7, 3}, {2, 6, 7}, // right
	{3, 8, 4}, {3, 7, 8}, // back
	{4, 5, 1}, {4, 8, 5}, // left
}

// WriteVoxelOBJ writes every filled voxel of a grid as a unit cuboid.
// Voxels are emitted in x, then y, then z order so output is reproducible.
func WriteVoxelOBJ(grid *voxel.Grid, filename string) error {
	if grid == nil {
		return errors.New("grid must not be nil")
	}

	return writeOBJ(filename, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "# brickforge voxel export\n")
		fmt.Fprintf(w, "# voxel_count %d\n", grid.CountFilled())

		vertexOffset := 1
		index := 0
		for x := 0; x < grid.Width(); x++ {
			for y := 0; y < grid.Height(); y++ {
				for z := 0; z < grid.Depth(); z++ {
					if !grid.Filled(x, y, z) {
						continue
					}
					writeCuboid(w, fmt.Sprintf("voxel_%d", index),
						float64(x), float64(y), float64(z),
						float64(x+1), float64(y+1), float64(z+1),
						vertexOffset)
					vertexOffset += 8
					index++
				}
			}
		}
		return nil
	})
}

// WriteBrickOBJ writes each placed brick as a cuboid spanning its grid
// extent, in placement order.
func WriteBrickOBJ(bricks []brick.Brick, filename string) error {
	if bricks == nil {
		return errors.New("brick list must not be nil")
	}

	return writeOBJ(filename, func(w *bufio.Writer) error {
		fmt.Fprintf(w, "# brickforge brick export\n")
		fmt.Fprintf(w, "# brick_count %d\n", len(bricks))

		vertexOffset := 1
		for index, b := range bricks {
			writeCuboid(w, fmt.Sprintf("brick_%d", index),
				float64(b.X), float64(b.Y), float64(b.Z),
				float64(b.MaxX()), float64(b.MaxY()), float64(b.MaxZ()),
				vertexOffset)
			vertexOffset += 8
		}
		return nil
	})
}

func writeOBJ(filename string, body func(*bufio.Writer) error) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}

	w := bufio.NewWriter(file)
	if err := body(w); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write OBJ file: %w", err)
	}
	return file.Close()
}

// writeCuboid emits one named cuboid: 8 vertices followed by 12 triangular
// faces referencing them at the given 1-based vertex offset.
func writeCuboid(w *bufio.Writer, name string, x0, y0, z0, x1, y1, z1 float64, vertexOffset int) {
	fmt.Fprintf(w, "\no %s\n", name)

	corners := [8][3]float64{
		{x0, y0, z0},
		{x1, y0, z0},
		{x1, y1, z0},
		{x0, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x1, y1, z1},
		{x0, y1, z1},
	}
	for _, c := range corners {
		fmt.Fprintf(w, "v %g %g %g\n", c[0], c[1], c[2])
	}

	for _, face := range cuboidFaces {
		fmt.Fprintf(w, "f %d %d %d\n",
			vertexOffset+face[0]-1,
			vertexOffset+face[1]-1,
			vertexOffset+face[2]-1)
	}
}
