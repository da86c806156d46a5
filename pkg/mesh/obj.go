package mesh

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brickforge/brickforge/pkg/geometry"
)

// LoadOBJ reads a mesh from a Wavefront OBJ file.
//
// Only the subset of the format needed for triangulated surfaces is
// supported: vertex lines (v x y z) and face lines with three or four
// vertices. Quads are split into two triangles with a deterministic fan
// (v1,v2,v3) and (v1,v3,v4). Faces with five or more vertices are rejected.
// Normals, texture coordinates, materials and grouping records are ignored.
func LoadOBJ(filename string) (Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Mesh{}, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	var vertices []geometry.Vector3
	var triangles []geometry.Triangle

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertexLine(fields)
			if err != nil {
				return Mesh{}, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			vertices = append(vertices, v)

		case "f":
			tris, err := parseFaceLine(fields, vertices)
			if err != nil {
				return Mesh{}, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			triangles = append(triangles, tris...)
		}
		// vn, vt, o, g, mtllib, usemtl etc. are intentionally ignored
	}
	if err := scanner.Err(); err != nil {
		return Mesh{}, fmt.Errorf("error reading OBJ file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return Mesh{Name: name, Triangles: triangles}, nil
}

func parseVertexLine(fields []string) (geometry.Vector3, error) {
	if len(fields) < 4 {
		return geometry.Vector3{}, fmt.Errorf("vertex line must have 3 coordinates, got %d", len(fields)-1)
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid vertex coordinate %q", fields[i+1])
		}
		coords[i] = value
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func parseFaceLine(fields []string, vertices []geometry.Vector3) ([]geometry.Triangle, error) {
	vertexCount := len(fields) - 1
	if vertexCount < 3 {
		return nil, fmt.Errorf("face must have at least 3 vertices, got %d", vertexCount)
	}
	if vertexCount > 4 {
		return nil, fmt.Errorf("only triangle and quad faces are supported, face has %d vertices", vertexCount)
	}

	corners := make([]geometry.Vector3, 0, vertexCount)
	for _, token := range fields[1:] {
		index, err := parseFaceIndex(token, len(vertices))
		if err != nil {
			return nil, err
		}
		corners = append(corners, vertices[index])
	}

	if vertexCount == 3 {
		return []geometry.Triangle{geometry.NewTriangle(corners[0], corners[1], corners[2])}, nil
	}

	// Quad: deterministic fan triangulation
	return []geometry.Triangle{
		geometry.NewTriangle(corners[0], corners[1], corners[2]),
		geometry.NewTriangle(corners[0], corners[2], corners[3]),
	}, nil
}

// parseFaceIndex extracts the vertex index from a face element. OBJ face
// elements may carry texture/normal references (i, i/j, i//k, i/j/k); only
// the leading vertex index is used. Indices are 1-based in the file.
func parseFaceIndex(token string, vertexCount int) (int, error) {
	indexStr, _, _ := strings.Cut(token, "/")

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index %q", token)
	}
	if index < 1 {
		return 0, fmt.Errorf("vertex index must be positive (1-based), got %d", index)
	}
	if index > vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range (only %d vertices defined)", index, vertexCount)
	}
	return index - 1, nil
}
