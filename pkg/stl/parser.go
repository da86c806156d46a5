package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brickforge/brickforge/pkg/geometry"
	"github.com/brickforge/brickforge/pkg/mesh"
)

// Load reads an STL file and returns its triangles as a mesh.
// It automatically detects whether the file is ASCII or binary format.
func Load(filename string) (mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read first few bytes to determine format
	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return mesh.Mesh{}, fmt.Errorf("failed to read file header: %w", err)
	}

	// Reset file pointer
	if _, err := file.Seek(0, 0); err != nil {
		return mesh.Mesh{}, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	// ASCII files start with "solid"
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		return parseASCII(file)
	}

	return parseBinary(file)
}

func parseASCII(reader io.Reader) (mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)

	var name string
	var triangles []geometry.Triangle
	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				triangles = append(triangles, geometry.NewTriangle(
					vertices[0],
					vertices[1],
					vertices[2],
				))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return mesh.Mesh{}, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return mesh.New(name, triangles), nil
}

func parseBinary(reader io.Reader) (mesh.Mesh, error) {
	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return mesh.Mesh{}, fmt.Errorf("failed to read header: %w", err)
	}
	name := string(bytes.TrimRight(header, "\x00"))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return mesh.Mesh{}, fmt.Errorf("failed to read triangle count: %w", err)
	}

	triangles := make([]geometry.Triangle, 0, triangleCount)
	for i := uint32(0); i < triangleCount; i++ {
		// Each record is a facet normal, three vertices and an
		// attribute byte count. The normal is recomputable from the
		// vertices, so only the vertices are kept.
		var normal, v1, v2, v3 [3]float32
		var attributeByteCount uint16

		if err := binary.Read(reader, binary.LittleEndian, &normal); err != nil {
			return mesh.Mesh{}, fmt.Errorf("failed to read normal for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v1); err != nil {
			return mesh.Mesh{}, fmt.Errorf("failed to read v1 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v2); err != nil {
			return mesh.Mesh{}, fmt.Errorf("failed to read v2 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &v3); err != nil {
			return mesh.Mesh{}, fmt.Errorf("failed to read v3 for triangle %d: %w", i, err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &attributeByteCount); err != nil {
			return mesh.Mesh{}, fmt.Errorf("failed to read attribute for triangle %d: %w", i, err)
		}

		triangles = append(triangles, geometry.NewTriangle(
			geometry.NewVector3(float64(v1[0]), float64(v1[1]), float64(v1[2])),
			geometry.NewVector3(float64(v2[0]), float64(v2[1]), float64(v2[2])),
			geometry.NewVector3(float64(v3[0]), float64(v3[1]), float64(v3[2])),
		))
	}

	return mesh.New(name, triangles), nil
}
