package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brickforge/brickforge/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOBJTriangles(t *testing.T) {
	path := writeOBJ(t, `# comment
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	m, err := LoadOBJ(path)
	require.NoError(t, err)

	require.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, "model", m.Name)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Triangles[0].V1)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), m.Triangles[0].V2)
	assert.Equal(t, geometry.NewVector3(0, 1, 0), m.Triangles[0].V3)
}

func TestLoadOBJQuadFanTriangulation(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	m, err := LoadOBJ(path)
	require.NoError(t, err)
	require.Equal(t, 2, m.TriangleCount())

	// Fan around the first vertex: (v1,v2,v3) then (v1,v3,v4)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Triangles[0].V1)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), m.Triangles[0].V3)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Triangles[1].V1)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), m.Triangles[1].V2)
	assert.Equal(t, geometry.NewVector3(0, 1, 0), m.Triangles[1].V3)
}

func TestLoadOBJSlashForms(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1 2//1 3/1/1
`)

	m, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestLoadOBJRejectsNGons(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 1 1 0
v 0.5 1.5 0
v 0 1 0
f 1 2 3 4 5
`)

	_, err := LoadOBJ(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 6")
	assert.Contains(t, err.Error(), "5 vertices")
}

func TestLoadOBJRejectsOutOfRangeIndex(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
f 1 2 3
`)

	_, err := LoadOBJ(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadOBJRejectsZeroIndex(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 0 1 0
f 0 1 2
`)

	_, err := LoadOBJ(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-based")
}

func TestLoadOBJIgnoresUnknownRecords(t *testing.T) {
	path := writeOBJ(t, `mtllib scene.mtl
o thing
g group1
usemtl red
v 0 0 0
v 1 0 0
v 0 1 0
s off
f 1 2 3
`)

	m, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"))
	require.Error(t, err)
}

func TestLoadOBJEmptyFileIsEmptyMesh(t *testing.T) {
	path := writeOBJ(t, "")

	m, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, 0, m.TriangleCount())
}
