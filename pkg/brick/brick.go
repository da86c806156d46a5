// Package brick turns a hollow voxel shell into a deterministic list of
// axis-aligned rectangular bricks drawn from a parts catalog.
package brick

import "fmt"

// Brick is a placed part instance in grid coordinates. It occupies the cells
// [X, X+Width) x [Y, Y+Depth) x [Z, Z+Height); the placer always produces
// bricks one grid layer tall.
type Brick struct {
	X, Y, Z int
	Width   int
	Depth   int
	Height  int
}

// NewBrick creates a validated brick. Positions must be non-negative and
// extents positive.
func NewBrick(x, y, z, width, depth, height int) (Brick, error) {
	if x < 0 || y < 0 || z < 0 {
		return Brick{}, fmt.Errorf("brick position must be non-negative, got (%d,%d,%d)", x, y, z)
	}
	if width <= 0 || depth <= 0 || height <= 0 {
		return Brick{}, fmt.Errorf("brick extents must be positive, got %dx%dx%d", width, depth, height)
	}
	return Brick{X: x, Y: y, Z: z, Width: width, Depth: depth, Height: height}, nil
}

// MaxX returns the exclusive upper x bound
func (b Brick) MaxX() int { return b.X + b.Width }

// MaxY returns the exclusive upper y bound
func (b Brick) MaxY() int { return b.Y + b.Depth }

// MaxZ returns the exclusive upper z bound
func (b Brick) MaxZ() int { return b.Z + b.Height }

// Overlaps reports whether two bricks intersect in grid space
func (b Brick) Overlaps(other Brick) bool {
	return b.X < other.MaxX() && other.X < b.MaxX() &&
		b.Y < other.MaxY() && other.Y < b.MaxY() &&
		b.Z < other.MaxZ() && other.Z < b.MaxZ()
}

func (b Brick) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d,%d)", b.Width, b.Depth, b.X, b.Y, b.Z)
}
