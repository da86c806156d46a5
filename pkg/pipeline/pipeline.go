// Package pipeline runs the mesh-to-brick conversion end to end:
// normalize, voxelize, extract the surface shell, place bricks.
//
// Each stage fully consumes its input before the next starts and every run
// allocates fresh grids, so repeated runs are independent and reproducible.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/mesh"
	"github.com/brickforge/brickforge/pkg/voxel"
)

// Config carries everything one conversion run needs. Footprints come in as
// an explicit parameter rather than being loaded behind the pipeline's back;
// catalog I/O stays with the caller.
type Config struct {
	Resolution int
	Voxel      voxel.Options
	Footprints []brick.Footprint

	// Quiet suppresses per-stage progress logging.
	Quiet bool
}

// Result is the complete outcome of one conversion run.
type Result struct {
	RunID         string
	TriangleCount int
	Resolution    int
	SolidVoxels   int
	SurfaceVoxels int
	Bricks        []brick.Brick

	// Solid and Surface are retained for export; later stages never
	// mutate them.
	Solid   *voxel.Grid
	Surface *voxel.Grid

	Elapsed time.Duration
}

// TotalVoxels returns the cell count of the full grid
func (r Result) TotalVoxels() int {
	return r.Resolution * r.Resolution * r.Resolution
}

// ReductionPercent returns how much placement shrank the part count
// relative to covering each surface voxel individually.
func (r Result) ReductionPercent() float64 {
	if r.SurfaceVoxels == 0 {
		return 0
	}
	return 100.0 * float64(r.SurfaceVoxels-len(r.Bricks)) / float64(r.SurfaceVoxels)
}

// Run executes the conversion pipeline on a mesh.
func Run(m mesh.Mesh, cfg Config) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	logf := func(format string, args ...any) {
		if !cfg.Quiet {
			log.Printf("[Pipeline] "+format, args...)
		}
	}
	logf("run %s: %d triangles at resolution %d", runID, m.TriangleCount(), cfg.Resolution)

	normalized, err := mesh.Normalize(m, cfg.Resolution)
	if err != nil {
		return Result{}, fmt.Errorf("normalize: %w", err)
	}

	solid, err := voxel.Voxelize(normalized, cfg.Resolution, cfg.Voxel)
	if err != nil {
		return Result{}, fmt.Errorf("voxelize: %w", err)
	}
	logf("run %s: %d of %d voxels solid", runID, solid.CountFilled(), cfg.Resolution*cfg.Resolution*cfg.Resolution)

	surface := voxel.ExtractSurface(solid)
	logf("run %s: %d surface voxels", runID, surface.CountFilled())

	bricks, err := brick.Place(surface, cfg.Footprints)
	if err != nil {
		return Result{}, fmt.Errorf("place: %w", err)
	}
	logf("run %s: placed %d bricks in %s", runID, len(bricks), time.Since(start).Round(time.Millisecond))

	return Result{
		RunID:         runID,
		TriangleCount: m.TriangleCount(),
		Resolution:    cfg.Resolution,
		SolidVoxels:   solid.CountFilled(),
		SurfaceVoxels: surface.CountFilled(),
		Bricks:        bricks,
		Solid:         solid,
		Surface:       surface,
		Elapsed:       time.Since(start),
	}, nil
}
