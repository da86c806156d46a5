package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/export"
	"github.com/brickforge/brickforge/pkg/pipeline"
	"github.com/brickforge/brickforge/pkg/voxel"
	"github.com/brickforge/brickforge/pkg/watcher"
)

var (
	convertResolution    int
	convertOutput        string
	convertExport        string
	convertCatalogCSV    string
	convertCatalogDB     string
	convertMode          string
	convertFillThreshold float64
	convertWatch         bool
	convertQuiet         bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a mesh into a brick model",
	Long: `Convert an STL or OBJ mesh into a brick model: the mesh is scaled to the
requested resolution, voxelized, hollowed to its surface shell, and the shell
is covered with catalog bricks. With --output the result is written as an OBJ
file; --export selects whether bricks or an intermediate voxel grid are written.`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVarP(&convertResolution, "resolution", "r", 16, "voxel grid resolution along the longest axis")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output OBJ file")
	convertCmd.Flags().StringVar(&convertExport, "export", "brick", "what to export: brick, voxel-surface or voxel-solid")
	convertCmd.Flags().StringVar(&convertCatalogCSV, "catalog", "", "part catalog CSV file")
	convertCmd.Flags().StringVar(&convertCatalogDB, "db", "", "part catalog database")
	convertCmd.Flags().StringVar(&convertMode, "mode", "supersample", "voxel sampling mode: supersample or center")
	convertCmd.Flags().Float64Var(&convertFillThreshold, "fill-threshold", voxel.DefaultFillThreshold, "fraction of sub-samples inside the mesh for a voxel to count as filled")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-run the conversion whenever the mesh file changes")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "suppress progress logging")
}

func runConvert(cmd *cobra.Command, args []string) {
	filename := args[0]

	mode, err := parseMode(convertMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	footprints, err := loadFootprints(convertCatalogCSV, convertCatalogDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := pipeline.Config{
		Resolution: convertResolution,
		Voxel: voxel.Options{
			Mode:          mode,
			FillThreshold: convertFillThreshold,
		},
		Footprints: footprints,
		Quiet:      convertQuiet,
	}

	if err := convertOnce(filename, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if convertWatch {
		if err := watchAndConvert(filename, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func convertOnce(filename string, cfg pipeline.Config) error {
	m, err := loadMesh(filename)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(m, cfg)
	if err != nil {
		return err
	}

	printResult(filename, result)

	if convertOutput != "" {
		if err := writeExport(result, convertExport, convertOutput); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s to %s\n", convertExport, convertOutput)
	}
	return nil
}

func watchAndConvert(filename string, cfg pipeline.Config) error {
	w, err := watcher.New(filename, watcher.DefaultDebounce, func(path string) {
		fmt.Printf("\n%s changed, reconverting\n\n", path)
		if err := convertOnce(filename, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\nWatching %s for changes (Ctrl+C to stop)\n", filename)
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func parseMode(name string) (voxel.Mode, error) {
	switch name {
	case "supersample":
		return voxel.ModeSupersample, nil
	case "center":
		return voxel.ModeCenterSample, nil
	default:
		return 0, fmt.Errorf("unknown sampling mode %q (expected supersample or center)", name)
	}
}

func printResult(filename string, result pipeline.Result) {
	fmt.Println("Conversion Result")
	fmt.Println("=================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Resolution: %d\n", result.Resolution)
	fmt.Printf("  Total voxels: %d\n", result.TotalVoxels())
	fmt.Printf("  Solid voxels: %d\n", result.SolidVoxels)
	fmt.Printf("  Surface voxels: %d\n", result.SurfaceVoxels)
	fmt.Printf("  Bricks: %d\n", len(result.Bricks))
	fmt.Printf("  Reduction: %.1f%%\n", result.ReductionPercent())
	fmt.Printf("  Elapsed: %s\n", result.Elapsed.Round(time.Millisecond))
}

func writeExport(result pipeline.Result, what, output string) error {
	switch what {
	case "brick":
		return export.WriteBrickOBJ(result.Bricks, output)
	case "voxel-surface":
		return export.WriteVoxelOBJ(result.Surface, output)
	case "voxel-solid":
		return export.WriteVoxelOBJ(result.Solid, output)
	default:
		return fmt.Errorf("unknown export %q (expected brick, voxel-surface or voxel-solid)", what)
	}
}
