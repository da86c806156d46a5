package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh file",
	Long:  "Show triangle count, surface area, bounding box, dimensions and edge statistics of an STL or OBJ file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := loadMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result, err := analysis.AnalyzeMesh(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Printf("  Signed Volume: %.6f cubic units\n\n", result.SignedVolume)

	bbox := result.BoundingBox
	center := bbox.Center()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", bbox.Min.X, bbox.Min.Y, bbox.Min.Z)
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", bbox.Max.X, bbox.Max.Y, bbox.Max.Z)
	fmt.Printf("  Center: (%.6f, %.6f, %.6f)\n\n", center.X, center.Y, center.Z)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Longest axis: %.6f units\n\n", bbox.MaxDimension())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)

	if result.DegenerateTriangles > 0 {
		fmt.Printf("\nWarning: %d degenerate triangles (zero area)\n", result.DegenerateTriangles)
	}
}
