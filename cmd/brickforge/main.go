package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/version"
)

var rootCmd = &cobra.Command{
	Use:   "brickforge",
	Short: "Convert 3D meshes into buildable brick models",
	Long: `brickforge turns triangle meshes (STL or OBJ) into decorative brick
models: the mesh is voxelized, reduced to its surface shell, and the shell is
covered with bricks from a part catalog. Conversion is fully deterministic,
so the same input always yields the same build.`,
	Version: version.String(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
