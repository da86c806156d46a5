package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/internal/catalogdb"
	"github.com/brickforge/brickforge/pkg/catalog"
)

var (
	catalogDBPath  string
	catalogListAll bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the brick part catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [csv]",
	Short: "Import a part catalog CSV into the catalog database",
	Args:  cobra.ExactArgs(1),
	Run:   runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog parts",
	Args:  cobra.NoArgs,
	Run:   runCatalogList,
}

var catalogCleanCmd = &cobra.Command{
	Use:   "clean [in.csv] [out.csv]",
	Short: "Remove parts whose names carry no size designation",
	Long: `Filter a raw catalog export down to parts usable for building: only rows
whose name contains a size token such as "2 x 4" or "1 x 2 x 1/3" are kept.`,
	Args: cobra.ExactArgs(2),
	Run:  runCatalogClean,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogImportCmd, catalogListCmd, catalogCleanCmd)

	catalogImportCmd.Flags().StringVar(&catalogDBPath, "db", "catalog.db", "catalog database file")
	catalogListCmd.Flags().StringVar(&catalogDBPath, "db", "catalog.db", "catalog database file")
	catalogListCmd.Flags().BoolVar(&catalogListAll, "all", false, "include inactive parts")
}

func runCatalogImport(cmd *cobra.Command, args []string) {
	parts, err := catalog.LoadCSV(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	db, err := catalogdb.Open(catalogDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ImportParts(parts); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing parts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d parts into %s\n", len(parts), catalogDBPath)
}

func runCatalogList(cmd *cobra.Command, args []string) {
	db, err := catalogdb.Open(catalogDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	var parts []catalog.Part
	if catalogListAll {
		parts, err = db.AllParts()
	} else {
		parts, err = db.ActiveParts()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing parts: %v\n", err)
		os.Exit(1)
	}

	if len(parts) == 0 {
		fmt.Println("No parts in catalog")
		return
	}

	fmt.Printf("%-12s %-40s %-14s %5s %5s %6s\n", "PART", "NAME", "CATEGORY", "X", "Y", "ACTIVE")
	for _, p := range parts {
		fmt.Printf("%-12s %-40s %-14s %5d %5d %6t\n",
			p.PartID, p.Name, p.CategoryName, p.StudX, p.StudY, p.Active)
	}
	fmt.Printf("\n%d parts\n", len(parts))
}

func runCatalogClean(cmd *cobra.Command, args []string) {
	summary, err := catalog.CleanCSV(args[0], args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog Cleaning Result")
	fmt.Println("=======================")
	fmt.Printf("  Total rows: %d\n", summary.Total)
	fmt.Printf("  Kept: %d\n", summary.Kept)
	fmt.Printf("  Removed: %d\n", summary.Removed)
}
