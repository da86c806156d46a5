package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/brickforge/brickforge/pkg/brick"
	"github.com/brickforge/brickforge/pkg/pipeline"
	"github.com/brickforge/brickforge/pkg/voxel"
)

var (
	reportResolution int
	reportOut        string
	reportCatalogCSV string
	reportCatalogDB  string
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Convert a mesh and write an HTML part-usage report",
	Long: `Run the conversion pipeline and write an HTML report with a bar chart of
how often each brick size is used, plus summary statistics on stdout.`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportResolution, "resolution", "r", 16, "voxel grid resolution along the longest axis")
	reportCmd.Flags().StringVar(&reportOut, "out", "report.html", "output HTML file")
	reportCmd.Flags().StringVar(&reportCatalogCSV, "catalog", "", "part catalog CSV file")
	reportCmd.Flags().StringVar(&reportCatalogDB, "db", "", "part catalog database")
}

func runReport(cmd *cobra.Command, args []string) {
	filename := args[0]

	footprints, err := loadFootprints(reportCatalogCSV, reportCatalogDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := loadMesh(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result, err := pipeline.Run(m, pipeline.Config{
		Resolution: reportResolution,
		Voxel:      voxel.Options{},
		Footprints: footprints,
		Quiet:      true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeUsageChart(filename, result, reportOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	printBrickStats(result.Bricks)
	fmt.Printf("\nWrote report to %s\n", reportOut)
}

// footprintUsage counts placed bricks per footprint, largest sizes first.
func footprintUsage(bricks []brick.Brick) (labels []string, counts []int) {
	type usage struct {
		width, depth int
		count        int
	}
	byLabel := make(map[string]*usage)
	for _, b := range bricks {
		label := fmt.Sprintf("%dx%d", b.Width, b.Depth)
		if u, ok := byLabel[label]; ok {
			u.count++
		} else {
			byLabel[label] = &usage{width: b.Width, depth: b.Depth, count: 1}
		}
	}

	ordered := make([]*usage, 0, len(byLabel))
	for _, u := range byLabel {
		ordered = append(ordered, u)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ai, aj := ordered[i].width*ordered[i].depth, ordered[j].width*ordered[j].depth
		if ai != aj {
			return ai > aj
		}
		return ordered[i].width > ordered[j].width
	})

	for _, u := range ordered {
		labels = append(labels, fmt.Sprintf("%dx%d", u.width, u.depth))
		counts = append(counts, u.count)
	}
	return labels, counts
}

func writeUsageChart(filename string, result pipeline.Result, out string) error {
	labels, counts := footprintUsage(result.Bricks)

	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Brick Usage", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Brick Usage",
			Subtitle: fmt.Sprintf("%s, resolution %d, %d bricks", filename, result.Resolution, len(result.Bricks)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "footprint"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(labels).
		AddSeries("bricks", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}

func printBrickStats(bricks []brick.Brick) {
	fmt.Println("Brick Statistics")
	fmt.Println("================")
	fmt.Printf("  Bricks: %d\n", len(bricks))
	if len(bricks) == 0 {
		return
	}

	areas := make([]float64, len(bricks))
	totalStuds := 0
	for i, b := range bricks {
		areas[i] = float64(b.Width * b.Depth)
		totalStuds += b.Width * b.Depth
	}
	sort.Float64s(areas)

	fmt.Printf("  Studs covered: %d\n", totalStuds)
	fmt.Printf("  Mean brick area: %.2f studs\n", stat.Mean(areas, nil))
	fmt.Printf("  Median brick area: %.2f studs\n", stat.Quantile(0.5, stat.Empirical, areas, nil))
}
