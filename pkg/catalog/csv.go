package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// requiredHeaders are the columns every catalog CSV must carry, in any order.
var requiredHeaders = []string{
	"part_id",
	"name",
	"category",
	"category_name",
	"stud_x",
	"stud_y",
	"height_units",
	"material",
	"active",
}

// LoadCSV reads catalog parts from a CSV file, preserving row order.
// Header names are matched case-sensitively; extra columns are ignored.
// Row-level validation failures abort the load and name the offending row.
func LoadCSV(filename string) ([]Part, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	parts, err := ReadParts(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return parts, nil
}

// ReadParts parses catalog CSV content from a reader
func ReadParts(r io.Reader) ([]Part, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredHeaders {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var parts []Part
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		part, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d (part_id %q): %w", row, field(record, columns, "part_id"), err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}

func parseRecord(record []string, columns map[string]int) (Part, error) {
	categoryID, err := strconv.Atoi(field(record, columns, "category"))
	if err != nil {
		return Part{}, fmt.Errorf("invalid category id: %w", err)
	}
	studX, err := strconv.Atoi(field(record, columns, "stud_x"))
	if err != nil {
		return Part{}, fmt.Errorf("invalid stud_x: %w", err)
	}
	studY, err := strconv.Atoi(field(record, columns, "stud_y"))
	if err != nil {
		return Part{}, fmt.Errorf("invalid stud_y: %w", err)
	}
	active, err := strconv.ParseBool(strings.ToLower(field(record, columns, "active")))
	if err != nil {
		return Part{}, fmt.Errorf("invalid active flag: %w", err)
	}

	part := Part{
		PartID:       field(record, columns, "part_id"),
		Name:         field(record, columns, "name"),
		CategoryID:   categoryID,
		CategoryName: field(record, columns, "category_name"),
		StudX:        studX,
		StudY:        studY,
		HeightUnits:  field(record, columns, "height_units"),
		Material:     field(record, columns, "material"),
		Active:       active,
	}
	if err := part.Validate(); err != nil {
		return Part{}, err
	}
	return part, nil
}

func field(record []string, columns map[string]int, name string) string {
	i := columns[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// sizeTokenPattern matches dimension tokens like "2 x 4", "1x2x5" or
// "1 x 2 x 2/3" inside part names, bounded by non-alphanumerics so "4x4
// vehicle" style words do not count twice.
var sizeTokenPattern = regexp.MustCompile(`(?i)(^|[^a-z0-9])\d+\s*x\s*\d+(\s*x\s*(\d+|\d+/\d+))?($|[^a-z0-9])`)

// HasSizeToken reports whether a part name carries a footprint-size token.
// Catalog rows without one describe minifigs, stickers and other parts that
// cannot participate in brick placement.
func HasSizeToken(name string) bool {
	return sizeTokenPattern.MatchString(name)
}

// CleanSummary describes a catalog cleaning pass
type CleanSummary struct {
	Total   int
	Kept    int
	Removed int
}

// CleanCSV copies the rows of a raw catalog export whose names carry a size
// token into a new CSV, preserving the header and row order. Unlike LoadCSV
// it does no record validation; cleaning runs on raw upstream data before
// curation.
func CleanCSV(inputPath, outputPath string) (CleanSummary, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return CleanSummary{}, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	header, err := reader.Read()
	if err != nil {
		return CleanSummary{}, fmt.Errorf("failed to read header: %w", err)
	}

	nameIndex := -1
	for i, column := range header {
		if strings.EqualFold(strings.TrimSpace(column), "name") {
			nameIndex = i
			break
		}
	}
	if nameIndex < 0 {
		return CleanSummary{}, fmt.Errorf("input CSV has no name column")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return CleanSummary{}, fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return CleanSummary{}, fmt.Errorf("failed to write header: %w", err)
	}

	summary := CleanSummary{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CleanSummary{}, fmt.Errorf("row %d: %w", summary.Total+2, err)
		}

		summary.Total++
		if nameIndex < len(record) && HasSizeToken(record[nameIndex]) {
			if err := writer.Write(record); err != nil {
				return CleanSummary{}, fmt.Errorf("failed to write row: %w", err)
			}
			summary.Kept++
		} else {
			summary.Removed++
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return CleanSummary{}, fmt.Errorf("failed to flush output: %w", err)
	}
	return summary, nil
}
