package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/crosstab-org/crosstab/load"
	"github.com/crosstab-org/crosstab/normalize"
	"github.com/crosstab-org/crosstab/recode"
	"github.com/crosstab-org/crosstab/render"
)

// ============================================================================
// CROSSTAB CLI — inspect, recode, and normalize labelled survey files
// ============================================================================

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to source data file (.dta, .sas7bdat, .csv, .parquet) (required)")
	describe := flag.Bool("describe", false, "Print the column metadata index and exit")
	freqCol := flag.String("freq", "", "Print a frequency table for the named column")
	recodeCol := flag.String("recode", "", "Recode the named column on the Left/Centre/Right 0-10 scale")
	sentinels := flag.String("sentinels", "Don't know", "Comma-separated missing-sentinel labels for --recode")
	joinFiles := flag.String("join", "", "Comma-separated wave files to normalize and concatenate with --file")
	valueCol := flag.String("value", "", "Per-file value column names for --join (comma-separated, first entry for --file)")
	groupCol := flag.String("group", "", "Per-file group column names for --join (comma-separated)")
	groupVal := flag.String("match", "", "Group label rows must match for --join")
	tags := flag.String("tags", "", "Per-file tag values for --join (comma-separated)")
	format := flag.String("format", "json", "Output format: json, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	coverage := flag.Bool("coverage-warnings", false, "Warn about columns with partial label coverage")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `crosstab — labelled survey file inspection and recoding

Usage:
  crosstab --file nzes2014.dta --describe
  crosstab --file nzes2014.dta --freq partyvote --format csv
  crosstab --file nzes2014.dta --recode selfplacement
  crosstab --file nzes2014.dta --join nzes2011.dta \
      --value age2014,age2011 --group party2014,party2011 \
      --match Green --tags 2014,2011 --format csv

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("crosstab %s\n", version)
		os.Exit(0)
	}
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	opts := []load.Option{load.WithLogger(logger), load.WithCoverageWarnings(*coverage)}
	res, err := load.Load(*filePath, opts...)
	if err != nil {
		fatalf("Load failed: %v", err)
	}

	switch {
	case *describe:
		runDescribe(writer, res, *format)

	case *freqCol != "":
		table := render.Frequency(res.Table, *freqCol, *freqCol)
		writeTable(writer, table, *format)

	case *recodeCol != "":
		runRecode(writer, res, *recodeCol, splitList(*sentinels), *format)

	case *joinFiles != "":
		runJoin(writer, res, *joinFiles, *valueCol, *groupCol, *groupVal, *tags, *format, opts)

	default:
		table := render.ListTable(res.Table, nil, *filePath)
		writeTable(writer, table, *format)
	}
}

// runDescribe prints the Metadata Index in column order.
func runDescribe(w *os.File, res *load.Result, format string) {
	type entry struct {
		Column      string `json:"column"`
		Description string `json:"description"`
	}
	entries := make([]entry, 0, res.Index.Len())
	for _, name := range res.Index.Names() {
		desc, _ := res.Index.Lookup(name)
		entries = append(entries, entry{Column: name, Description: desc})
	}

	if format == "csv" {
		table := &render.TableData{
			Columns: []render.TableCol{
				{Key: "column", Label: "Column"},
				{Key: "description", Label: "Description"},
			},
		}
		for _, e := range entries {
			table.Rows = append(table.Rows, []string{e.Column, e.Description})
		}
		writeTable(w, table, format)
		return
	}
	if err := render.WriteJSON(w, entries); err != nil {
		fatalf("Failed to write JSON: %v", err)
	}
}

// runRecode recodes one column on the Left/Centre/Right scale and
// prints its numeric distribution.
func runRecode(w *os.File, res *load.Result, column string, sentinelLabels []string, format string) {
	scale, err := recode.NewScale(map[string]float64{
		"Left":   0,
		"Centre": 5,
		"Right":  10,
	}, sentinelLabels...)
	if err != nil {
		fatalf("Bad scale: %v", err)
	}

	recoded, err := recode.Recode(res.Table, column, scale)
	if err != nil {
		fatalf("Recode failed: %v", err)
	}

	chart := render.ScaleDistribution(recoded, column)
	if chart == nil {
		fatalf("Column %q has no recodable values", column)
	}
	writeChart(w, chart, format)
}

// runJoin normalizes the loaded file plus the --join files onto a
// (value, wave) schema and prints the concatenated table.
func runJoin(w *os.File, first *load.Result, joinFiles, valueCols, groupCols, groupVal, tagVals, format string, opts []load.Option) {
	paths := append([]string{""}, splitList(joinFiles)...)
	values := splitList(valueCols)
	groups := splitList(groupCols)
	tagList := splitList(tagVals)
	if len(values) != len(paths) || len(groups) != len(paths) || len(tagList) != len(paths) {
		fatalf("--value, --group, and --tags each need %d entries (one per file)", len(paths))
	}

	sources := make([]normalize.Source, 0, len(paths))
	for i, p := range paths {
		res := first
		if p != "" {
			var err error
			res, err = load.Load(p, opts...)
			if err != nil {
				fatalf("Load failed: %v", err)
			}
		}
		sources = append(sources, normalize.Source{
			View:        res.Table,
			ValueColumn: values[i],
			GroupColumn: groups[i],
			GroupValue:  groupVal,
			Tag:         tagList[i],
		})
	}

	unified, err := normalize.Concat("value", "wave", sources...)
	if err != nil {
		fatalf("Normalize failed: %v", err)
	}
	writeTable(w, render.ListTable(unified, nil, "normalized"), format)
}

// ── Output helpers ────────────────────────────────────────────────────────

func writeTable(w *os.File, t *render.TableData, format string) {
	var err error
	if format == "csv" {
		err = render.WriteTableCSV(w, t)
	} else {
		err = render.WriteJSON(w, t)
	}
	if err != nil {
		fatalf("Failed to write output: %v", err)
	}
}

func writeChart(w *os.File, c *render.ChartConfig, format string) {
	var err error
	if format == "csv" {
		err = render.WriteChartCSV(w, c)
	} else {
		err = render.WriteJSON(w, c)
	}
	if err != nil {
		fatalf("Failed to write output: %v", err)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
