// Package load reads labelled tabular survey files into dataset tables.
//
// Binary statistical formats (Stata dta, SAS sas7bdat) are read through
// github.com/kshedden/datareader; parquet through Apache Arrow; CSV
// through the standard library with separator sniffing. Whatever the
// source format, every column comes out as text-or-categorical: cells
// whose codes carry no textual label keep the raw code text, and no
// column is dropped.
package load

import (
	"fmt"
	"strconv"

	"github.com/crosstab-org/crosstab/dataset"
	"go.uber.org/zap"
)

// Result is a completed load: the Record Table plus its Metadata Index.
type Result struct {
	Table  *dataset.Table
	Index  *dataset.Index
	Format Format
}

// Load reads a labelled tabular file, dispatching on its extension.
// Failures to open or parse the file surface as a LoadError; a file
// whose column and description lists disagree in length surfaces as a
// SchemaMismatchError. Neither ever returns a partial table.
func Load(path string, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	format := DetectFormat(path)
	var (
		res *Result
		err error
	)
	switch format {
	case FormatStata, FormatSAS:
		res, err = loadStatfile(path, format, cfg)
	case FormatCSV:
		res, err = loadCSV(path, cfg)
	case FormatParquet:
		res, err = loadParquet(path, cfg)
	default:
		return nil, &dataset.LoadError{Path: path, Err: fmt.Errorf("unsupported file format")}
	}
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("loaded source file",
		zap.String("path", path),
		zap.String("format", format.String()),
		zap.Int("rows", res.Table.Len()),
		zap.Int("columns", res.Table.NumCols()))

	if cfg.coverageWarnings {
		warnPartialCoverage(res.Table, cfg.logger)
	}
	return res, nil
}

// buildIndex builds the Metadata Index from parallel name/description
// lists, substituting the column name for empty descriptions so the
// index stays total over the table's columns.
func buildIndex(path string, names, descriptions []string) (*dataset.Index, error) {
	if len(names) != len(descriptions) {
		// Let NewIndex produce the canonical error, then locate it.
		_, err := dataset.NewIndex(names, descriptions)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	filled := make([]string, len(descriptions))
	for i, d := range descriptions {
		if d == "" {
			d = names[i]
		}
		filled[i] = d
	}
	return dataset.NewIndex(names, filled)
}

// warnPartialCoverage logs columns that mix raw numeric codes with
// textual labels, which is what a partially labelled source column
// looks like after loading.
func warnPartialCoverage(t *dataset.Table, logger *zap.Logger) {
	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		numeric, text := 0, 0
		for i := 0; i < col.Len(); i++ {
			label, ok := col.Cell(i)
			if !ok {
				continue
			}
			if _, err := strconv.ParseFloat(label, 64); err == nil {
				numeric++
			} else {
				text++
			}
		}
		if numeric > 0 && text > 0 {
			logger.Warn("column labels only partially cover observed codes",
				zap.String("column", name),
				zap.Int("labelled", text),
				zap.Int("raw_codes", numeric))
		}
	}
}
