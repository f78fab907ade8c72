package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crosstab-org/crosstab/dataset"
	"go.uber.org/zap"
)

// ============================================================================
// CSV
// ============================================================================
// CSV carries no variable labels, so descriptions fall back to the
// column names. Empty cells are absent values, not empty labels.
// ============================================================================

func loadCSV(path string, cfg *config) (*Result, error) {
	sep := cfg.separator
	if sep == 0 {
		var err error
		sep, err = detectCSVSeparator(path)
		if err != nil {
			return nil, &dataset.LoadError{Path: path, Err: err}
		}
		cfg.logger.Debug("sniffed CSV separator",
			zap.String("path", path),
			zap.String("separator", string(sep)))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = sep
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: fmt.Errorf("reading header: %w", err)}
	}
	if len(headers) == 0 {
		return nil, &dataset.LoadError{Path: path, Err: fmt.Errorf("no columns")}
	}

	names := make([]string, len(headers))
	cols := make([]dataset.Column, len(headers))
	for i, h := range headers {
		names[i] = strings.TrimSpace(h)
		cols[i].Name = names[i]
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &dataset.LoadError{Path: path, Err: err}
		}
		for i := range cols {
			var cell string
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			cols[i].Values = append(cols[i].Values, cell)
			cols[i].Missing = append(cols[i].Missing, cell == "")
		}
	}

	table, err := dataset.New(cols...)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	index, err := buildIndex(path, names, names)
	if err != nil {
		return nil, err
	}
	return &Result{Table: table, Index: index, Format: FormatCSV}, nil
}
