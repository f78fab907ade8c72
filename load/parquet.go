package load

import (
	"context"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/crosstab-org/crosstab/dataset"
)

// ============================================================================
// PARQUET — via Apache Arrow
// ============================================================================
// The parquet file is read into an Arrow table, then flattened into the
// text-or-categorical column model. Field-level "description" metadata,
// when present, feeds the Metadata Index.
// ============================================================================

func loadParquet(path string, cfg *config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	pf, err := file.NewParquetReader(f)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	defer table.Release()

	schema := table.Schema()
	n := int(table.NumRows())
	names := make([]string, schema.NumFields())
	descriptions := make([]string, schema.NumFields())
	cols := make([]dataset.Column, schema.NumFields())

	for ci := 0; ci < schema.NumFields(); ci++ {
		field := schema.Field(ci)
		names[ci] = field.Name
		if idx := field.Metadata.FindKey("description"); idx >= 0 {
			descriptions[ci] = field.Metadata.Values()[idx]
		}
		cols[ci] = dataset.Column{
			Name:    field.Name,
			Values:  make([]string, 0, n),
			Missing: make([]bool, 0, n),
		}
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for ri := 0; ri < int(rec.NumRows()); ri++ {
			for ci, arr := range rec.Columns() {
				if arr.IsNull(ri) {
					cols[ci].Values = append(cols[ci].Values, "")
					cols[ci].Missing = append(cols[ci].Missing, true)
					continue
				}
				cols[ci].Values = append(cols[ci].Values, formatArrowValue(arr, ri))
				cols[ci].Missing = append(cols[ci].Missing, false)
			}
		}
	}
	if tr.Err() != nil {
		return nil, &dataset.LoadError{Path: path, Err: tr.Err()}
	}

	t, err := dataset.New(cols...)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	index, err := buildIndex(path, names, descriptions)
	if err != nil {
		return nil, err
	}
	return &Result{Table: t, Index: index, Format: FormatParquet}, nil
}

// formatArrowValue converts an Arrow array value at pos to its text form.
func formatArrowValue(arr arrow.Array, pos int) string {
	switch a := arr.(type) {
	case *array.String:
		return a.Value(pos)
	case *array.LargeString:
		return a.Value(pos)
	case *array.Binary:
		return string(a.Value(pos))
	case *array.Boolean:
		return fmt.Sprintf("%v", a.Value(pos))
	case *array.Int8:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Int16:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Int32:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Int64:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Uint8:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Uint16:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Uint32:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Uint64:
		return fmt.Sprintf("%d", a.Value(pos))
	case *array.Float32:
		return fmt.Sprintf("%g", a.Value(pos))
	case *array.Float64:
		return fmt.Sprintf("%g", a.Value(pos))
	case *array.Date32:
		return a.Value(pos).ToTime().Format("2006-01-02")
	case *array.Date64:
		return a.Value(pos).ToTime().Format("2006-01-02")
	default:
		return arr.ValueStr(pos)
	}
}
