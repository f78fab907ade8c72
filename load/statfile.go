package load

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/crosstab-org/crosstab/dataset"
	"github.com/kshedden/datareader"
)

// ============================================================================
// STATA / SAS — via github.com/kshedden/datareader
// ============================================================================
// Both readers return column-oriented Series. Category labels are
// inserted in place of their codes, so a labelled cell arrives as its
// text and an unlabelled cell as its raw code. Variable labels, where
// the reader exposes them, become the Metadata Index descriptions.
// ============================================================================

// statReader is the slice of the datareader API both file readers share.
type statReader interface {
	ColumnNames() []string
	Read(int) ([]*datareader.Series, error)
}

// columnLabeler is implemented by readers that carry per-column
// variable labels.
type columnLabeler interface {
	ColumnLabels() []string
}

func loadStatfile(path string, format Format, cfg *config) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var rdr statReader
	switch format {
	case FormatStata:
		stata, err := datareader.NewStataReader(f)
		if err != nil {
			return nil, &dataset.LoadError{Path: path, Err: err}
		}
		stata.InsertCategoryLabels = true
		stata.ConvertDates = true
		rdr = stata
	case FormatSAS:
		sas, err := datareader.NewSAS7BDATReader(f)
		if err != nil {
			return nil, &dataset.LoadError{Path: path, Err: err}
		}
		sas.ConvertDates = true
		sas.TrimStrings = true
		rdr = sas
	default:
		return nil, &dataset.LoadError{Path: path, Err: fmt.Errorf("not a statfile format: %s", format)}
	}

	names := rdr.ColumnNames()
	series, err := rdr.Read(-1)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}
	if len(series) != len(names) {
		return nil, &dataset.LoadError{Path: path,
			Err: fmt.Errorf("read %d columns, header declares %d", len(series), len(names))}
	}

	cols := make([]dataset.Column, len(series))
	for i, s := range series {
		col, err := seriesColumn(names[i], s)
		if err != nil {
			return nil, &dataset.LoadError{Path: path, Err: err}
		}
		cols[i] = col
	}
	table, err := dataset.New(cols...)
	if err != nil {
		return nil, &dataset.LoadError{Path: path, Err: err}
	}

	descriptions := names
	if labeler, ok := rdr.(columnLabeler); ok {
		descriptions = labeler.ColumnLabels()
	}
	index, err := buildIndex(path, names, descriptions)
	if err != nil {
		return nil, err
	}

	return &Result{Table: table, Index: index, Format: format}, nil
}

// seriesColumn converts a datareader Series into a text column.
// Numeric cells are formatted with their shortest exact representation
// so a raw code round-trips through the recoder unchanged.
func seriesColumn(name string, s *datareader.Series) (dataset.Column, error) {
	missing := s.Missing()
	col := dataset.Column{Name: name, Missing: missing}

	switch data := s.Data().(type) {
	case []string:
		col.Values = append([]string(nil), data...)
	case []float64:
		col.Values = make([]string, len(data))
		for i, v := range data {
			if math.IsNaN(v) {
				col.Values[i] = ""
				col.Missing = markMissing(col.Missing, len(data), i)
				continue
			}
			col.Values[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	case []float32:
		col.Values = make([]string, len(data))
		for i, v := range data {
			if math.IsNaN(float64(v)) {
				col.Values[i] = ""
				col.Missing = markMissing(col.Missing, len(data), i)
				continue
			}
			col.Values[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
	case []int64:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = strconv.FormatInt(v, 10)
		}
	case []int32:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = strconv.FormatInt(int64(v), 10)
		}
	case []int16:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = strconv.FormatInt(int64(v), 10)
		}
	case []int8:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = strconv.FormatInt(int64(v), 10)
		}
	case []uint64:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = strconv.FormatUint(v, 10)
		}
	case []time.Time:
		col.Values = make([]string, len(data))
		for i, v := range data {
			col.Values[i] = v.Format("2006-01-02")
		}
	default:
		return dataset.Column{}, fmt.Errorf("column %q: unsupported series type %T", name, data)
	}

	return col, nil
}

// markMissing lazily allocates a missing mask and marks position i.
func markMissing(mask []bool, n, i int) []bool {
	if mask == nil {
		mask = make([]bool, n)
	}
	mask[i] = true
	return mask
}
