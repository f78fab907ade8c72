package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/crosstab-org/crosstab/dataset"
)

// ============================================================================
// EXPORT — JSON / CSV / Parquet
// ============================================================================

// WriteJSON writes any render structure as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteTableCSV writes a TableData as CSV: header row from the column
// labels, then the data rows.
func WriteTableCSV(w io.Writer, t *TableData) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	return nil
}

// WriteChartCSV writes a ChartConfig as CSV: one label column plus one
// value column per series.
func WriteChartCSV(w io.Writer, c *ChartConfig) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(c.Series)+1)
	header = append(header, c.XAxis)
	for _, s := range c.Series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	if len(c.Series) == 0 {
		return nil
	}
	for i, p := range c.Series[0].Data {
		row := make([]string, 0, len(header))
		row = append(row, p.Label)
		for _, s := range c.Series {
			v := 0.0
			if i < len(s.Data) {
				v = s.Data[i].Value
			}
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	return nil
}

// WriteParquet writes a dataset table to a parquet file. Every column
// is written as a nullable UTF-8 field; absent cells become nulls.
func WriteParquet(path string, t *dataset.Table) error {
	names := t.Columns()
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	mem := memory.NewGoAllocator()
	bldr := array.NewRecordBuilder(mem, schema)
	defer bldr.Release()

	for ci, name := range names {
		sb := bldr.Field(ci).(*array.StringBuilder)
		col, _ := t.Column(name)
		for i := 0; i < col.Len(); i++ {
			if v, ok := col.Cell(i); ok {
				sb.Append(v)
			} else {
				sb.AppendNull()
			}
		}
	}

	rec := bldr.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating parquet file: %w", err)
	}
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	writer, err := pqarrow.NewFileWriter(schema, f, props, arrowProps)
	if err != nil {
		return fmt.Errorf("creating parquet writer: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteTable(tbl, tbl.NumRows()); err != nil {
		return fmt.Errorf("writing parquet table: %w", err)
	}
	return nil
}
