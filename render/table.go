package render

import (
	"fmt"

	"github.com/crosstab-org/crosstab/dataset"
)

// ============================================================================
// TABLE BUILDERS
// ============================================================================

// Frequency builds a label/count/percent table for one column.
// Labels appear in order of first appearance; absent cells count toward
// the total but get no row.
func Frequency(view dataset.View, column, title string) *TableData {
	order, counts := countLabels(view, column)

	columns := []TableCol{
		{Key: "label", Label: column, Type: "text", Align: "left"},
		{Key: "count", Label: "Count", Type: "number", Align: "right"},
		{Key: "percent", Label: "Percent", Type: "percent", Align: "right"},
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	rows := make([][]string, 0, len(order))
	for _, label := range order {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[label]) / float64(total) * 100
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%d", counts[label]),
			fmt.Sprintf("%.1f%%", pct),
		})
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &TableTotal{
			Label: fmt.Sprintf("Total (%d rows, %d with a value)", view.Len(), total),
			Values: map[string]string{
				"count": fmt.Sprintf("%d", total),
			},
		},
	}
}

// ListTable builds a row-per-record table over the named columns.
// Absent cells render as empty strings.
func ListTable(view dataset.View, columns []string, title string) *TableData {
	if len(columns) == 0 {
		columns = view.Columns()
	}

	cols := make([]TableCol, 0, len(columns))
	for _, name := range columns {
		cols = append(cols, TableCol{Key: name, Label: name, Type: "text", Align: "left"})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, name := range columns {
			val, _ := view.Value(i, name)
			row = append(row, val)
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   title,
		Columns: cols,
		Rows:    rows,
		Summary: &TableTotal{
			Label: fmt.Sprintf("%d rows", view.Len()),
		},
	}
}
