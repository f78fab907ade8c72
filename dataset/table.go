package dataset

import (
	"fmt"
)

// ============================================================================
// TABLE — Column-Oriented Record Table
// ============================================================================
// Every cell is a textual label: numeric codes, free text, and categorical
// labels all arrive as strings from the loaders. A separate missing mask
// marks true absence, which is never represented by a label.
//
// Tables are immutable after construction. Derived shapes (filtered,
// projected, concatenated) are views or new tables, never in-place edits.
// ============================================================================

// Column is a named sequence of labels with a missing mask.
// Missing may be nil when every cell is present.
type Column struct {
	Name    string
	Values  []string
	Missing []bool
}

// Len returns the number of cells in the column.
func (c Column) Len() int { return len(c.Values) }

// Cell returns the label at row i and whether a value is present.
// An absent cell returns ("", false).
func (c Column) Cell(i int) (string, bool) {
	if i < 0 || i >= len(c.Values) {
		return "", false
	}
	if c.Missing != nil && c.Missing[i] {
		return "", false
	}
	return c.Values[i], true
}

// Table is an insertion-ordered collection of equal-length columns.
type Table struct {
	cols  []Column
	index map[string]int
}

// New builds a Table from columns, preserving column order.
// All columns must have the same length and distinct names.
func New(cols ...Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if len(t.cols) > 0 && c.Len() != t.cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.Len(), t.cols[0].Len())
		}
		if c.Missing != nil && len(c.Missing) != len(c.Values) {
			return nil, fmt.Errorf("column %q missing mask has %d entries, want %d", c.Name, len(c.Missing), len(c.Values))
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		t.index[c.Name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Value returns the label at (row, column) and whether a value is present.
// An unknown column reads as absent.
func (t *Table) Value(row int, col string) (string, bool) {
	i, ok := t.index[col]
	if !ok {
		return "", false
	}
	return t.cols[i].Cell(row)
}
