package recode

import (
	"strconv"

	"github.com/crosstab-org/crosstab/dataset"
)

// ============================================================================
// RECODER — Label-Keyed Ordinal Recoding
// ============================================================================
// Classification per cell, by textual label only:
//   anchor label    → its configured constant
//   sentinel label  → no value (a response, but not a substantive one)
//   absent cell     → no value (a non-response)
//   anything else   → parsed as a bare number, or ParseError
//
// "Don't know" and true absence share the same numeric output but stay
// distinguishable through Kinds.
// ============================================================================

// Kind classifies what produced each recoded cell.
type Kind int

const (
	// Number means the label parsed as a bare numeric value.
	Number Kind = iota
	// Anchor means the label matched a configured scale anchor.
	Anchor
	// DontKnow means the label matched a missing sentinel.
	DontKnow
	// Absent means no value was recorded at all.
	Absent
)

func (k Kind) String() string {
	return [...]string{"Number", "Anchor", "DontKnow", "Absent"}[k]
}

// Result is a recoded column. All three slices have the input's length
// and order. Valid[i] is false exactly when Kinds[i] is DontKnow or
// Absent; Values[i] is 0 at those positions and must not be read.
type Result struct {
	Values []float64
	Valid  []bool
	Kinds  []Kind
}

// Len returns the number of recoded cells.
func (r *Result) Len() int { return len(r.Values) }

// Value returns the numeric value at row i and whether one exists.
func (r *Result) Value(i int) (float64, bool) {
	if i < 0 || i >= len(r.Values) || !r.Valid[i] {
		return 0, false
	}
	return r.Values[i], true
}

// Recode converts the named column of a view into numeric scale values.
// The whole column fails with a ParseError when any present label is
// neither an anchor, a sentinel, nor a bare number — no partial result
// is returned.
func Recode(view dataset.View, column string, scale Scale) (*Result, error) {
	n := view.Len()
	res := &Result{
		Values: make([]float64, n),
		Valid:  make([]bool, n),
		Kinds:  make([]Kind, n),
	}

	for i := 0; i < n; i++ {
		label, present := view.Value(i, column)
		switch {
		case !present:
			res.Kinds[i] = Absent

		case scale.IsSentinel(label):
			res.Kinds[i] = DontKnow

		default:
			if v, ok := scale.Anchor(label); ok {
				res.Values[i] = v
				res.Valid[i] = true
				res.Kinds[i] = Anchor
				continue
			}
			v, err := strconv.ParseFloat(label, 64)
			if err != nil {
				return nil, &dataset.ParseError{Column: column, Row: i, Label: label}
			}
			res.Values[i] = v
			res.Valid[i] = true
			res.Kinds[i] = Number
		}
	}

	return res, nil
}

// RecodeColumn recodes a standalone column outside any table.
func RecodeColumn(col dataset.Column, scale Scale) (*Result, error) {
	t, err := dataset.New(col)
	if err != nil {
		return nil, err
	}
	return Recode(t, col.Name, scale)
}
