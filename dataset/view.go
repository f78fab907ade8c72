package dataset

// ============================================================================
// VIEW — Zero-Copy Row Access
// ============================================================================
// Downstream components (recoder, normalizer, render builders) never own
// table data. They read through this interface.
//
// Implementations:
//   Table      — the backing store itself
//   SubView    — filtered subset (indices into parent, zero-copy)
//   ConcatView — virtual concatenation of several views
// ============================================================================

// View provides indexed, read-only access to labelled rows.
type View interface {
	Len() int
	Columns() []string
	Value(row int, col string) (string, bool)
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a row subset of a parent View.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  View
	indices []int
}

func newSubView(parent View, indices []int) View {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Value(row int, col string) (string, bool) {
	if row < 0 || row >= len(v.indices) {
		return "", false
	}
	return v.parent.Value(v.indices[row], col)
}

func (v *SubView) Columns() []string { return v.parent.Columns() }

// ============================================================================
// CONCAT VIEW — virtual concatenation
// ============================================================================

// ConcatView logically concatenates views in the order supplied.
// Column names are taken from the first view; rows keep per-source order.
type ConcatView struct {
	views []View
}

// Concat builds a view over all rows of the given views, in order.
func Concat(views ...View) View {
	return &ConcatView{views: views}
}

func (v *ConcatView) Len() int {
	n := 0
	for _, w := range v.views {
		n += w.Len()
	}
	return n
}

func (v *ConcatView) Value(row int, col string) (string, bool) {
	for _, w := range v.views {
		if row < w.Len() {
			return w.Value(row, col)
		}
		row -= w.Len()
	}
	return "", false
}

func (v *ConcatView) Columns() []string {
	if len(v.views) == 0 {
		return nil
	}
	return v.views[0].Columns()
}

// ============================================================================
// MATERIALIZE — copy a view into a standalone Table
// ============================================================================

// Materialize copies a view into a new Table. The result shares nothing
// with the view's backing data.
func Materialize(v View) (*Table, error) {
	names := v.Columns()
	cols := make([]Column, len(names))
	n := v.Len()
	for ci, name := range names {
		col := Column{
			Name:    name,
			Values:  make([]string, n),
			Missing: make([]bool, n),
		}
		for i := 0; i < n; i++ {
			val, ok := v.Value(i, name)
			col.Values[i] = val
			col.Missing[i] = !ok
		}
		cols[ci] = col
	}
	return New(cols...)
}
