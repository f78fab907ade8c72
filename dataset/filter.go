package dataset

import (
	"strings"
)

// ============================================================================
// FILTERS — Label-Based Row Filtering
// ============================================================================
// Single-pass filter: checks ALL column constraints per row in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// Filters selects rows by column labels.
// Keys are column names, values are accepted labels (matched
// case-insensitively). AND across columns, OR within a column.
// An absent cell matches nothing.
type Filters map[string][]string

// IsEmpty reports whether no constraint is set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Apply returns a view of the rows matching all column constraints.
// An empty filter returns the original view.
func (f Filters) Apply(view View) View {
	sets := make(map[string]map[string]bool, len(f))
	for col, allowed := range f {
		if len(allowed) > 0 {
			sets[col] = toLowerSet(allowed)
		}
	}
	if len(sets) == 0 {
		return view
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for col, set := range sets {
			val, ok := view.Value(i, col)
			if !ok || !set[strings.ToLower(val)] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// toLowerSet converts a label slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
