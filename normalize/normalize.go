// Package normalize projects differently-named but semantically
// equivalent columns from independently loaded survey waves onto one
// shared (value, tag) schema, then concatenates them.
//
// Renaming happens strictly before concatenation, so concatenating
// waves with different source column names can never fail on naming.
package normalize

import (
	"fmt"

	"github.com/crosstab-org/crosstab/dataset"
)

// Source describes one wave's contribution to the unified table.
type Source struct {
	View        dataset.View
	ValueColumn string // wave-specific name of the quantity of interest
	GroupColumn string // wave-specific name of the grouping predicate
	GroupValue  string // rows must carry this label in GroupColumn
	Tag         string // constant written to the tag column, e.g. "2014"
}

// Concat filters and projects each source, then concatenates the
// projections in source order into a table with columns valueName and
// tagName. Per source: keep rows where the group column equals the
// group value and the value cell is present. A source with zero
// matching rows contributes zero rows. Value cells are copied verbatim;
// no numeric coercion happens here.
func Concat(valueName, tagName string, sources ...Source) (*dataset.Table, error) {
	projections := make([]dataset.View, 0, len(sources))
	for si, src := range sources {
		proj, err := project(valueName, tagName, src)
		if err != nil {
			return nil, fmt.Errorf("source %d (%s): %w", si, src.Tag, err)
		}
		projections = append(projections, proj)
	}
	return dataset.Materialize(dataset.Concat(projections...))
}

// project filters one source and rebinds its value column to the
// common schema.
func project(valueName, tagName string, src Source) (dataset.View, error) {
	if !hasColumn(src.View, src.ValueColumn) {
		return nil, fmt.Errorf("no value column %q", src.ValueColumn)
	}
	if !hasColumn(src.View, src.GroupColumn) {
		return nil, fmt.Errorf("no group column %q", src.GroupColumn)
	}

	filtered := dataset.Filters{src.GroupColumn: {src.GroupValue}}.Apply(src.View)

	n := filtered.Len()
	value := dataset.Column{Name: valueName, Values: make([]string, 0, n)}
	tag := dataset.Column{Name: tagName, Values: make([]string, 0, n)}
	for i := 0; i < n; i++ {
		v, ok := filtered.Value(i, src.ValueColumn)
		if !ok {
			continue // absent value: excluded, not an error
		}
		value.Values = append(value.Values, v)
		tag.Values = append(tag.Values, src.Tag)
	}
	return dataset.New(value, tag)
}

func hasColumn(v dataset.View, name string) bool {
	for _, c := range v.Columns() {
		if c == name {
			return true
		}
	}
	return false
}
