package dataset

// ============================================================================
// METADATA INDEX — Column Name → Description
// ============================================================================
// Built once at load time from the loader's parallel name/description
// lists, read-only afterward. Lookup misses are a normal outcome for
// ad hoc inspection, never an error.
// ============================================================================

// Index maps column names to their human-readable descriptions.
type Index struct {
	names []string
	desc  map[string]string
}

// NewIndex builds an Index from parallel name and description slices.
// The slices must have equal length; a disagreement signals a malformed
// source file and fails with a SchemaMismatchError.
func NewIndex(names, descriptions []string) (*Index, error) {
	if len(names) != len(descriptions) {
		return nil, &SchemaMismatchError{Names: len(names), Descriptions: len(descriptions)}
	}
	ix := &Index{
		names: append([]string(nil), names...),
		desc:  make(map[string]string, len(names)),
	}
	for i, name := range names {
		ix.desc[name] = descriptions[i]
	}
	return ix, nil
}

// Lookup returns the description for a column name.
// The second result is false when the name is not in the index.
func (ix *Index) Lookup(name string) (string, bool) {
	d, ok := ix.desc[name]
	return d, ok
}

// Names returns the column names in source-file order.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Len returns the number of entries.
func (ix *Index) Len() int { return len(ix.names) }
