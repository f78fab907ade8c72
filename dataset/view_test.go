package dataset

import (
	"testing"
)

func TestSubViewZeroCopySemantics(t *testing.T) {
	table := newTestTable(t)

	sub := Filters{"party": {"Green", "Labour"}}.Apply(table)
	if sub.Len() != 2 {
		t.Fatalf("filtered Len = %d, want 2", sub.Len())
	}
	if v, _ := sub.Value(0, "party"); v != "Green" {
		t.Errorf("row 0 party = %q, want Green (source row order preserved)", v)
	}
	if v, _ := sub.Value(1, "party"); v != "Labour" {
		t.Errorf("row 1 party = %q, want Labour", v)
	}

	// Absence travels through the view.
	if _, ok := sub.Value(1, "age"); ok {
		t.Error("absent cell should stay absent through a SubView")
	}

	// The source table is untouched.
	if table.Len() != 3 {
		t.Errorf("source table mutated: Len = %d", table.Len())
	}
}

func TestFilterEmptyReturnsSameView(t *testing.T) {
	table := newTestTable(t)
	v := Filters{}.Apply(table)
	if v.Len() != table.Len() {
		t.Errorf("empty filter changed row count: %d != %d", v.Len(), table.Len())
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	table := newTestTable(t)
	v := Filters{"party": {"green"}}.Apply(table)
	if v.Len() != 1 {
		t.Errorf("case-insensitive match failed: Len = %d, want 1", v.Len())
	}
}

func TestFilterAbsentCellNeverMatches(t *testing.T) {
	table := newTestTable(t)
	v := Filters{"age": {""}}.Apply(table)
	if v.Len() != 0 {
		t.Errorf("absent cell matched a filter: Len = %d, want 0", v.Len())
	}
}

func TestConcatOrderAndLength(t *testing.T) {
	a, err := New(Column{Name: "x", Values: []string{"1", "2"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Column{Name: "x", Values: []string{"3"}})
	if err != nil {
		t.Fatal(err)
	}

	v := Concat(a, b)
	if v.Len() != 3 {
		t.Fatalf("Concat Len = %d, want 3", v.Len())
	}
	want := []string{"1", "2", "3"}
	for i, w := range want {
		if got, _ := v.Value(i, "x"); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestMaterializeCopies(t *testing.T) {
	table := newTestTable(t)
	sub := Filters{"party": {"Green"}}.Apply(table)

	copied, err := Materialize(sub)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if copied.Len() != 1 {
		t.Fatalf("materialized Len = %d, want 1", copied.Len())
	}
	if v, ok := copied.Value(0, "age"); !ok || v != "30" {
		t.Errorf("materialized age = %q, %v; want 30, true", v, ok)
	}

	cols := copied.Columns()
	if len(cols) != 2 || cols[0] != "age" || cols[1] != "party" {
		t.Errorf("materialized columns = %v", cols)
	}
}
