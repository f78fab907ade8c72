package dataset

import (
	"testing"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(
		Column{Name: "age", Values: []string{"30", "40", ""}, Missing: []bool{false, false, true}},
		Column{Name: "party", Values: []string{"Green", "National", "Labour"}},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return table
}

func TestTableShape(t *testing.T) {
	table := newTestTable(t)

	if table.Len() != 3 {
		t.Errorf("Len = %d, want 3", table.Len())
	}
	if table.NumCols() != 2 {
		t.Errorf("NumCols = %d, want 2", table.NumCols())
	}

	cols := table.Columns()
	if cols[0] != "age" || cols[1] != "party" {
		t.Errorf("Columns = %v, want [age party] (insertion order)", cols)
	}
}

func TestTableValueAndAbsence(t *testing.T) {
	table := newTestTable(t)

	if v, ok := table.Value(0, "age"); !ok || v != "30" {
		t.Errorf("Value(0, age) = %q, %v; want 30, true", v, ok)
	}
	if _, ok := table.Value(2, "age"); ok {
		t.Error("Value(2, age) should be absent")
	}
	if v, ok := table.Value(2, "party"); !ok || v != "Labour" {
		t.Errorf("Value(2, party) = %q, %v; want Labour, true", v, ok)
	}
	if _, ok := table.Value(0, "nosuch"); ok {
		t.Error("unknown column should read as absent")
	}
	if _, ok := table.Value(99, "age"); ok {
		t.Error("out-of-range row should read as absent")
	}
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []string{"1", "2"}},
		Column{Name: "b", Values: []string{"1"}},
	)
	if err == nil {
		t.Fatal("expected error for ragged columns")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []string{"1"}},
		Column{Name: "a", Values: []string{"2"}},
	)
	if err == nil {
		t.Fatal("expected error for duplicate column names")
	}
}

func TestNewRejectsBadMask(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []string{"1", "2"}, Missing: []bool{true}},
	)
	if err == nil {
		t.Fatal("expected error for short missing mask")
	}
}
