package dataset

import (
	"errors"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	names := []string{"age", "party", "selfplacement"}
	descs := []string{"Age of respondent", "Party voted for", "Self placement on left-right scale"}

	ix, err := NewIndex(names, descs)
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}

	for i, name := range names {
		got, ok := ix.Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) reported absence", name)
		}
		if got != descs[i] {
			t.Errorf("Lookup(%q) = %q, want %q", name, got, descs[i])
		}
	}

	// Absence is a normal outcome, not a failure.
	if _, ok := ix.Lookup("never_present"); ok {
		t.Error("Lookup of unknown name should report absence")
	}

	if got := ix.Names(); len(got) != 3 || got[0] != "age" {
		t.Errorf("Names = %v, want source order", got)
	}
}

func TestIndexSchemaMismatch(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	descs := []string{"A", "B", "C", "D"}

	_, err := NewIndex(names, descs)
	if err == nil {
		t.Fatal("expected SchemaMismatch for 5 names / 4 descriptions")
	}
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("errors.Is(err, ErrSchemaMismatch) = false for %v", err)
	}

	var sm *SchemaMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("error is not a *SchemaMismatchError: %v", err)
	}
	if sm.Names != 5 || sm.Descriptions != 4 {
		t.Errorf("counts = (%d, %d), want (5, 4)", sm.Names, sm.Descriptions)
	}
}

func TestErrorSentinels(t *testing.T) {
	le := &LoadError{Path: "x.dta", Err: errors.New("boom")}
	if !errors.Is(le, ErrLoad) {
		t.Error("LoadError should match ErrLoad")
	}
	pe := &ParseError{Column: "c", Row: 3, Label: "xyz"}
	if !errors.Is(pe, ErrParse) {
		t.Error("ParseError should match ErrParse")
	}
	if errors.Is(le, ErrParse) || errors.Is(pe, ErrLoad) {
		t.Error("sentinels must not cross-match")
	}
}
