package dataset

import (
	"errors"
	"fmt"
)

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// Three fatal classes. Absence of a value is never an error — it is a
// normal cell state propagated by views and excluded by filters.
//
// All three surface immediately: no caller ever receives a partial table
// alongside one of these.
// ============================================================================

// Sentinels for errors.Is matching across packages.
var (
	ErrLoad           = errors.New("load failed")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrParse          = errors.New("unparseable label")
)

// LoadError reports a source file that is missing, unreadable, or does not
// parse as its expected format.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is matches ErrLoad.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// SchemaMismatchError reports a column list and description list of
// different lengths — a corrupted or unsupported source file.
type SchemaMismatchError struct {
	Names        int
	Descriptions int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: %d column names, %d descriptions", e.Names, e.Descriptions)
}

// Is matches ErrSchemaMismatch.
func (e *SchemaMismatchError) Is(target error) bool { return target == ErrSchemaMismatch }

// ParseError reports a categorical label that is neither a recognized
// anchor, a missing sentinel, nor a bare number. Silently coercing such a
// label to a default would corrupt the recoded scale, so it is fatal.
type ParseError struct {
	Column string
	Row    int
	Label  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q row %d: label %q is not an anchor, sentinel, or number", e.Column, e.Row, e.Label)
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
