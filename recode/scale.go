// Package recode converts labelled ordinal categorical columns into
// numeric scale values.
//
// Recoding is keyed on label text, never on a column's internal code
// order. A categorical column's code set is derived per-column from the
// responses actually observed, so two columns can assign different code
// positions to the same label when one of them is missing responses at
// some scale point. Positional recoding would silently shift values;
// label-keyed recoding cannot.
package recode

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCALE — Ordinal Scale Specification
// ============================================================================

// Scale describes an ordinal scale with named anchors and missing
// sentinels. Anchor labels map to fixed numeric constants; any other
// label is expected to be the bare text of its numeric value.
type Scale struct {
	anchors   map[string]float64
	sentinels map[string]bool
}

// NewScale builds a Scale from anchor constants and missing-sentinel
// labels. Anchor and sentinel matching is case-insensitive. A label
// appearing both as an anchor and a sentinel is rejected.
func NewScale(anchors map[string]float64, sentinels ...string) (Scale, error) {
	if len(anchors) == 0 {
		return Scale{}, fmt.Errorf("scale needs at least one anchor")
	}
	s := Scale{
		anchors:   make(map[string]float64, len(anchors)),
		sentinels: make(map[string]bool, len(sentinels)),
	}
	for label, value := range anchors {
		s.anchors[strings.ToLower(label)] = value
	}
	for _, label := range sentinels {
		key := strings.ToLower(label)
		if _, clash := s.anchors[key]; clash {
			return Scale{}, fmt.Errorf("label %q is both an anchor and a sentinel", label)
		}
		s.sentinels[key] = true
	}
	return s, nil
}

// LeftRight returns the conventional 0–10 political self-placement scale:
// "Left"=0, "Centre"=5, "Right"=10, with "Don't know" as the sentinel.
func LeftRight() Scale {
	s, _ := NewScale(map[string]float64{
		"Left":   0,
		"Centre": 5,
		"Right":  10,
	}, "Don't know")
	return s
}

// Anchor returns the numeric constant for an anchor label.
func (s Scale) Anchor(label string) (float64, bool) {
	v, ok := s.anchors[strings.ToLower(label)]
	return v, ok
}

// IsSentinel reports whether the label is a configured missing sentinel.
func (s Scale) IsSentinel(label string) bool {
	return s.sentinels[strings.ToLower(label)]
}
