package load_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/crosstab-org/crosstab/dataset"
	"github.com/crosstab-org/crosstab/load"
	"github.com/crosstab-org/crosstab/render"
)

// Small survey wave in the shape the loaders guarantee: every column
// text-or-categorical, empty cells absent.
var waveCSV = `age,party,selfplacement
30,Green,Left
40,National,7
25,Green,Don't know
52,Labour,
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	res, err := load.Load(writeFixture(t, "wave.csv", waveCSV))
	require.NoError(t, err)

	assert.Equal(t, load.FormatCSV, res.Format)
	assert.Equal(t, 4, res.Table.Len())
	assert.Equal(t, []string{"age", "party", "selfplacement"}, res.Table.Columns())

	v, ok := res.Table.Value(2, "selfplacement")
	require.True(t, ok)
	assert.Equal(t, "Don't know", v)

	// Empty cell is absent, not an empty label.
	_, ok = res.Table.Value(3, "selfplacement")
	assert.False(t, ok)
}

func TestLoadCSVIndexIsTotal(t *testing.T) {
	t.Parallel()

	res, err := load.Load(writeFixture(t, "wave.csv", waveCSV))
	require.NoError(t, err)

	require.Equal(t, res.Table.NumCols(), res.Index.Len())
	for _, name := range res.Table.Columns() {
		desc, ok := res.Index.Lookup(name)
		assert.True(t, ok, "column %q has no index entry", name)
		assert.NotEmpty(t, desc)
	}
	_, ok := res.Index.Lookup("never_present")
	assert.False(t, ok)
}

func TestLoadCSVSniffsSeparator(t *testing.T) {
	t.Parallel()

	semicolon := "age;party\n30;Green\n"
	res, err := load.Load(writeFixture(t, "wave.csv", semicolon))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "party"}, res.Table.Columns())

	v, _ := res.Table.Value(0, "party")
	assert.Equal(t, "Green", v)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := load.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrLoad))

	var le *dataset.LoadError
	assert.True(t, errors.As(err, &le))
}

func TestLoadUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := load.Load(writeFixture(t, "wave.xyz", "whatever"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrLoad))
}

func TestLoadMalformedStata(t *testing.T) {
	t.Parallel()

	_, err := load.Load(writeFixture(t, "wave.dta", "this is not a dta file"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrLoad))
}

func TestCoverageWarnings(t *testing.T) {
	t.Parallel()

	// "selfplacement" mixes textual labels with raw codes; with
	// warnings enabled that shows up at Warn level.
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	_, err := load.Load(writeFixture(t, "wave.csv", waveCSV),
		load.WithLogger(logger),
		load.WithCoverageWarnings(true))
	require.NoError(t, err)

	warned := false
	for _, entry := range logs.All() {
		for _, f := range entry.Context {
			if f.Key == "column" && f.String == "selfplacement" {
				warned = true
			}
		}
	}
	assert.True(t, warned, "expected a coverage warning for selfplacement")
}

func TestCoverageWarningsDefaultOff(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	_, err := load.Load(writeFixture(t, "wave.csv", waveCSV), load.WithLogger(logger))
	require.NoError(t, err)
	assert.Zero(t, logs.Len(), "suppression is the default policy")
}

func TestLoadParquetRoundTrip(t *testing.T) {
	t.Parallel()

	src, err := dataset.New(
		dataset.Column{Name: "age", Values: []string{"30", ""}, Missing: []bool{false, true}},
		dataset.Column{Name: "party", Values: []string{"Green", "Labour"}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wave.parquet")
	require.NoError(t, render.WriteParquet(path, src))

	res, err := load.Load(path)
	require.NoError(t, err)
	assert.Equal(t, load.FormatParquet, res.Format)
	assert.Equal(t, []string{"age", "party"}, res.Table.Columns())
	require.Equal(t, 2, res.Table.Len())

	v, ok := res.Table.Value(0, "age")
	require.True(t, ok)
	assert.Equal(t, "30", v)

	// Null cell survives as absence.
	_, ok = res.Table.Value(1, "age")
	assert.False(t, ok)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]load.Format{
		"a.dta":      load.FormatStata,
		"b.DTA":      load.FormatStata,
		"c.sas7bdat": load.FormatSAS,
		"d.csv":      load.FormatCSV,
		"e.parquet":  load.FormatParquet,
		"f.txt":      load.FormatUnknown,
	}
	for path, want := range cases {
		assert.Equal(t, want, load.DetectFormat(path), path)
	}
}
