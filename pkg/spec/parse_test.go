package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/match"
)

func TestParseRowSpec_Scalars(t *testing.T) {
	cases := []struct {
		in   any
		want Spec
	}{
		{nil, nil},
		{3, Index{N: 3}},
		{int64(7), Index{N: 7}},
		{"4", Index{N: 4}},
		{"end", End{}},
		{"END", End{}},
		{"A2", Cell{Ref: cell.Ref{Row: 2, Col: 1}}},
		{Index{N: 9}, Index{N: 9}},
	}
	for _, tc := range cases {
		got, err := ParseRowSpec(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestParseRowSpec_RejectsBareLetters(t *testing.T) {
	_, err := ParseRowSpec("F")
	assert.ErrorIs(t, err, ErrSpec)
}

func TestParseColSpec_Scalars(t *testing.T) {
	cases := []struct {
		in   any
		want Spec
	}{
		{2, Index{N: 2}},
		{"F", Letters{S: "F"}},
		{"AA", Letters{S: "AA"}},
		{"end", End{}},
		{"B3", Cell{Ref: cell.Ref{Row: 3, Col: 2}}},
	}
	for _, tc := range cases {
		got, err := ParseColSpec(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestParseSpec_ListForms(t *testing.T) {
	got, err := ParseRowSpec([]any{"row", 5})
	require.NoError(t, err)
	assert.Equal(t, Index{N: 5}, got)

	got, err = ParseRowSpec([]any{"row", "end"})
	require.NoError(t, err)
	assert.Equal(t, End{}, got)

	got, err = ParseRowSpec([]any{"cell", "C4"})
	require.NoError(t, err)
	assert.Equal(t, Cell{Ref: cell.Ref{Row: 4, Col: 3}}, got)

	got, err = ParseColSpec([]any{"col", "AA"})
	require.NoError(t, err)
	assert.Equal(t, Letters{S: "AA"}, got)

	got, err = ParseColSpec([]any{"col", 4})
	require.NoError(t, err)
	assert.Equal(t, Index{N: 4}, got)
}

func TestParseSpec_FindForms(t *testing.T) {
	got, err := ParseRowSpec([]any{"find-row", "A", "总计", map[string]any{"mode": "exact", "nth": 1}})
	require.NoError(t, err)
	assert.Equal(t, FindRow{
		Column: Letters{S: "A"},
		Query:  "总计",
		Opts:   match.Options{Mode: match.ModeExact, Nth: 1},
	}, got)

	got, err = ParseColSpec([]any{"find-col", 1, "^城", map[string]any{"mode": "regex", "nth": -1, "ignore_case": true}})
	require.NoError(t, err)
	assert.Equal(t, FindCol{
		Row:   Index{N: 1},
		Query: "^城",
		Opts:  match.Options{Mode: match.ModeRegex, Nth: -1, IgnoreCase: true},
	}, got)
}

func TestParseSpec_FindDefaultsToFirstExact(t *testing.T) {
	got, err := ParseRowSpec([]any{"find-row", 2, "Bob"})
	require.NoError(t, err)
	assert.Equal(t, FindRow{Column: Index{N: 2}, Query: "Bob", Opts: match.DefaultOptions()}, got)
}

func TestParseSpec_NumericQueryStringified(t *testing.T) {
	got, err := ParseRowSpec([]any{"find-row", 1, 90})
	require.NoError(t, err)
	assert.Equal(t, "90", got.(FindRow).Query)
}

func TestParseSpec_AxisCrossRejected(t *testing.T) {
	_, err := ParseRowSpec([]any{"col", "B"})
	assert.ErrorIs(t, err, ErrSpec)

	_, err = ParseColSpec([]any{"row", 2})
	assert.ErrorIs(t, err, ErrSpec)

	_, err = ParseRowSpec([]any{"find-col", 1, "x"})
	assert.ErrorIs(t, err, ErrSpec)

	_, err = ParseColSpec([]any{"find-row", "A", "x"})
	assert.ErrorIs(t, err, ErrSpec)
}

func TestParseSpec_BadShapes(t *testing.T) {
	bad := []any{
		true,
		3.5,
		"",
		"-",
		[]any{"row"},
		[]any{42, 1},
		[]any{"window", 1},
		[]any{"find-row", "A"},
		[]any{"find-row", []any{"nested"}, "q"},
		[]any{"find-row", "end", "q"},
	}
	for _, in := range bad {
		_, err := ParseRowSpec(in)
		assert.ErrorIs(t, err, ErrSpec, "%v", in)
	}
}

func TestParseSpec_UnknownFindOptionRejected(t *testing.T) {
	_, err := ParseRowSpec([]any{"find-row", "A", "q", map[string]any{"flags": 2}})
	assert.ErrorIs(t, err, ErrSpec)
}
