package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
	"github.com/LoongMichael/xlgrab/pkg/match"
)

func sample() *grid.Grid {
	return grid.New([][]string{
		{"姓名", "年龄", "城市", "部门"},
		{"Alice", "25", "New York", "IT"},
		{"Bob", "30", "London", "HR"},
		{"Charlie", "35", "Tokyo", "Finance"},
		{"总计", "90", "--", "--"},
	})
}

func TestResolveRow_Index(t *testing.T) {
	g := sample()
	got, err := ResolveRow(g, Index{N: 3}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestResolveRow_IndexStrictOutOfRange(t *testing.T) {
	g := sample()
	for _, n := range []int{0, -2, 6, 99} {
		_, err := ResolveRow(g, Index{N: n}, Strict)
		assert.ErrorIs(t, err, ErrIndexRange, "row %d", n)
	}
}

// With clipping the result always lands inside the axis.
func TestResolveRow_IndexClip(t *testing.T) {
	g := sample()
	cases := []struct{ n, want int }{
		{1, 0},
		{5, 4},
		{0, 0},
		{-3, 0},
		{99, 4},
	}
	for _, tc := range cases {
		got, err := ResolveRow(g, Index{N: tc.n}, Policy{Clip: true})
		require.NoError(t, err, "row %d", tc.n)
		assert.Equal(t, tc.want, got, "row %d", tc.n)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, g.Rows())
	}
}

func TestResolveRow_OmittedAndEnd(t *testing.T) {
	g := sample()

	got, err := ResolveRow(g, nil, Policy{DefaultEnd: true})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = ResolveRow(g, nil, Strict)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = ResolveRow(g, End{}, Policy{DefaultEnd: true})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	// End names the last index even where an omitted bound would not.
	got, err = ResolveRow(g, End{}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestResolveRow_CellTakesRowComponent(t *testing.T) {
	g := sample()
	got, err := ResolveRow(g, Cell{Ref: cell.Ref{Row: 2, Col: 3}}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestResolveRow_RejectsColumnForms(t *testing.T) {
	g := sample()
	_, err := ResolveRow(g, Letters{S: "B"}, Strict)
	assert.ErrorIs(t, err, ErrSpec)

	_, err = ResolveRow(g, FindCol{Row: Index{N: 1}, Query: "城市", Opts: match.DefaultOptions()}, Strict)
	assert.ErrorIs(t, err, ErrSpec)
}

func TestResolveCol_Letters(t *testing.T) {
	g := sample()
	got, err := ResolveCol(g, Letters{S: "C"}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = ResolveCol(g, Letters{S: "Z"}, Strict)
	assert.ErrorIs(t, err, ErrIndexRange)

	got, err = ResolveCol(g, Letters{S: "Z"}, Policy{Clip: true})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestResolveCol_CellTakesColComponent(t *testing.T) {
	g := sample()
	got, err := ResolveCol(g, Cell{Ref: cell.Ref{Row: 2, Col: 3}}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestResolveRow_FindRow(t *testing.T) {
	g := sample()
	got, err := ResolveRow(g, FindRow{
		Column: Letters{S: "A"},
		Query:  "总计",
		Opts:   match.DefaultOptions(),
	}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

// Searching the header row for a regex gives the 0-based column.
func TestResolveCol_FindColRegex(t *testing.T) {
	g := sample()
	got, err := ResolveCol(g, FindCol{
		Row:   Index{N: 1},
		Query: "^城",
		Opts:  match.Options{Mode: match.ModeRegex, Nth: 1},
	}, Strict)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestResolveRow_FindMiss(t *testing.T) {
	g := sample()
	_, err := ResolveRow(g, FindRow{
		Column: Letters{S: "A"},
		Query:  "不存在",
		Opts:   match.DefaultOptions(),
	}, Strict)
	assert.ErrorIs(t, err, match.ErrNotFound)
}

// The search anchor must exist as given, whatever the outer policy says.
func TestResolveRow_FindTargetStrict(t *testing.T) {
	g := sample()
	_, err := ResolveRow(g, FindRow{
		Column: Letters{S: "Z"},
		Query:  "总计",
		Opts:   match.DefaultOptions(),
	}, Policy{Clip: true})
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestResolve_Deterministic(t *testing.T) {
	g := sample()
	s := FindRow{Column: Index{N: 1}, Query: "Bob", Opts: match.DefaultOptions()}
	first, err := ResolveRow(g, s, Strict)
	require.NoError(t, err)
	second, err := ResolveRow(g, s, Strict)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
