package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"姓名", "年龄", "城市", "部门"}

func TestFind_Exact(t *testing.T) {
	got, err := Find(header, "城市", Options{Mode: ModeExact, Nth: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestFind_ExactTrimsCellText(t *testing.T) {
	cells := []string{" 姓名 ", "总计"}
	got, err := Find(cells, "姓名", Options{Nth: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestFind_ExactIgnoreCase(t *testing.T) {
	cells := []string{"Alice", "BOB", "Charlie"}
	_, err := Find(cells, "bob", Options{Nth: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := Find(cells, "bob", Options{Nth: 1, IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// Contains is literal: metacharacters in the query must not act as regex.
func TestFind_ContainsIsLiteral(t *testing.T) {
	cells := []string{"a.c", "abc"}
	got, err := Find(cells, "a.c", Options{Mode: ModeContains, Nth: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = Find([]string{"abc"}, "a.c", Options{Mode: ModeContains, Nth: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFind_Regex(t *testing.T) {
	got, err := Find(header, "^城", Options{Mode: ModeRegex, Nth: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestFind_RegexIgnoreCase(t *testing.T) {
	cells := []string{"total", "Subtotal"}
	got, err := Find(cells, "^SUB", Options{Mode: ModeRegex, Nth: 1, IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFind_RegexInvalidPattern(t *testing.T) {
	_, err := New("(", Options{Mode: ModeRegex, Nth: 1})
	assert.Error(t, err)
}

func TestFindAll(t *testing.T) {
	cells := []string{"x", "hit", "y", "hit", "hit"}
	m, err := New("hit", Options{Nth: 1})
	require.NoError(t, err)
	got, err := m.FindAll(cells)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, got)
}

func TestFind_NthSelection(t *testing.T) {
	cells := []string{"x", "hit", "y", "hit", "hit"}
	cases := []struct {
		nth  int
		want int
	}{
		{1, 1},
		{2, 3},
		{3, 4},
		{-1, 4},
		{-2, 3},
		{-3, 1},
	}
	for _, tc := range cases {
		got, err := Find(cells, "hit", Options{Nth: tc.nth})
		require.NoError(t, err, "nth %d", tc.nth)
		assert.Equal(t, tc.want, got, "nth %d", tc.nth)
	}
}

// For L matches, nth=-1 picks the same position as nth=L.
func TestFind_NegativeSymmetry(t *testing.T) {
	cells := []string{"hit", "x", "hit", "hit", "x"}
	last, err := Find(cells, "hit", Options{Nth: -1})
	require.NoError(t, err)
	third, err := Find(cells, "hit", Options{Nth: 3})
	require.NoError(t, err)
	assert.Equal(t, third, last)
}

func TestFind_NthOutOfRange(t *testing.T) {
	cells := []string{"hit", "hit"}
	for _, nth := range []int{3, -3, 99} {
		_, err := Find(cells, "hit", Options{Nth: nth})
		assert.ErrorIs(t, err, ErrNotFound, "nth %d", nth)
	}
}

func TestFind_ZeroOccurrence(t *testing.T) {
	_, err := Find(header, "城市", Options{Nth: 0})
	assert.ErrorIs(t, err, ErrOccurrence)
}

func TestFind_Miss(t *testing.T) {
	_, err := Find(header, "不存在", Options{Nth: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":         ModeExact,
		"exact":    ModeExact,
		"contains": ModeContains,
		"regex":    ModeRegex,
		"Regex":    ModeRegex,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("glob")
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ModeExact, opts.Mode)
	assert.Equal(t, 1, opts.Nth)
	assert.False(t, opts.IgnoreCase)
}
