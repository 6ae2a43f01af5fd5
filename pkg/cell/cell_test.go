package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"A", 1},
		{"B", 2},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"AAA", 703},
	}
	for _, tc := range cases {
		got, err := ColumnIndex(tc.label)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}
}

func TestColumnIndex_LowerCase(t *testing.T) {
	got, err := ColumnIndex("aa")
	require.NoError(t, err)
	assert.Equal(t, 27, got)
}

func TestColumnIndex_Invalid(t *testing.T) {
	for _, label := range []string{"", "A1", "1", "A B", "姓名", "-"} {
		_, err := ColumnIndex(label)
		assert.ErrorIs(t, err, ErrColumnLabel, "label %q", label)
	}
}

func TestColumnLetters(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{702, "ZZ"},
		{703, "AAA"},
	}
	for _, tc := range cases {
		got, err := ColumnLetters(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestColumnLetters_Invalid(t *testing.T) {
	for _, n := range []int{0, -1, -26} {
		_, err := ColumnLetters(n)
		assert.ErrorIs(t, err, ErrColumnLabel, "index %d", n)
	}
}

// Letters and indices must round-trip in both directions.
func TestColumnCodec_RoundTrip(t *testing.T) {
	for n := 1; n <= 4000; n++ {
		letters, err := ColumnLetters(n)
		require.NoError(t, err)
		back, err := ColumnIndex(letters)
		require.NoError(t, err)
		assert.Equal(t, n, back, "index %d via %q", n, letters)
	}
}

func TestParseRef(t *testing.T) {
	cases := []struct {
		in   string
		want Ref
	}{
		{"A1", Ref{Row: 1, Col: 1}},
		{"A2", Ref{Row: 2, Col: 1}},
		{"D4", Ref{Row: 4, Col: 4}},
		{"AA10", Ref{Row: 10, Col: 27}},
		{"b3", Ref{Row: 3, Col: 2}},
		{" C7 ", Ref{Row: 7, Col: 3}},
	}
	for _, tc := range cases {
		got, err := ParseRef(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "A", "12", "A0", "1A", "A-1", "A 1", "A1:B2"} {
		_, err := ParseRef(in)
		assert.ErrorIs(t, err, ErrCellRef, "ref %q", in)
	}
}

func TestRef_String(t *testing.T) {
	assert.Equal(t, "A1", Ref{Row: 1, Col: 1}.String())
	assert.Equal(t, "AA10", Ref{Row: 10, Col: 27}.String())
}
