package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	got, err := ParseArea("A2:D4")
	require.NoError(t, err)
	assert.Equal(t, Region{StartRow: 2, EndRow: 4, StartCol: 1, EndCol: 4}, got)
}

// ParseArea keeps inverted corners as given; normalization is the
// composer's job, validation the batch layer's.
func TestParseArea_KeepsInvertedCorners(t *testing.T) {
	got, err := ParseArea("C4:A2")
	require.NoError(t, err)
	assert.Equal(t, Region{StartRow: 4, EndRow: 2, StartCol: 3, EndCol: 1}, got)
}

func TestParseArea_Invalid(t *testing.T) {
	for _, in := range []string{"", "A2", "A2B5", "A2:B", "A2:B0", ":B5", "A2:"} {
		_, err := ParseArea(in)
		assert.ErrorIs(t, err, ErrCellRef, "area %q", in)
	}
}

func TestParseAreaIn_Sentinels(t *testing.T) {
	cases := []struct {
		area string
		want Region
	}{
		{"A1:last", Region{StartRow: 1, EndRow: 5, StartCol: 1, EndCol: 1}},
		{"B2:last", Region{StartRow: 2, EndRow: 5, StartCol: 2, EndCol: 2}},
		{"A1:lastcol", Region{StartRow: 1, EndRow: 1, StartCol: 1, EndCol: 4}},
		{"A1:lastlast", Region{StartRow: 1, EndRow: 5, StartCol: 1, EndCol: 4}},
		{"A1:C3", Region{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 3}},
	}
	for _, tc := range cases {
		got, err := ParseAreaIn(tc.area, 5, 4)
		require.NoError(t, err, tc.area)
		assert.Equal(t, tc.want, got, tc.area)
	}
}

func TestRegion_Accessors(t *testing.T) {
	r := Region{StartRow: 2, EndRow: 4, StartCol: 1, EndCol: 3}
	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, 3, r.Cols())
	assert.Equal(t, Ref{Row: 2, Col: 1}, r.Start())
	assert.Equal(t, Ref{Row: 4, Col: 3}, r.End())
	assert.Equal(t, "A2:C4", r.String())
}
