package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoongMichael/xlgrab/pkg/cell"
)

func sample() *Grid {
	return New([][]string{
		{"姓名", "年龄", "城市", "部门"},
		{"Alice", "25", "New York", "IT"},
		{"Bob", "30", "London", "HR"},
		{"Charlie", "35", "Tokyo", "Finance"},
		{"总计", "90", "--", "--"},
	})
}

func TestNew_PadsRaggedRows(t *testing.T) {
	g := New([][]string{
		{"a", "b", "c"},
		{"d"},
		{},
	})
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "", g.Cell(1, 2))
	assert.Equal(t, []string{"d", "", ""}, g.Row(1))
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]string{{"a", "b"}}
	g := New(rows)
	rows[0][0] = "mutated"
	assert.Equal(t, "a", g.Cell(0, 0))
}

func TestEmpty(t *testing.T) {
	assert.True(t, New(nil).Empty())
	assert.True(t, New([][]string{}).Empty())
	assert.True(t, New([][]string{{}, {}}).Empty())
	assert.False(t, sample().Empty())
}

func TestColumn(t *testing.T) {
	g := sample()
	assert.Equal(t, []string{"姓名", "Alice", "Bob", "Charlie", "总计"}, g.Column(0))
	assert.Equal(t, []string{"部门", "IT", "HR", "Finance", "--"}, g.Column(3))
}

func TestLastDataRow(t *testing.T) {
	g := New([][]string{
		{"a", "x"},
		{"b", ""},
		{"", "  "},
	})
	assert.Equal(t, 2, g.LastDataRow(0))
	assert.Equal(t, 1, g.LastDataRow(1))
	assert.Equal(t, 0, g.LastDataRow(5))
	assert.Equal(t, 0, New(nil).LastDataRow(0))
}

func TestRegion(t *testing.T) {
	g := sample()
	got := g.Region(cell.Region{StartRow: 2, EndRow: 3, StartCol: 1, EndCol: 2})
	require.Equal(t, [][]string{
		{"Alice", "25"},
		{"Bob", "30"},
	}, got)
}

func TestRegion_ClampsToGrid(t *testing.T) {
	g := sample()
	got := g.Region(cell.Region{StartRow: 4, EndRow: 99, StartCol: 3, EndCol: 99})
	require.Equal(t, [][]string{
		{"Tokyo", "Finance"},
		{"--", "--"},
	}, got)
}

func TestRegion_OutsideGrid(t *testing.T) {
	g := sample()
	assert.Nil(t, g.Region(cell.Region{StartRow: 6, EndRow: 9, StartCol: 1, EndCol: 2}))
}
