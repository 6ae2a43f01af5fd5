// Package grid holds the immutable row-major cell table the resolver
// operates on. A Grid is built once from loader output and only read
// afterwards, so sharing one across goroutines needs no locking.
package grid

import (
	"strings"

	"github.com/LoongMichael/xlgrab/pkg/cell"
)

// Grid is a rectangular table of cell values. Ragged input rows are padded
// to a uniform width at construction. The zero value is an empty grid.
type Grid struct {
	cells [][]string
	cols  int
}

// New copies rows into a Grid, padding every row to the widest one.
func New(rows [][]string) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		row := make([]string, cols)
		copy(row, r)
		cells[i] = row
	}
	return &Grid{cells: cells, cols: cols}
}

// Rows returns the row count.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid holds no cells.
func (g *Grid) Empty() bool { return len(g.cells) == 0 || g.cols == 0 }

// Cell returns the value at 0-based (row, col).
func (g *Grid) Cell(row, col int) string { return g.cells[row][col] }

// Row returns a copy of the 0-based row.
func (g *Grid) Row(row int) []string {
	out := make([]string, g.cols)
	copy(out, g.cells[row])
	return out
}

// Column returns a copy of the 0-based column.
func (g *Grid) Column(col int) []string {
	out := make([]string, len(g.cells))
	for i, r := range g.cells {
		out[i] = r[col]
	}
	return out
}

// LastDataRow returns the 1-based index of the last non-blank cell in the
// 0-based column, or 0 when the column holds no data.
func (g *Grid) LastDataRow(col int) int {
	if col < 0 || col >= g.cols {
		return 0
	}
	for i := len(g.cells) - 1; i >= 0; i-- {
		if strings.TrimSpace(g.cells[i][col]) != "" {
			return i + 1
		}
	}
	return 0
}

// Region copies the cells covered by a 1-based inclusive region. Portions
// outside the grid are dropped; a region fully outside yields nil.
func (g *Grid) Region(r cell.Region) [][]string {
	startRow := max(r.StartRow, 1)
	endRow := min(r.EndRow, g.Rows())
	startCol := max(r.StartCol, 1)
	endCol := min(r.EndCol, g.cols)
	if startRow > endRow || startCol > endCol {
		return nil
	}
	out := make([][]string, 0, endRow-startRow+1)
	for i := startRow - 1; i < endRow; i++ {
		row := make([]string, endCol-startCol+1)
		copy(row, g.cells[i][startCol-1:endCol])
		out = append(out, row)
	}
	return out
}
