package cell

import (
	"fmt"
	"strings"
)

// Span is a 1-based inclusive [Start, End] pair on a single axis.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Region is a 1-based inclusive rectangle. StartRow <= EndRow and
// StartCol <= EndCol hold for every region produced by the composer;
// a hand-built region may violate them until validated.
type Region struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
}

// Rows returns the number of rows the region covers.
func (r Region) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cols returns the number of columns the region covers.
func (r Region) Cols() int { return r.EndCol - r.StartCol + 1 }

// Start returns the top-left corner.
func (r Region) Start() Ref { return Ref{Row: r.StartRow, Col: r.StartCol} }

// End returns the bottom-right corner.
func (r Region) End() Ref { return Ref{Row: r.EndRow, Col: r.EndCol} }

// String renders the region in "A1:C10" form.
func (r Region) String() string {
	return fmt.Sprintf("%s:%s", r.Start(), r.End())
}

// ParseArea splits an "A1:C10" area string into a Region. Endpoints are
// taken verbatim: no bounds knowledge, no swapping of inverted corners.
func ParseArea(s string) (Region, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Region{}, fmt.Errorf("%w: area %q", ErrCellRef, s)
	}
	sr, err := ParseRef(start)
	if err != nil {
		return Region{}, err
	}
	er, err := ParseRef(end)
	if err != nil {
		return Region{}, err
	}
	return Region{StartRow: sr.Row, EndRow: er.Row, StartCol: sr.Col, EndCol: er.Col}, nil
}

// ParseAreaIn parses an area against known grid extents, additionally
// accepting the trailing sentinels "last" (down to the last row, keeping the
// start column), "lastcol" (across to the last column, keeping the start
// row) and "lastlast" (to the bottom-right corner).
func ParseAreaIn(s string, rows, cols int) (Region, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Region{}, fmt.Errorf("%w: area %q", ErrCellRef, s)
	}
	sr, err := ParseRef(start)
	if err != nil {
		return Region{}, err
	}
	var er Ref
	switch strings.ToLower(strings.TrimSpace(end)) {
	case "last":
		er = Ref{Row: rows, Col: sr.Col}
	case "lastcol":
		er = Ref{Row: sr.Row, Col: cols}
	case "lastlast":
		er = Ref{Row: rows, Col: cols}
	default:
		er, err = ParseRef(end)
		if err != nil {
			return Region{}, err
		}
	}
	return Region{StartRow: sr.Row, EndRow: er.Row, StartCol: sr.Col, EndCol: er.Col}, nil
}
