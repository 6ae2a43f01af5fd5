package region

import (
	"fmt"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
)

// OffsetRegion shifts an already-resolved 1-based region. At most one of
// the two offset modes may be supplied; supplying neither leaves the region
// as given but still bounds-checks it. With clip the bounds clamp into the
// grid and
// an interval that inverts under clamping is ErrRegionBounds; without,
// any bound leaving the grid is ErrRegionBounds.
func OffsetRegion(g *grid.Grid, r cell.Region, off *Offset, edges *EdgeOffsets, clip bool) (cell.Region, error) {
	if g == nil || g.Empty() {
		return cell.Region{}, fmt.Errorf("%w: empty grid", ErrRegionBounds)
	}
	if off != nil && edges != nil {
		return cell.Region{}, ErrAmbiguousOffsets
	}

	sr, er := r.StartRow, r.EndRow
	sc, ec := r.StartCol, r.EndCol
	if off != nil {
		sr += off.Rows
		er += off.Rows
		sc += off.Cols
		ec += off.Cols
	}
	if edges != nil {
		sr += edges.StartRow
		er += edges.EndRow
		sc += edges.StartCol
		ec += edges.EndCol
	}

	rows, cols := g.Rows(), g.Cols()
	if clip {
		sr = max(1, min(sr, rows))
		er = max(1, min(er, rows))
		sc = max(1, min(sc, cols))
		ec = max(1, min(ec, cols))
	} else {
		for _, b := range []struct {
			v, dim int
			name   string
		}{
			{sr, rows, "start row"},
			{er, rows, "end row"},
			{sc, cols, "start column"},
			{ec, cols, "end column"},
		} {
			if b.v < 1 || b.v > b.dim {
				return cell.Region{}, fmt.Errorf("%w: %s %d outside [1, %d]", ErrRegionBounds, b.name, b.v, b.dim)
			}
		}
	}
	if sr > er || sc > ec {
		return cell.Region{}, fmt.Errorf("%w: empty interval %d..%d x %d..%d", ErrRegionBounds, sr, er, sc, ec)
	}
	return cell.Region{StartRow: sr, EndRow: er, StartCol: sc, EndCol: ec}, nil
}
