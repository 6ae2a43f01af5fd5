// Package region composes resolved row and column bounds into rectangles.
// Bounds come from up to six addressing inputs with axis-specific overrides,
// defaults run to the grid edges, inverted corners swap, and offsets shift
// the result under a clip or strict bounds policy.
package region

import (
	"errors"
	"fmt"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
	"github.com/LoongMichael/xlgrab/pkg/match"
	"github.com/LoongMichael/xlgrab/pkg/spec"
)

var (
	// ErrRegionBounds reports a region that leaves the grid in strict mode,
	// or one that vanished after clipping.
	ErrRegionBounds = errors.New("region: out of bounds")

	// ErrAmbiguousOffsets reports uniform and per-edge offsets supplied
	// together.
	ErrAmbiguousOffsets = errors.New("region: uniform and per-edge offsets are mutually exclusive")
)

// Offset shifts both edges of each axis by the same delta, moving the
// region without resizing it.
type Offset struct {
	Rows int
	Cols int
}

// EdgeOffsets shifts the four bounds independently, growing or shrinking
// the region.
type EdgeOffsets struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// Params are the inputs of one composition. Start and End seed both axes
// and must be cell references; the axis-specific specs override their axis.
// Bounds that stay unresolved default to the first row/column for starts
// and the last for ends. At most one of Offset and Edges may be set.
type Params struct {
	Start spec.Spec
	End   spec.Spec

	StartRow spec.Spec
	EndRow   spec.Spec
	StartCol spec.Spec
	EndCol   spec.Spec

	Offset *Offset
	Edges  *EdgeOffsets

	// Clip clamps literal indices and the final bounds into the grid
	// instead of failing.
	Clip bool
}

// Select resolves p against the grid into a 1-based inclusive region.
// Keyword searches that miss leave their bound unresolved, so the region
// falls back to the axis edge there.
func Select(g *grid.Grid, p Params) (cell.Region, error) {
	if g == nil || g.Empty() {
		return cell.Region{}, fmt.Errorf("%w: empty grid", ErrRegionBounds)
	}
	if p.Offset != nil && p.Edges != nil {
		return cell.Region{}, ErrAmbiguousOffsets
	}

	seedStart, err := seedRef(g, p.Start, "start", p.Clip)
	if err != nil {
		return cell.Region{}, err
	}
	seedEnd, err := seedRef(g, p.End, "end", p.Clip)
	if err != nil {
		return cell.Region{}, err
	}

	rs, err := axisBound(g, p.StartRow, seedStart.row, spec.ResolveRow, spec.Policy{Clip: p.Clip})
	if err != nil {
		return cell.Region{}, err
	}
	re, err := axisBound(g, p.EndRow, seedEnd.row, spec.ResolveRow, spec.Policy{Clip: p.Clip, DefaultEnd: true})
	if err != nil {
		return cell.Region{}, err
	}
	cs, err := axisBound(g, p.StartCol, seedStart.col, spec.ResolveCol, spec.Policy{Clip: p.Clip})
	if err != nil {
		return cell.Region{}, err
	}
	ce, err := axisBound(g, p.EndCol, seedEnd.col, spec.ResolveCol, spec.Policy{Clip: p.Clip, DefaultEnd: true})
	if err != nil {
		return cell.Region{}, err
	}

	swap(rs, re)
	swap(cs, ce)

	if p.Offset != nil {
		shift(rs, p.Offset.Rows)
		shift(re, p.Offset.Rows)
		shift(cs, p.Offset.Cols)
		shift(ce, p.Offset.Cols)
	}
	if p.Edges != nil {
		shift(rs, p.Edges.StartRow)
		shift(re, p.Edges.EndRow)
		shift(cs, p.Edges.StartCol)
		shift(ce, p.Edges.EndCol)
	}

	startRow, endRow, err := finalize(rs, re, g.Rows(), p.Clip, "row")
	if err != nil {
		return cell.Region{}, err
	}
	startCol, endCol, err := finalize(cs, ce, g.Cols(), p.Clip, "column")
	if err != nil {
		return cell.Region{}, err
	}
	return cell.Region{
		StartRow: startRow + 1,
		EndRow:   endRow + 1,
		StartCol: startCol + 1,
		EndCol:   endCol + 1,
	}, nil
}

type seed struct {
	row *int
	col *int
}

// seedRef resolves a Start/End param into per-axis 0-based components.
// Only cell references may seed both axes at once.
func seedRef(g *grid.Grid, s spec.Spec, name string, clip bool) (seed, error) {
	if s == nil {
		return seed{}, nil
	}
	c, ok := s.(spec.Cell)
	if !ok {
		return seed{}, fmt.Errorf("%w: %s must be a cell reference", spec.ErrSpec, name)
	}
	row, err := spec.ResolveRow(g, c, spec.Policy{Clip: clip})
	if err != nil {
		return seed{}, err
	}
	col, err := spec.ResolveCol(g, c, spec.Policy{Clip: clip})
	if err != nil {
		return seed{}, err
	}
	return seed{row: &row, col: &col}, nil
}

type resolveFunc func(*grid.Grid, spec.Spec, spec.Policy) (int, error)

// axisBound resolves one axis-specific spec, falling back to the seeded
// component. A keyword miss leaves the bound unresolved.
func axisBound(g *grid.Grid, s spec.Spec, seeded *int, resolve resolveFunc, p spec.Policy) (*int, error) {
	if s == nil {
		return seeded, nil
	}
	idx, err := resolve(g, s, p)
	if errors.Is(err, match.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &idx, nil
}

func swap(a, b *int) {
	if a != nil && b != nil && *a > *b {
		*a, *b = *b, *a
	}
}

func shift(v *int, by int) {
	if v != nil {
		*v += by
	}
}

// finalize fills defaults, then clamps or validates the 0-based pair.
func finalize(start, end *int, dim int, clip bool, axis string) (int, int, error) {
	s, e := 0, dim-1
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	if clip {
		s = max(0, min(s, dim-1))
		e = max(0, min(e, dim-1))
	} else {
		if start != nil && (s < 0 || s >= dim) {
			return 0, 0, fmt.Errorf("%w: start %s %d outside [1, %d]", ErrRegionBounds, axis, s+1, dim)
		}
		if end != nil && (e < 0 || e >= dim) {
			return 0, 0, fmt.Errorf("%w: end %s %d outside [1, %d]", ErrRegionBounds, axis, e+1, dim)
		}
	}
	if s > e {
		s, e = e, s
	}
	return s, e, nil
}
