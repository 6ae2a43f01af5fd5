package spec

import (
	"fmt"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
	"github.com/LoongMichael/xlgrab/pkg/match"
)

// Policy controls how literal indices are bounded and where omitted bounds
// land.
type Policy struct {
	// Clip clamps literal indices into [1, axis size] instead of failing.
	Clip bool
	// DefaultEnd sends omitted specs to the last index of the axis;
	// otherwise they land on the first.
	DefaultEnd bool
}

// Strict is the policy for positions that must exist as given: no clipping,
// omitted means first.
var Strict = Policy{}

// ResolveRow resolves a spec on the row axis to a 0-based index.
// A keyword miss surfaces as match.ErrNotFound; callers composing regions
// treat that as an unresolved bound rather than a failure.
func ResolveRow(g *grid.Grid, s Spec, p Policy) (int, error) {
	switch v := s.(type) {
	case nil:
		return edge(g.Rows(), p), nil
	case End:
		return g.Rows() - 1, nil
	case Index:
		return bound(v.N, g.Rows(), p)
	case Cell:
		return bound(v.Ref.Row, g.Rows(), p)
	case Letters:
		return 0, fmt.Errorf("%w: column label %q on row axis", ErrSpec, v.S)
	case FindRow:
		col, err := ResolveCol(g, v.Column, Strict)
		if err != nil {
			return 0, fmt.Errorf("find-row target: %w", err)
		}
		m, err := match.New(v.Query, v.Opts)
		if err != nil {
			return 0, err
		}
		return m.Find(g.Column(col))
	case FindCol:
		return 0, fmt.Errorf("%w: find-col on row axis", ErrSpec)
	default:
		return 0, fmt.Errorf("%w: %T", ErrSpec, s)
	}
}

// ResolveCol resolves a spec on the column axis to a 0-based index.
func ResolveCol(g *grid.Grid, s Spec, p Policy) (int, error) {
	switch v := s.(type) {
	case nil:
		return edge(g.Cols(), p), nil
	case End:
		return g.Cols() - 1, nil
	case Index:
		return bound(v.N, g.Cols(), p)
	case Cell:
		return bound(v.Ref.Col, g.Cols(), p)
	case Letters:
		n, err := cell.ColumnIndex(v.S)
		if err != nil {
			return 0, err
		}
		return bound(n, g.Cols(), p)
	case FindCol:
		row, err := ResolveRow(g, v.Row, Strict)
		if err != nil {
			return 0, fmt.Errorf("find-col target: %w", err)
		}
		m, err := match.New(v.Query, v.Opts)
		if err != nil {
			return 0, err
		}
		return m.Find(g.Row(row))
	case FindRow:
		return 0, fmt.Errorf("%w: find-row on column axis", ErrSpec)
	default:
		return 0, fmt.Errorf("%w: %T", ErrSpec, s)
	}
}

func edge(dim int, p Policy) int {
	if p.DefaultEnd {
		return dim - 1
	}
	return 0
}

// bound converts a 1-based index to 0-based under the policy.
func bound(n, dim int, p Policy) (int, error) {
	if p.Clip {
		return max(1, min(n, dim)) - 1, nil
	}
	if n < 1 || n > dim {
		return 0, fmt.Errorf("%w: %d outside [1, %d]", ErrIndexRange, n, dim)
	}
	return n - 1, nil
}
