// Package spec models addressing expressions and resolves them against a
// grid into 0-based axis indices. An expression is a literal index, column
// letters, a full cell reference, the end sentinel, or a keyword search; the
// closed set of variants replaces the loosely-typed strings and tuples the
// addressing grammar accepts on the wire.
package spec

import (
	"errors"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/match"
)

var (
	// ErrSpec reports an addressing expression whose shape is not understood
	// or that is used on the wrong axis.
	ErrSpec = errors.New("spec: invalid spec format")

	// ErrIndexRange reports a literal index outside the axis in strict mode.
	ErrIndexRange = errors.New("spec: index out of range")
)

// Spec is one addressing expression. A nil Spec means the bound was omitted;
// the resolver sends it to the edge its policy points at.
type Spec interface {
	isSpec()
}

// Cell addresses both axes through a parsed "A1" reference; the resolver
// picks the component for its axis.
type Cell struct {
	Ref cell.Ref
}

// Index is a literal 1-based row or column number.
type Index struct {
	N int
}

// Letters is a bare column label such as "F" or "AA"; column axis only.
type Letters struct {
	S string
}

// End selects the last index of the axis, in any bound slot.
type End struct{}

// FindRow locates a row by searching down a column. Column resolves
// strictly: a search anchored outside the grid is a caller error.
type FindRow struct {
	Column Spec
	Query  string
	Opts   match.Options
}

// FindCol locates a column by searching across a row. Row resolves strictly.
type FindCol struct {
	Row   Spec
	Query string
	Opts  match.Options
}

func (Cell) isSpec()    {}
func (Index) isSpec()   {}
func (Letters) isSpec() {}
func (End) isSpec()     {}
func (FindRow) isSpec() {}
func (FindCol) isSpec() {}

// CellAt builds a Cell spec from an "A1" reference string.
func CellAt(ref string) (Spec, error) {
	r, err := cell.ParseRef(ref)
	if err != nil {
		return nil, err
	}
	return Cell{Ref: r}, nil
}
