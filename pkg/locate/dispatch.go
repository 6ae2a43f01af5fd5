// Package locate executes named batches of grid-addressing operations
// against a single sheet load. Every operation resolves independently:
// a bad area string, a missing keyword or an unknown kind records a nil
// result under that operation's name and the rest of the batch proceeds.
package locate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
	"github.com/LoongMichael/xlgrab/pkg/match"
	"github.com/LoongMichael/xlgrab/pkg/prefilter"
	"github.com/LoongMichael/xlgrab/pkg/region"
)

// Loader supplies the grid for one (file, sheet) target. Implementations
// decide what the identifiers mean; the dispatcher only calls it once per
// Run and treats any error as an empty batch.
type Loader interface {
	Grid(file, sheet string) (*grid.Grid, error)
}

// DebugLogger receives diagnostic output from the dispatcher. Batch misses
// are silent by design, so the log is the only place a dropped operation
// explains itself.
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger discards all debug output.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(format string, args ...interface{}) {}

// Dispatcher runs operation batches. The zero value is not usable; construct
// with NewDispatcher.
type Dispatcher struct {
	loader Loader
	logger DebugLogger
}

// NewDispatcher builds a dispatcher around a grid loader. A nil logger
// silences debug output.
func NewDispatcher(loader Loader, logger DebugLogger) *Dispatcher {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Dispatcher{loader: loader, logger: logger}
}

// Run loads the sheet once and executes every operation against it. The
// returned map holds one entry per operation, keyed by its name; a nil value
// marks an operation that failed or matched nothing. A load failure or an
// empty sheet yields an empty map.
func (d *Dispatcher) Run(file, sheet string, ops []Operation) map[string]*Result {
	g, err := d.loader.Grid(file, sheet)
	if err != nil {
		d.logger.Log("load %s sheet %s failed: %v", file, sheet, err)
		return map[string]*Result{}
	}
	return d.Execute(g, ops)
}

// Dispatch executes a single operation without the batch's miss swallowing:
// the error a batch would log and record as a nil entry comes back to the
// caller instead.
func (d *Dispatcher) Dispatch(g *grid.Grid, op Operation) (*Result, error) {
	return d.dispatch(g, op)
}

// Execute runs every operation against an already loaded grid, with the same
// result contract as Run.
func (d *Dispatcher) Execute(g *grid.Grid, ops []Operation) map[string]*Result {
	if g == nil || g.Empty() {
		return map[string]*Result{}
	}
	results := make(map[string]*Result, len(ops))
	for _, op := range ops {
		name := op.Name
		if name == "" {
			name = fmt.Sprintf("op_%d", len(results))
		}
		res, err := d.dispatch(g, op)
		if err != nil {
			d.logger.Log("operation %s (%s) missed: %v", name, op.Kind, err)
			res = nil
		}
		results[name] = res
	}
	return results
}

func (d *Dispatcher) dispatch(g *grid.Grid, op Operation) (*Result, error) {
	p := op.Params
	switch op.Kind {
	case KindRowsByRange:
		s, err := d.rowsByRange(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Rows: &s}, nil
	case KindRowsByKeywords:
		s, err := d.rowsByKeywords(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Rows: &s}, nil
	case KindRowsByStartKeyword:
		s, err := d.rowsByStartKeyword(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Rows: &s}, nil
	case KindColumnsByRange:
		s, err := d.columnsByRange(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Cols: &s}, nil
	case KindColumnsByKeywords:
		s, err := d.columnsByKeywords(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Cols: &s}, nil
	case KindColumnsByStartKeyword:
		s, err := d.columnsByStartKeyword(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Cols: &s}, nil
	case KindRegionByRange:
		r, err := d.regionByRange(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Region: &r}, nil
	case KindRegionsByRange:
		m, err := d.regionsByRange(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Regions: m}, nil
	case KindRegionBySpecs:
		r, err := d.regionBySpecs(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Region: &r}, nil
	case KindRegionsBySpecs:
		m, err := d.regionsBySpecs(g, p)
		if err != nil {
			return nil, err
		}
		return &Result{Regions: m}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, op.Kind)
}

func (d *Dispatcher) rowsByRange(g *grid.Grid, p Params) (cell.Span, error) {
	r, err := parseArea(p.Area)
	if err != nil {
		return cell.Span{}, err
	}
	return cell.Span{Start: r.StartRow, End: r.EndRow}, nil
}

func (d *Dispatcher) rowsByKeywords(g *grid.Grid, p Params) (cell.Span, error) {
	if p.StartCol == "" || p.StartKeyword == "" || p.EndCol == "" || p.EndKeyword == "" {
		return cell.Span{}, errors.New("start_col, start_keyword, end_col and end_keyword are required")
	}
	start, err := FindRow(g, p.StartCol, string(p.StartKeyword), p.matchOptions(intOr(p.OccurrenceStart, 1)))
	if err != nil {
		return cell.Span{}, err
	}
	end, err := FindRow(g, p.EndCol, string(p.EndKeyword), p.matchOptions(intOr(p.OccurrenceEnd, 1)))
	if err != nil {
		return cell.Span{}, err
	}
	if start > end {
		return cell.Span{}, fmt.Errorf("start row %d is below end row %d", start, end)
	}
	return cell.Span{Start: start, End: end}, nil
}

func (d *Dispatcher) rowsByStartKeyword(g *grid.Grid, p Params) (cell.Span, error) {
	if p.StartCol == "" || p.StartKeyword == "" {
		return cell.Span{}, errors.New("start_col and start_keyword are required")
	}
	start, err := FindRow(g, p.StartCol, string(p.StartKeyword), p.matchOptions(intOr(p.Occurrence, 1)))
	if err != nil {
		return cell.Span{}, err
	}
	return cell.Span{Start: start, End: g.Rows()}, nil
}

func (d *Dispatcher) columnsByRange(g *grid.Grid, p Params) (cell.Span, error) {
	r, err := parseArea(p.Area)
	if err != nil {
		return cell.Span{}, err
	}
	return cell.Span{Start: r.StartCol, End: r.EndCol}, nil
}

func (d *Dispatcher) columnsByKeywords(g *grid.Grid, p Params) (cell.Span, error) {
	if p.HeaderRow == "" || p.StartKeyword == "" || p.EndKeyword == "" {
		return cell.Span{}, errors.New("header_row, start_keyword and end_keyword are required")
	}
	start, err := FindCol(g, p.HeaderRow, string(p.StartKeyword), p.matchOptions(intOr(p.OccurrenceStart, 1)))
	if err != nil {
		return cell.Span{}, err
	}
	end, err := FindCol(g, p.HeaderRow, string(p.EndKeyword), p.matchOptions(intOr(p.OccurrenceEnd, -1)))
	if err != nil {
		return cell.Span{}, err
	}
	if start > end {
		return cell.Span{}, fmt.Errorf("start column %d is after end column %d", start, end)
	}
	return cell.Span{Start: start, End: end}, nil
}

func (d *Dispatcher) columnsByStartKeyword(g *grid.Grid, p Params) (cell.Span, error) {
	if p.HeaderRow == "" || p.StartKeyword == "" {
		return cell.Span{}, errors.New("header_row and start_keyword are required")
	}
	start, err := FindCol(g, p.HeaderRow, string(p.StartKeyword), p.matchOptions(intOr(p.Occurrence, 1)))
	if err != nil {
		return cell.Span{}, err
	}
	return cell.Span{Start: start, End: g.Cols()}, nil
}

func (d *Dispatcher) regionByRange(g *grid.Grid, p Params) (cell.Region, error) {
	return d.areaRegion(g, p.Area, p.Offsets)
}

func (d *Dispatcher) regionsByRange(g *grid.Grid, p Params) (map[string]cell.Region, error) {
	if p.Items == nil {
		return nil, errors.New("items are required")
	}
	out := make(map[string]cell.Region, len(p.Items))
	for idx, item := range p.Items {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("item_%d", idx)
		}
		offs := item.Offsets
		if offs == nil {
			offs = p.Offsets
		}
		r, err := d.areaRegion(g, item.Area, offs)
		if err != nil {
			d.logger.Log("item %s missed: %v", name, err)
			continue
		}
		out[name] = r
	}
	return out, nil
}

func (d *Dispatcher) regionBySpecs(g *grid.Grid, p Params) (cell.Region, error) {
	rows, err := d.rowSpan(g, p.Row)
	if err != nil {
		return cell.Region{}, err
	}
	cols, err := d.colSpan(g, p.Col)
	if err != nil {
		return cell.Region{}, err
	}
	r := cell.Region{StartRow: rows.Start, EndRow: rows.End, StartCol: cols.Start, EndCol: cols.End}
	if p.Offsets == nil {
		return r, nil
	}
	return shiftRegion(g, r, p.Offsets)
}

func (d *Dispatcher) regionsBySpecs(g *grid.Grid, p Params) (map[string]cell.Region, error) {
	if p.Items == nil {
		return nil, errors.New("items are required")
	}
	out := make(map[string]cell.Region, len(p.Items))
	for idx, item := range p.Items {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("item_%d", idx)
		}
		offs := item.Offsets
		if offs == nil {
			offs = p.Offsets
		}
		r, err := d.regionBySpecs(g, Params{Row: item.Row, Col: item.Col, Offsets: offs})
		if err != nil {
			d.logger.Log("item %s missed: %v", name, err)
			continue
		}
		out[name] = r
	}
	return out, nil
}

// rowSpan resolves the row block of a *_by_specs operation by reusing the
// matching row-kind handler.
func (d *Dispatcher) rowSpan(g *grid.Grid, q *AxisQuery) (cell.Span, error) {
	if q == nil {
		return cell.Span{}, errors.New("row block is required")
	}
	switch strings.TrimSpace(q.Mode) {
	case AxisRange:
		return d.rowsByRange(g, q.Params)
	case AxisKeywords:
		return d.rowsByKeywords(g, q.Params)
	case AxisStartKeyword:
		return d.rowsByStartKeyword(g, q.Params)
	}
	return cell.Span{}, fmt.Errorf("unknown row mode %q", q.Mode)
}

func (d *Dispatcher) colSpan(g *grid.Grid, q *AxisQuery) (cell.Span, error) {
	if q == nil {
		return cell.Span{}, errors.New("col block is required")
	}
	switch strings.TrimSpace(q.Mode) {
	case AxisRange:
		return d.columnsByRange(g, q.Params)
	case AxisKeywords:
		return d.columnsByKeywords(g, q.Params)
	case AxisStartKeyword:
		return d.columnsByStartKeyword(g, q.Params)
	}
	return cell.Span{}, fmt.Errorf("unknown col mode %q", q.Mode)
}

// areaRegion turns an area string into a region, applying offsets when given.
func (d *Dispatcher) areaRegion(g *grid.Grid, area string, offs *Offsets) (cell.Region, error) {
	r, err := parseArea(area)
	if err != nil {
		return cell.Region{}, err
	}
	if offs == nil {
		return r, nil
	}
	return shiftRegion(g, r, offs)
}

// FindRow scans one column for a keyword and returns the 1-based row of the
// selected occurrence.
func FindRow(g *grid.Grid, col ColumnRef, keyword string, opts match.Options) (int, error) {
	c, ok := col.index()
	if !ok {
		return 0, fmt.Errorf("invalid column %q", string(col))
	}
	if c > g.Cols() {
		return 0, fmt.Errorf("column %d is outside the grid", c)
	}
	return findIn(g.Column(c-1), keyword, opts)
}

// FindCol scans one row for a keyword and returns the 1-based column of the
// selected occurrence.
func FindCol(g *grid.Grid, row RowRef, keyword string, opts match.Options) (int, error) {
	r, ok := row.index()
	if !ok {
		return 0, fmt.Errorf("invalid row %q", string(row))
	}
	if r > g.Rows() {
		return 0, fmt.Errorf("row %d is outside the grid", r)
	}
	return findIn(g.Row(r-1), keyword, opts)
}

func findIn(cells []string, keyword string, opts match.Options) (int, error) {
	if opts.Mode != match.ModeRegex {
		pf := prefilter.New([]string{keyword}, opts.IgnoreCase)
		if !pf.AllPresent(cells) {
			return 0, fmt.Errorf("%w: %q", match.ErrNotFound, keyword)
		}
	}
	i, err := match.Find(cells, keyword, opts)
	if err != nil {
		return 0, err
	}
	return i + 1, nil
}

// matchOptions maps the wire flags onto matcher options: contains switches
// to substring search and regex upgrades that to pattern search. A bare
// regex flag without contains keeps whole-cell equality.
func (p Params) matchOptions(nth int) match.Options {
	mode := match.ModeExact
	if p.Contains {
		mode = match.ModeContains
		if p.Regex {
			mode = match.ModeRegex
		}
	}
	return match.Options{Mode: mode, Nth: nth, IgnoreCase: !boolOr(p.CaseSensitive, true)}
}

// parseArea accepts only a forward-ordered rectangle; batch operations treat
// inverted corners as a miss rather than swapping them.
func parseArea(area string) (cell.Region, error) {
	r, err := cell.ParseArea(area)
	if err != nil {
		return cell.Region{}, err
	}
	if r.StartRow > r.EndRow || r.StartCol > r.EndCol {
		return cell.Region{}, fmt.Errorf("area %q has inverted corners", area)
	}
	return r, nil
}

// shiftRegion applies per-edge offsets and clamps the result to the grid.
// A shift that empties the region is a miss.
func shiftRegion(g *grid.Grid, r cell.Region, offs *Offsets) (cell.Region, error) {
	edges := &region.EdgeOffsets{
		StartRow: offs.StartRow,
		EndRow:   offs.EndRow,
		StartCol: offs.StartCol,
		EndCol:   offs.EndCol,
	}
	return region.OffsetRegion(g, r, nil, edges, true)
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}
