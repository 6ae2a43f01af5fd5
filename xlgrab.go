// Package xlgrab resolves human-friendly spreadsheet addressing against
// in-memory grids.
//
// Cell references ("A2"), column letters, 1-based indices and keyword
// searches all name positions on a grid; regions are composed from them
// with bounds checking, offsets and optional clipping.
//
// # Basic Usage
//
// Open a workbook, load a sheet, and resolve addresses against it:
//
//	wb, err := xlgrab.Open("report.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer wb.Close()
//
//	g, err := wb.Grid("Sheet1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loc := xlgrab.New(g)
//	rows, err := loc.RowsByKeywords(xlgrab.Params{
//	    StartCol: "A", StartKeyword: "姓名",
//	    EndCol: "A", EndKeyword: "总计",
//	})
//
// # Batch Operations
//
// Whole batches run from operation descriptors, typically loaded from a
// YAML file. A batch never fails as a whole: each operation that misses
// records a nil result under its name.
//
//	results := xlgrab.LocateBatch("report.xlsx", "Sheet1", ops)
//	if r := results["table"]; r != nil {
//	    fmt.Println(r.Region)
//	}
package xlgrab

import (
	"strconv"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/grid"
	"github.com/LoongMichael/xlgrab/pkg/locate"
	"github.com/LoongMichael/xlgrab/pkg/match"
	"github.com/LoongMichael/xlgrab/pkg/region"
	"github.com/LoongMichael/xlgrab/pkg/workbook"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/LoongMichael/xlgrab" without subpackages.
type (
	// Grid is the immutable cell table operations resolve against.
	Grid = grid.Grid

	// Ref names a single cell by 1-based row and column.
	Ref = cell.Ref

	// Span is an inclusive 1-based run of rows or columns.
	Span = cell.Span

	// Region is an inclusive 1-based rectangle of cells.
	Region = cell.Region

	// Operation is one named batch operation.
	Operation = locate.Operation

	// Params carries the inputs of an operation.
	Params = locate.Params

	// AxisQuery describes one axis of a specs-mode region operation.
	AxisQuery = locate.AxisQuery

	// Item is one rectangle of a multi-region operation.
	Item = locate.Item

	// Offsets shifts a region's four bounds after resolution.
	Offsets = locate.Offsets

	// Result holds whichever shape an operation produced.
	Result = locate.Result

	// Document is a parsed YAML operations file.
	Document = locate.Document

	// Kind identifies an operation's wire type.
	Kind = locate.Kind

	// MatchOptions control keyword comparison and occurrence selection.
	MatchOptions = match.Options

	// SelectParams are the full inputs of a region composition.
	SelectParams = region.Params

	// Workbook is an open xlsx file.
	Workbook = workbook.Workbook

	// Logger receives diagnostic output from batch execution.
	Logger = locate.DebugLogger
)

// Re-export the operation kinds.
const (
	KindRowsByRange           = locate.KindRowsByRange
	KindRowsByKeywords        = locate.KindRowsByKeywords
	KindRowsByStartKeyword    = locate.KindRowsByStartKeyword
	KindColumnsByRange        = locate.KindColumnsByRange
	KindColumnsByKeywords     = locate.KindColumnsByKeywords
	KindColumnsByStartKeyword = locate.KindColumnsByStartKeyword
	KindRegionByRange         = locate.KindRegionByRange
	KindRegionsByRange        = locate.KindRegionsByRange
	KindRegionBySpecs         = locate.KindRegionBySpecs
	KindRegionsBySpecs        = locate.KindRegionsBySpecs
)

// Locator resolves addressing operations against one grid.
type Locator struct {
	g   *grid.Grid
	cfg config
	d   *locate.Dispatcher
}

// config holds locator configuration.
type config struct {
	clip   bool
	opts   match.Options
	logger locate.DebugLogger
}

// Option configures a Locator.
type Option func(*config)

// WithClip clamps out-of-grid bounds in region compositions instead of
// failing them.
func WithClip() Option {
	return func(c *config) {
		c.clip = true
	}
}

// WithMatchOptions sets the matching defaults used by FindRow and FindCol.
// The default is the first exact, case-sensitive occurrence.
func WithMatchOptions(opts MatchOptions) Option {
	return func(c *config) {
		c.opts = opts
	}
}

// WithLogger routes batch diagnostics to a logger. Batch misses are silent
// otherwise.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a Locator bound to a grid.
//
// Example:
//
//	loc := xlgrab.New(g)
//
//	// Clamp region bounds instead of failing, log dropped operations
//	loc := xlgrab.New(g, xlgrab.WithClip(), xlgrab.WithLogger(logger))
func New(g *grid.Grid, opts ...Option) *Locator {
	cfg := config{opts: match.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Locator{g: g, cfg: cfg, d: locate.NewDispatcher(nil, cfg.logger)}
}

// NewGrid builds a grid from row-major cell values, for callers whose data
// does not come from a workbook.
func NewGrid(rows [][]string) *Grid {
	return grid.New(rows)
}

// Grid returns the grid the locator is bound to.
func (l *Locator) Grid() *Grid {
	return l.g
}

// RowsByRange returns the row span of an area like "A2:D9".
func (l *Locator) RowsByRange(area string) (Span, error) {
	return l.span(KindRowsByRange, Params{Area: area})
}

// RowsByKeywords finds the start and end rows by searching columns for
// keywords. StartCol, StartKeyword, EndCol and EndKeyword are required.
func (l *Locator) RowsByKeywords(p Params) (Span, error) {
	return l.span(KindRowsByKeywords, p)
}

// RowsByStartKeyword finds the start row by keyword; the span runs to the
// last grid row.
func (l *Locator) RowsByStartKeyword(p Params) (Span, error) {
	return l.span(KindRowsByStartKeyword, p)
}

// ColumnsByRange returns the column span of an area like "B1:C5".
func (l *Locator) ColumnsByRange(area string) (Span, error) {
	return l.span(KindColumnsByRange, Params{Area: area})
}

// ColumnsByKeywords finds the start and end columns by searching a header
// row for keywords. HeaderRow, StartKeyword and EndKeyword are required.
func (l *Locator) ColumnsByKeywords(p Params) (Span, error) {
	return l.span(KindColumnsByKeywords, p)
}

// ColumnsByStartKeyword finds the start column by keyword; the span runs to
// the last grid column.
func (l *Locator) ColumnsByStartKeyword(p Params) (Span, error) {
	return l.span(KindColumnsByStartKeyword, p)
}

// RegionByRange parses an area like "B2:D9" into a region.
func (l *Locator) RegionByRange(area string) (Region, error) {
	res, err := l.d.Dispatch(l.g, Operation{Kind: KindRegionByRange, Params: Params{Area: area}})
	if err != nil {
		return Region{}, err
	}
	return *res.Region, nil
}

// SelectRange composes a region from per-bound specs with defaulting,
// swapping and offsets. The locator's clip setting applies on top of the
// params' own.
func (l *Locator) SelectRange(p SelectParams) (Region, error) {
	if l.cfg.clip {
		p.Clip = true
	}
	return region.Select(l.g, p)
}

// FindRow scans a column top to bottom for a keyword using the locator's
// match options and returns the 1-based row. The column accepts letters
// ("B") or a 1-based number ("2").
func (l *Locator) FindRow(col, keyword string) (int, error) {
	return locate.FindRow(l.g, locate.ColumnRef(col), keyword, l.cfg.opts)
}

// FindCol scans a 1-based row left to right for a keyword using the
// locator's match options and returns the 1-based column.
func (l *Locator) FindCol(row int, keyword string) (int, error) {
	return locate.FindCol(l.g, locate.RowRef(strconv.Itoa(row)), keyword, l.cfg.opts)
}

// Execute runs a batch of operations against the bound grid. The returned
// map has one entry per operation; nil marks a miss.
func (l *Locator) Execute(ops []Operation) map[string]*Result {
	return l.d.Execute(l.g, ops)
}

// span dispatches one operation and unwraps its row or column span.
func (l *Locator) span(kind Kind, p Params) (Span, error) {
	res, err := l.d.Dispatch(l.g, Operation{Kind: kind, Params: p})
	if err != nil {
		return Span{}, err
	}
	if res.Rows != nil {
		return *res.Rows, nil
	}
	return *res.Cols, nil
}

// Open opens an xlsx workbook. See the workbook package for sheet listing,
// writing and merged-cell handling.
func Open(path string) (*Workbook, error) {
	return workbook.Open(path)
}

// LocateBatch loads one sheet of a workbook and runs a batch of operations
// against it. A load failure yields an empty map; per-operation misses
// yield nil entries.
//
// Example:
//
//	doc, err := xlgrab.LoadDocumentFile("ops.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results := xlgrab.LocateBatch("report.xlsx", doc.Sheet, doc.Operations)
func LocateBatch(file, sheet string, ops []Operation, opts ...Option) map[string]*Result {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return locate.NewDispatcher(workbook.Loader{}, cfg.logger).Run(file, sheet, ops)
}

// LoadDocumentFile reads an operations document from a YAML file.
func LoadDocumentFile(path string) (*Document, error) {
	return locate.LoadDocumentFile(path)
}
