package locate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LoongMichael/xlgrab/pkg/cell"
)

// ErrUnknownKind reports an operation kind outside the supported set.
var ErrUnknownKind = errors.New("locate: unknown operation kind")

// Kind names one batch operation type. The values are the wire strings
// accepted in operation documents.
type Kind string

const (
	KindRowsByRange           Kind = "rows_by_range"
	KindRowsByKeywords        Kind = "rows_by_keywords"
	KindRowsByStartKeyword    Kind = "rows_by_start_keyword"
	KindColumnsByRange        Kind = "columns_by_range"
	KindColumnsByKeywords     Kind = "columns_by_keywords"
	KindColumnsByStartKeyword Kind = "columns_by_start_keyword"
	KindRegionByRange         Kind = "region_by_range"
	KindRegionsByRange        Kind = "regions_by_range"
	KindRegionBySpecs         Kind = "region_by_specs"
	KindRegionsBySpecs        Kind = "regions_by_specs"
)

// Valid reports whether k is one of the supported operation kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRowsByRange, KindRowsByKeywords, KindRowsByStartKeyword,
		KindColumnsByRange, KindColumnsByKeywords, KindColumnsByStartKeyword,
		KindRegionByRange, KindRegionsByRange, KindRegionBySpecs, KindRegionsBySpecs:
		return true
	}
	return false
}

// Axis modes accepted in AxisQuery.Mode.
const (
	AxisRange        = "range"
	AxisKeywords     = "keywords"
	AxisStartKeyword = "start_keyword"
)

// Operation is one named locate request. An empty Name is filled in at run
// time as op_<n>, where n is the number of results already collected.
type Operation struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Kind   Kind   `yaml:"type" json:"type"`
	Params Params `yaml:"params,omitempty" json:"params,omitempty"`
}

// Params carries the union of every operation kind's parameters; each kind
// reads the fields it needs and ignores the rest. Pointer fields distinguish
// "absent" from an explicit zero so kind-specific defaults can apply.
type Params struct {
	// Area is an A1-style rectangle such as "A2:D9" for the *_by_range kinds.
	Area string `yaml:"area,omitempty" json:"area,omitempty"`

	// Keyword search inputs. StartCol/EndCol name the column to scan for the
	// row kinds; HeaderRow names the row to scan for the column kinds.
	StartCol     ColumnRef `yaml:"start_col,omitempty" json:"start_col,omitempty"`
	StartKeyword Text      `yaml:"start_keyword,omitempty" json:"start_keyword,omitempty"`
	EndCol       ColumnRef `yaml:"end_col,omitempty" json:"end_col,omitempty"`
	EndKeyword   Text      `yaml:"end_keyword,omitempty" json:"end_keyword,omitempty"`
	HeaderRow    RowRef    `yaml:"header_row,omitempty" json:"header_row,omitempty"`

	// Contains switches from whole-cell equality to substring containment;
	// Regex additionally treats the keyword as a pattern. CaseSensitive
	// defaults to true when absent.
	Contains      bool  `yaml:"contains,omitempty" json:"contains,omitempty"`
	Regex         bool  `yaml:"regex,omitempty" json:"regex,omitempty"`
	CaseSensitive *bool `yaml:"case_sensitive,omitempty" json:"case_sensitive,omitempty"`

	// Occurrence selectors, 1-based from the first match or negative from
	// the last. Occurrence serves the single-keyword kinds; OccurrenceStart
	// and OccurrenceEnd serve the keyword-pair kinds. Absent values default
	// to 1, except OccurrenceEnd of columns_by_keywords which defaults to -1
	// so the span runs to the last matching header.
	Occurrence      *int `yaml:"occurrence,omitempty" json:"occurrence,omitempty"`
	OccurrenceStart *int `yaml:"occurrence_start,omitempty" json:"occurrence_start,omitempty"`
	OccurrenceEnd   *int `yaml:"occurrence_end,omitempty" json:"occurrence_end,omitempty"`

	// Offsets shift a located region's edges after resolution. For the
	// regions_* kinds it is the default every item without its own inherits.
	Offsets *Offsets `yaml:"offsets,omitempty" json:"offsets,omitempty"`

	// Items lists the sub-requests of the regions_* kinds.
	Items []Item `yaml:"items,omitempty" json:"items,omitempty"`

	// Row and Col hold the per-axis blocks of the *_by_specs kinds.
	Row *AxisQuery `yaml:"row,omitempty" json:"row,omitempty"`
	Col *AxisQuery `yaml:"col,omitempty" json:"col,omitempty"`
}

// AxisQuery locates one axis of a region_by_specs operation: Mode picks the
// strategy (range, keywords or start_keyword) and the inlined params feed it.
type AxisQuery struct {
	Mode   string `yaml:"mode" json:"mode"`
	Params `yaml:",inline"`
}

// Item is one entry of a regions_by_range or regions_by_specs request. An
// empty Name is filled in as item_<index>.
type Item struct {
	Name    string     `yaml:"name,omitempty" json:"name,omitempty"`
	Area    string     `yaml:"area,omitempty" json:"area,omitempty"`
	Row     *AxisQuery `yaml:"row,omitempty" json:"row,omitempty"`
	Col     *AxisQuery `yaml:"col,omitempty" json:"col,omitempty"`
	Offsets *Offsets   `yaml:"offsets,omitempty" json:"offsets,omitempty"`
}

// Offsets are per-edge deltas added to a located region. Results are clamped
// to the grid afterwards, so an all-zero Offsets still bounds the region.
type Offsets struct {
	StartRow int `yaml:"start_row,omitempty" json:"start_row,omitempty"`
	EndRow   int `yaml:"end_row,omitempty" json:"end_row,omitempty"`
	StartCol int `yaml:"start_col,omitempty" json:"start_col,omitempty"`
	EndCol   int `yaml:"end_col,omitempty" json:"end_col,omitempty"`
}

// UnmarshalYAML accepts the short edge keys r1/r2/c1/c2 as aliases for the
// long ones; the long key wins when both appear.
func (o *Offsets) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		StartRow *int `yaml:"start_row"`
		EndRow   *int `yaml:"end_row"`
		StartCol *int `yaml:"start_col"`
		EndCol   *int `yaml:"end_col"`
		R1       *int `yaml:"r1"`
		R2       *int `yaml:"r2"`
		C1       *int `yaml:"c1"`
		C2       *int `yaml:"c2"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	pick := func(long, short *int) int {
		if long != nil {
			return *long
		}
		if short != nil {
			return *short
		}
		return 0
	}
	o.StartRow = pick(raw.StartRow, raw.R1)
	o.EndRow = pick(raw.EndRow, raw.R2)
	o.StartCol = pick(raw.StartCol, raw.C1)
	o.EndCol = pick(raw.EndCol, raw.C2)
	return nil
}

// ColumnRef names a column by letters ("A", "BC") or a positive 1-based
// number; numbers may be quoted. Empty means unset.
type ColumnRef string

// UnmarshalYAML lets a ColumnRef decode from either a string or an integer
// scalar.
func (c *ColumnRef) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlScalar(value, "column")
	if err != nil {
		return err
	}
	*c = ColumnRef(strings.TrimSpace(s))
	return nil
}

// index resolves the reference to a 1-based column number.
func (c ColumnRef) index() (int, bool) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, false
	}
	if digits(s) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	}
	n, err := cell.ColumnIndex(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RowRef names a row by a positive 1-based number, quoted or not. Empty
// means unset.
type RowRef string

// UnmarshalYAML lets a RowRef decode from either a string or an integer
// scalar.
func (r *RowRef) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlScalar(value, "row")
	if err != nil {
		return err
	}
	*r = RowRef(strings.TrimSpace(s))
	return nil
}

// index resolves the reference to a 1-based row number.
func (r RowRef) index() (int, bool) {
	s := strings.TrimSpace(string(r))
	if !digits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Text is a keyword slot that decodes from any YAML scalar, keeping its
// string form. Numbers match cells holding the same digits.
type Text string

// UnmarshalYAML accepts any scalar node as keyword text.
func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	s, err := yamlScalar(value, "keyword")
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func yamlScalar(value *yaml.Node, what string) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%s must be a scalar value", what)
	}
	return value.Value, nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Result is one operation's outcome. Exactly one field is set: Rows or Cols
// for the axis kinds, Region for the single-region kinds and Regions for the
// list kinds. A nil *Result in the batch map marks a miss.
type Result struct {
	Rows    *cell.Span             `json:"rows,omitempty"`
	Cols    *cell.Span             `json:"cols,omitempty"`
	Region  *cell.Region           `json:"region,omitempty"`
	Regions map[string]cell.Region `json:"regions,omitempty"`
}
