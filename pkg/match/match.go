// Package match scans a row or column of cell text for a query and selects
// the nth occurrence. Occurrences count forward from 1 or backward from -1.
package match

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	// ErrNotFound reports that the selected occurrence does not exist.
	ErrNotFound = errors.New("match: keyword not found")

	// ErrOccurrence reports an occurrence selector of zero.
	ErrOccurrence = errors.New("match: occurrence must be non-zero")
)

// Mode selects how the query is compared against cell text.
type Mode int

const (
	// ModeExact compares the query against the trimmed cell text.
	ModeExact Mode = iota
	// ModeContains checks literal substring containment; regex
	// metacharacters in the query carry no special meaning.
	ModeContains
	// ModeRegex compiles the query and searches the raw cell text.
	ModeRegex
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeContains:
		return "contains"
	case ModeRegex:
		return "regex"
	default:
		return "exact"
	}
}

// ParseMode maps a wire name to a Mode. The empty string is ModeExact.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return ModeExact, nil
	case "contains":
		return ModeContains, nil
	case "regex":
		return ModeRegex, nil
	default:
		return ModeExact, fmt.Errorf("match: unknown mode %q", s)
	}
}

// Options control comparison and occurrence selection.
type Options struct {
	// Mode selects exact, contains or regex comparison.
	Mode Mode
	// Nth picks the occurrence: positive counts from the first match,
	// negative from the last (-1 is the last). Zero is rejected.
	Nth int
	// IgnoreCase lower-cases both sides for exact and contains and
	// compiles regex queries case-insensitively.
	IgnoreCase bool
}

// DefaultOptions picks the first exact, case-sensitive occurrence.
func DefaultOptions() Options {
	return Options{Mode: ModeExact, Nth: 1}
}

// Matcher holds one compiled query.
type Matcher struct {
	query string
	opts  Options
	re    *regexp2.Regexp
}

// New builds a Matcher. Regex queries compile once, RE2 syntax first with a
// fallback to the full syntax, and carry a match timeout so a pathological
// pattern cannot stall a batch.
func New(query string, opts Options) (*Matcher, error) {
	m := &Matcher{query: query, opts: opts}
	if opts.Mode == ModeRegex {
		ro := regexp2.RE2
		if opts.IgnoreCase {
			ro |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(query, ro)
		if err != nil {
			ro = regexp2.None
			if opts.IgnoreCase {
				ro |= regexp2.IgnoreCase
			}
			re, err = regexp2.Compile(query, ro)
			if err != nil {
				return nil, fmt.Errorf("match: compile %q: %w", query, err)
			}
		}
		re.MatchTimeout = 5 * time.Second
		m.re = re
	}
	return m, nil
}

// FindAll returns the ascending 0-based positions of every matching cell.
func (m *Matcher) FindAll(cells []string) ([]int, error) {
	var out []int
	for i, c := range cells {
		ok, err := m.matches(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}

// Find applies Options.Nth to the match list and returns the chosen 0-based
// position. A missing occurrence is ErrNotFound; Nth of zero is ErrOccurrence.
func (m *Matcher) Find(cells []string) (int, error) {
	idx, err := m.FindAll(cells)
	if err != nil {
		return 0, err
	}
	return pick(idx, m.opts.Nth, m.query)
}

func (m *Matcher) matches(cellText string) (bool, error) {
	switch m.opts.Mode {
	case ModeContains:
		h, n := cellText, m.query
		if m.opts.IgnoreCase {
			h, n = strings.ToLower(h), strings.ToLower(n)
		}
		return strings.Contains(h, n), nil
	case ModeRegex:
		ok, err := m.re.MatchString(cellText)
		if err != nil {
			return false, fmt.Errorf("match: %q against %q: %w", m.query, cellText, err)
		}
		return ok, nil
	default:
		a, b := strings.TrimSpace(cellText), m.query
		if m.opts.IgnoreCase {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		return a == b, nil
	}
}

func pick(idx []int, nth int, query string) (int, error) {
	if nth == 0 {
		return 0, fmt.Errorf("%w: query %q", ErrOccurrence, query)
	}
	k := nth - 1
	if nth < 0 {
		k = len(idx) + nth
	}
	if k < 0 || k >= len(idx) {
		return 0, fmt.Errorf("%w: %q occurrence %d of %d", ErrNotFound, query, nth, len(idx))
	}
	return idx[k], nil
}

// Find is a one-shot query over cells.
func Find(cells []string, query string, opts Options) (int, error) {
	m, err := New(query, opts)
	if err != nil {
		return 0, err
	}
	return m.Find(cells)
}
