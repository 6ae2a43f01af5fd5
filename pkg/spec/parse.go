package spec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/LoongMichael/xlgrab/pkg/match"
)

// ParseRowSpec interprets a loosely-typed row expression as decoded from
// YAML: an int or digit string (1-based row), "end", an "A2" cell string,
// or the list forms ["row", n|"end"], ["cell", "A2"] and
// ["find-row", target, query, {mode, nth, ignore_case}]. nil stays nil
// (omitted bound).
func ParseRowSpec(v any) (Spec, error) {
	return parseAxisSpec(v, true)
}

// ParseColSpec is the column-axis counterpart; it additionally accepts bare
// column letters and the ["col", letters|n|"end"] and ["find-col", ...]
// list forms.
func ParseColSpec(v any) (Spec, error) {
	return parseAxisSpec(v, false)
}

func parseAxisSpec(v any, rowAxis bool) (Spec, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Spec:
		return t, nil
	case int:
		return Index{N: t}, nil
	case int64:
		return Index{N: int(t)}, nil
	case string:
		return parseScalar(t, rowAxis)
	case []any:
		return parseList(t, rowAxis)
	default:
		return nil, fmt.Errorf("%w: %T", ErrSpec, v)
	}
}

func parseScalar(s string, rowAxis bool) (Spec, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "end"):
		return End{}, nil
	case digitsOnly(s):
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSpec, s)
		}
		return Index{N: n}, nil
	case cellString(s):
		return CellAt(s)
	case lettersOnly(s):
		if rowAxis {
			return nil, fmt.Errorf("%w: column label %q on row axis", ErrSpec, s)
		}
		return Letters{S: s}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrSpec, s)
	}
}

func parseList(items []any, rowAxis bool) (Spec, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("%w: list needs a tag and a value", ErrSpec)
	}
	tag, ok := items[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: list tag %v", ErrSpec, items[0])
	}
	switch tag {
	case "cell":
		s, ok := items[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: cell value %v", ErrSpec, items[1])
		}
		return CellAt(s)
	case "row":
		if !rowAxis {
			return nil, fmt.Errorf("%w: row form on column axis", ErrSpec)
		}
		return parseAxisScalar(items[1], true)
	case "col":
		if rowAxis {
			return nil, fmt.Errorf("%w: col form on row axis", ErrSpec)
		}
		return parseAxisScalar(items[1], false)
	case "find-row":
		if !rowAxis {
			return nil, fmt.Errorf("%w: find-row on column axis", ErrSpec)
		}
		target, query, opts, err := parseFind(items, false)
		if err != nil {
			return nil, err
		}
		return FindRow{Column: target, Query: query, Opts: opts}, nil
	case "find-col":
		if rowAxis {
			return nil, fmt.Errorf("%w: find-col on row axis", ErrSpec)
		}
		target, query, opts, err := parseFind(items, true)
		if err != nil {
			return nil, err
		}
		return FindCol{Row: target, Query: query, Opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: list tag %q", ErrSpec, tag)
	}
}

// parseAxisScalar handles the value slot of ["row", v] / ["col", v].
func parseAxisScalar(v any, rowAxis bool) (Spec, error) {
	switch t := v.(type) {
	case int:
		return Index{N: t}, nil
	case int64:
		return Index{N: int(t)}, nil
	case string:
		t = strings.TrimSpace(t)
		switch {
		case strings.EqualFold(t, "end"):
			return End{}, nil
		case digitsOnly(t):
			n, err := strconv.Atoi(t)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrSpec, t)
			}
			return Index{N: n}, nil
		case !rowAxis && lettersOnly(t):
			return Letters{S: t}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrSpec, t)
	default:
		return nil, fmt.Errorf("%w: %T", ErrSpec, v)
	}
}

// parseFind unpacks ["find-row"|"find-col", target, query, opts?]. The
// target is the orthogonal axis: a column for find-row, a row for find-col.
func parseFind(items []any, targetIsRow bool) (Spec, string, match.Options, error) {
	opts := match.DefaultOptions()
	if len(items) < 3 {
		return nil, "", opts, fmt.Errorf("%w: find form needs target and query", ErrSpec)
	}
	target, err := parseFindTarget(items[1], targetIsRow)
	if err != nil {
		return nil, "", opts, err
	}
	var query string
	switch q := items[2].(type) {
	case string:
		query = q
	case int, int64, float64:
		query = fmt.Sprint(q)
	default:
		return nil, "", opts, fmt.Errorf("%w: query %T", ErrSpec, items[2])
	}
	if len(items) > 3 {
		raw, ok := items[3].(map[string]any)
		if !ok {
			return nil, "", opts, fmt.Errorf("%w: find options %T", ErrSpec, items[3])
		}
		opts, err = parseFindOptions(raw)
		if err != nil {
			return nil, "", opts, err
		}
	}
	return target, query, opts, nil
}

// parseFindTarget accepts only concrete positions: an index, a digit
// string, or (for columns) letters. Searches cannot anchor on "end" or on
// another search.
func parseFindTarget(v any, targetIsRow bool) (Spec, error) {
	switch t := v.(type) {
	case int:
		return Index{N: t}, nil
	case int64:
		return Index{N: int(t)}, nil
	case string:
		t = strings.TrimSpace(t)
		switch {
		case digitsOnly(t):
			n, err := strconv.Atoi(t)
			if err != nil {
				return nil, fmt.Errorf("%w: find target %q", ErrSpec, t)
			}
			return Index{N: n}, nil
		case !targetIsRow && lettersOnly(t):
			return Letters{S: t}, nil
		}
		return nil, fmt.Errorf("%w: find target %q", ErrSpec, t)
	default:
		return nil, fmt.Errorf("%w: find target %T", ErrSpec, v)
	}
}

func parseFindOptions(raw map[string]any) (match.Options, error) {
	opts := match.DefaultOptions()
	for k, v := range raw {
		switch k {
		case "mode":
			s, ok := v.(string)
			if !ok {
				return opts, fmt.Errorf("%w: mode %T", ErrSpec, v)
			}
			mode, err := match.ParseMode(s)
			if err != nil {
				return opts, fmt.Errorf("%w: %v", ErrSpec, err)
			}
			opts.Mode = mode
		case "nth":
			switch n := v.(type) {
			case int:
				opts.Nth = n
			case int64:
				opts.Nth = int(n)
			default:
				return opts, fmt.Errorf("%w: nth %T", ErrSpec, v)
			}
		case "ignore_case":
			b, ok := v.(bool)
			if !ok {
				return opts, fmt.Errorf("%w: ignore_case %T", ErrSpec, v)
			}
			opts.IgnoreCase = b
		default:
			return opts, fmt.Errorf("%w: unknown find option %q", ErrSpec, k)
		}
	}
	return opts, nil
}

func digitsOnly(s string) bool {
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

func lettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// cellString mirrors the loose shape test the addressing grammar uses: any
// string carrying both a digit and a letter is treated as a cell reference
// and must then parse as one.
func cellString(s string) bool {
	var hasDigit, hasAlpha bool
	for _, r := range s {
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
		}
	}
	return hasDigit && hasAlpha
}
