// Package header normalizes spreadsheet header rows into identifier-safe,
// unique column names. Punctuation and whitespace fold to underscores,
// blanks get positional placeholders, and duplicates get numeric suffixes.
package header

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	punctRe = regexp.MustCompile(`[-:/\\()\[\].,;：；（）【】{}·\s]`)
	runsRe  = regexp.MustCompile(`_+`)
)

// SafeName folds punctuation and whitespace in a raw header cell to single
// underscores and trims them from the ends. A blank cell yields "".
func SafeName(val string) string {
	if strings.TrimSpace(val) == "" {
		return ""
	}
	val = punctRe.ReplaceAllString(val, "_")
	val = runsRe.ReplaceAllString(val, "_")
	return strings.Trim(val, "_")
}

// Dedup makes names unique in order. Blank names become "_1", "_2", ...;
// repeats of a non-blank name keep the first occurrence bare and suffix the
// rest as "name_1", "name_2", ...
func Dedup(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			n := seen["_"] + 1
			seen["_"] = n
			out = append(out, fmt.Sprintf("_%d", n))
			continue
		}
		n := seen[name]
		if n == 0 {
			out = append(out, name)
		} else {
			out = append(out, fmt.Sprintf("%s_%d", name, n))
		}
		seen[name] = n + 1
	}
	return out
}

// Placeholders returns n positional column names N_1 .. N_n.
func Placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("N_%d", i+1)
	}
	return out
}

// Names normalizes a single header row: each cell through SafeName, then
// the whole row through Dedup.
func Names(row []string) []string {
	cleaned := make([]string, len(row))
	for i, v := range row {
		cleaned[i] = SafeName(v)
	}
	return Dedup(cleaned)
}

// Merge flattens a multi-row header into one name per column. For each
// column it collects the rows' values top to bottom, keeps the first
// occurrence of each value (a cell merged across header rows reads back as
// the same value in every row), joins them with sep, and normalizes the
// result. The final slice is deduplicated like Names.
func Merge(rows [][]string, sep string) []string {
	if len(rows) == 0 {
		return nil
	}
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	out := make([]string, width)
	for c := 0; c < width; c++ {
		seen := make(map[string]bool, len(rows))
		var vals []string
		for _, r := range rows {
			v := ""
			if c < len(r) {
				v = r[c]
			}
			if !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
		out[c] = SafeName(strings.Join(vals, sep))
	}
	return Dedup(out)
}
