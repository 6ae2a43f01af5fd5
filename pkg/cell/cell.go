// Package cell provides spreadsheet coordinate primitives: column letter
// codecs, "A1"-style references, and 1-based inclusive regions.
package cell

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrColumnLabel reports a column label that is not a run of letters,
	// or a column index below 1.
	ErrColumnLabel = errors.New("cell: invalid column label")

	// ErrCellRef reports a malformed "A1"-style reference or area string.
	ErrCellRef = errors.New("cell: invalid cell reference")
)

// Ref is a 1-based cell position. Both components are >= 1 for a valid ref;
// values beyond grid bounds are legal until a caller clips or validates.
type Ref struct {
	Row int
	Col int
}

// refRe matches "A1"-style references: column letters then row digits.
var refRe = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ColumnIndex converts column letters to a 1-based index:
// "A"→1 … "Z"→26, "AA"→27. Lower-case input is accepted.
func ColumnIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty label", ErrColumnLabel)
	}
	n := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrColumnLabel, s)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n, nil
}

// ColumnLetters converts a 1-based column index back to letters: 1→"A", 27→"AA".
func ColumnLetters(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: index %d", ErrColumnLabel, n)
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b), nil
}

// ParseRef parses an "A1"-style reference. The row must be >= 1.
func ParseRef(s string) (Ref, error) {
	m := refRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrCellRef, s)
	}
	col, err := ColumnIndex(m[1])
	if err != nil {
		return Ref{}, err
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Ref{}, fmt.Errorf("%w: %q", ErrCellRef, s)
	}
	return Ref{Row: row, Col: col}, nil
}

// String renders the ref in "A1" form.
func (r Ref) String() string {
	letters, err := ColumnLetters(r.Col)
	if err != nil {
		return fmt.Sprintf("?%d", r.Row)
	}
	return fmt.Sprintf("%s%d", letters, r.Row)
}
