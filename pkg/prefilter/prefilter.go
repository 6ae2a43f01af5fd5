// Package prefilter gates keyword searches with an Aho-Corasick pass over an
// axis slice, letting the batch dispatcher skip positional scans that cannot
// possibly match.
package prefilter

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter answers whether a set of literal keywords occurs in a slice of
// cells. A negative answer is definitive; a positive answer still needs the
// real matcher, since exact matches require full-cell equality the automaton
// cannot decide. Regex queries must bypass the prefilter.
type Prefilter struct {
	matcher    *ahocorasick.Matcher
	keywords   []string
	ignoreCase bool
}

// New builds a prefilter over literal keywords. Empty keywords are dropped
// and duplicates collapsed; with no keywords left every probe passes.
func New(keywords []string, ignoreCase bool) *Prefilter {
	pf := &Prefilter{ignoreCase: ignoreCase}
	seen := make(map[string]bool)
	for _, k := range keywords {
		if ignoreCase {
			k = strings.ToLower(k)
		}
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		pf.keywords = append(pf.keywords, k)
	}
	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// AllPresent reports whether every keyword occurs somewhere in cells.
func (pf *Prefilter) AllPresent(cells []string) bool {
	if pf.matcher == nil {
		return true
	}
	joined := strings.Join(cells, "\n")
	if pf.ignoreCase {
		joined = strings.ToLower(joined)
	}
	hits := pf.matcher.Match([]byte(joined))
	found := make(map[int]bool, len(hits))
	for _, h := range hits {
		found[h] = true
	}
	return len(found) == len(pf.keywords)
}
