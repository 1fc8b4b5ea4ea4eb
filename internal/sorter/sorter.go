// Package sorter reorders class tokens against a canonical order list.
package sorter

import (
	"sort"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Options controls one Sort call.
type Options struct {
	RemoveDuplicates bool
	// Separator splits the input; nil means runs of whitespace.
	Separator *regexp2.Regexp
	// Joiner is placed between output tokens; empty means a single space.
	Joiner string
}

// Sorter holds the rank index of a sort order. It is safe for concurrent use.
type Sorter struct {
	rank map[string]int
}

// collate.Collator keeps scratch buffers, so each comparison run borrows one.
var collators = sync.Pool{
	New: func() any { return collate.New(language.Und) },
}

// New indexes order. When a token appears more than once the first position
// wins.
func New(order []string) *Sorter {
	rank := make(map[string]int, len(order))
	for i, tok := range order {
		if _, ok := rank[tok]; !ok {
			rank[tok] = i
		}
	}
	return &Sorter{rank: rank}
}

// Rank returns the position of tok in the order, or -1 when it is unknown.
func (s *Sorter) Rank(tok string) int {
	if r, ok := s.rank[tok]; ok {
		return r
	}
	return -1
}

// SortClassString is a convenience wrapper around New(order).Sort.
func SortClassString(classString string, order []string, opts Options) (string, error) {
	return New(order).Sort(classString, opts)
}

// Sort splits classString into tokens and returns them reordered:
// unknown unprefixed tokens first (alphabetically), then known unprefixed
// tokens by rank, then tokens with a variant prefix grouped by prefix.
func (s *Sorter) Sort(classString string, opts Options) (string, error) {
	tokens, err := Split(classString, opts.Separator)
	if err != nil {
		return "", err
	}
	if opts.RemoveDuplicates {
		tokens = dedupe(tokens)
	}
	tokens = s.SortTokens(tokens)

	joiner := opts.Joiner
	if joiner == "" {
		joiner = " "
	}
	return strings.TrimSpace(strings.Join(tokens, joiner)), nil
}

// SortTokens returns the bucket-sorted tokens. The input is not modified.
func (s *Sorter) SortTokens(tokens []string) []string {
	var unordered, ordered, prefixed []string
	for _, tok := range tokens {
		switch {
		case strings.Contains(tok, ":"):
			prefixed = append(prefixed, tok)
		case s.Rank(tok) == -1:
			unordered = append(unordered, tok)
		default:
			ordered = append(ordered, tok)
		}
	}

	col := collators.Get().(*collate.Collator)
	defer collators.Put(col)

	sort.SliceStable(unordered, func(i, j int) bool {
		return compareText(col, unordered[i], unordered[j]) < 0
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return s.Rank(ordered[i]) < s.Rank(ordered[j])
	})
	sort.SliceStable(prefixed, func(i, j int) bool {
		pi, bi := splitPrefix(prefixed[i])
		pj, bj := splitPrefix(prefixed[j])
		if pi != pj {
			return compareText(col, pi, pj) < 0
		}
		// unknown base classes rank -1 and land before known ones
		return s.Rank(bi) < s.Rank(bj)
	})

	out := make([]string, 0, len(tokens))
	out = append(out, unordered...)
	out = append(out, ordered...)
	return append(out, prefixed...)
}

// splitPrefix cuts tok after its last colon. The prefix keeps the colon, so
// "peer-checked:" and "peer:" collate as whole variants.
func splitPrefix(tok string) (prefix, base string) {
	idx := strings.LastIndexByte(tok, ':')
	if idx < 0 {
		return "", tok
	}
	return tok[:idx+1], tok[idx+1:]
}

// compareText orders by collation and breaks collation ties bytewise so that
// distinct strings never compare equal.
func compareText(col *collate.Collator, a, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
