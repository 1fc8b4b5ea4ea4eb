// Package extract finds class values in a document by applying a chain of
// patterns, each one inside the value captured by the previous one.
package extract

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Match is one leaf value and its position in the original document.
type Match struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// End returns the byte offset just past the match.
func (m Match) End() int { return m.Offset + m.Length }

// Leaves returns the leaf matches of the pattern chain over text. base is
// added to every offset. The sequence is lazy and can be ranged over more
// than once; each pass rescans from the start with fresh match cursors.
//
// A match whose capturing groups are all empty or unset is skipped. An engine
// error (for instance a match timeout) is yielded once and ends the sequence.
func Leaves(patterns []*regexp2.Regexp, text string, base int) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		walk(patterns, text, base, yield)
	}
}

// Collect runs Leaves to completion.
func Collect(patterns []*regexp2.Regexp, text string, base int) ([]Match, error) {
	var out []Match
	for m, err := range Leaves(patterns, text, base) {
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}

func walk(patterns []*regexp2.Regexp, text string, base int, yield func(Match, error) bool) bool {
	if len(patterns) == 0 {
		return true
	}
	re := patterns[0]
	runes := []rune(text)
	offsets := byteOffsets(text, len(runes))

	m, err := re.FindRunesMatch(runes)
	for {
		if err != nil {
			yield(Match{}, err)
			return false
		}
		if m == nil {
			return true
		}
		if g := valueGroup(m); g != nil {
			start, end := offsets[m.Index], offsets[m.Index+m.Length]
			whole := text[start:end]
			vStart, vEnd := offsets[g.Index], offsets[g.Index+g.Length]
			value := text[vStart:vEnd]

			// rightmost occurrence of the value inside the whole match
			rel := strings.LastIndex(whole, value)
			abs := base + start + rel
			if rel < 0 {
				// the group lies outside the match span (lookaround)
				abs = base + vStart
			}

			if len(patterns) == 1 {
				if !yield(Match{Text: value, Offset: abs, Length: len(value)}, nil) {
					return false
				}
			} else if !walk(patterns[1:], value, abs, yield) {
				return false
			}
		}
		m, err = re.FindNextMatch(m)
	}
}

// valueGroup returns the first capturing group after group 0 with a
// non-empty capture.
func valueGroup(m *regexp2.Match) *regexp2.Group {
	groups := m.Groups()
	for i := 1; i < len(groups); i++ {
		g := &groups[i]
		if len(g.Captures) == 0 || g.Length == 0 {
			continue
		}
		return g
	}
	return nil
}

// byteOffsets maps rune indexes (as reported by regexp2) to byte offsets in
// text. The extra trailing entry is len(text).
func byteOffsets(text string, runeCount int) []int {
	out := make([]int, 0, runeCount+1)
	for i := 0; i < len(text); {
		out = append(out, i)
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return append(out, len(text))
}
