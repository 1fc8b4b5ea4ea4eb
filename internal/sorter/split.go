package sorter

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var whitespace = regexp2.MustCompile(`\s+`, regexp2.None)

// Split cuts s on every match of sep the way String.prototype.split does with
// a RegExp argument: leading and trailing empty pieces are kept, an empty
// match never splits at the position where the previous piece ended, and an
// empty input yields no pieces only when sep matches the empty string.
// Capturing groups in sep are not spliced into the result.
func Split(s string, sep *regexp2.Regexp) ([]string, error) {
	if sep == nil {
		sep = whitespace
	}
	runes := []rune(s)
	if len(runes) == 0 {
		m, err := sep.FindRunesMatch(runes)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return []string{}, nil
		}
		return []string{""}, nil
	}
	offsets := make([]int, 0, len(runes)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	offsets = append(offsets, len(s))

	var out []string
	p := 0 // rune index where the current piece starts
	q := 0 // rune index where the next search starts
	for q < len(runes) {
		m, err := sep.FindRunesMatchStartingAt(runes, q)
		if err != nil {
			return nil, err
		}
		if m == nil || m.Index >= len(runes) {
			break
		}
		e := m.Index + m.Length
		if e == p {
			q = m.Index + 1
			continue
		}
		out = append(out, s[offsets[p]:offsets[m.Index]])
		p = e
		q = p
	}
	return append(out, s[offsets[p]:]), nil
}
