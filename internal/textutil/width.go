// Package textutil measures and fits text by terminal display width.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes escape sequences.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

type cluster struct {
	text  string
	width int
}

func clusters(s string) []cluster {
	var out []cluster
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		out = append(out, cluster{text: g.Str(), width: runewidth.StringWidth(g.Str())})
	}
	return out
}

// Width returns the display width of s, ignoring escape sequences.
func Width(s string) int {
	w := 0
	for _, c := range clusters(s) {
		w += c.width
	}
	return w
}

// Truncate fits s into w columns without splitting a grapheme cluster. When
// s is cut and ellipsis fits, it is appended within the budget. Escape
// sequences are dropped from a truncated result.
func Truncate(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	budget := w
	ellW := runewidth.StringWidth(ellipsis)
	if ellW > w {
		ellipsis, ellW = "", 0
	}
	budget -= ellW
	var b strings.Builder
	for _, c := range clusters(s) {
		if c.width > budget {
			break
		}
		b.WriteString(c.text)
		budget -= c.width
	}
	return b.String() + ellipsis
}

// TruncateMiddle keeps the head and tail of s, which suits file paths where
// the base name matters most.
func TruncateMiddle(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	ellW := runewidth.StringWidth(ellipsis)
	if ellW >= w {
		return Truncate(s, w, "")
	}
	cs := clusters(s)
	tailBudget := (w - ellW + 1) / 2
	headBudget := w - ellW - tailBudget

	var tail []string
	for i := len(cs) - 1; i >= 0 && cs[i].width <= tailBudget; i-- {
		tail = append(tail, cs[i].text)
		tailBudget -= cs[i].width
	}
	var b strings.Builder
	for _, c := range cs {
		if c.width > headBudget {
			break
		}
		b.WriteString(c.text)
		headBudget -= c.width
	}
	b.WriteString(ellipsis)
	for i := len(tail) - 1; i >= 0; i-- {
		b.WriteString(tail[i])
	}
	return b.String()
}

// PadRight pads s with spaces to display width w.
func PadRight(s string, w int) string {
	if pad := w - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft pads s on the left to display width w.
func PadLeft(s string, w int) string {
	if pad := w - Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
