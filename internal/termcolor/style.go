package termcolor

import (
	"strconv"
	"strings"
)

// Style is a set of SGR attributes with one foreground color per profile.
type Style struct {
	Bold      bool
	Dim       bool
	Underline bool
	Strike    bool
	basic     int // 30-37, 0 when unset
	c256      int // 0 when unset
	rgb       *[3]uint8
}

// Color builds a style that degrades from rgb to a 256-color index to one of
// the 8 basic colors (0-7).
func Color(basic, c256 int, r, g, b uint8) Style {
	return Style{basic: 30 + basic, c256: c256, rgb: &[3]uint8{r, g, b}}
}

func (s Style) codes(p Profile) []string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Strike {
		codes = append(codes, "9")
	}
	switch {
	case p == ProfileTrueColor && s.rgb != nil:
		codes = append(codes, "38;2;"+strconv.Itoa(int(s.rgb[0]))+";"+strconv.Itoa(int(s.rgb[1]))+";"+strconv.Itoa(int(s.rgb[2])))
	case p >= ProfileANSI256 && s.c256 > 0:
		codes = append(codes, "38;5;"+strconv.Itoa(s.c256))
	case s.basic > 0:
		codes = append(codes, strconv.Itoa(s.basic))
	}
	return codes
}

// Render wraps text in the escape sequence for profile p.
func (s Style) Render(text string, p Profile) string {
	if text == "" {
		return text
	}
	codes := s.codes(p)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}
