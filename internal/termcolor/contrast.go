package termcolor

import "math"

// minContrast is the WCAG ratio for non-body text.
const minContrast = 3.0

var (
	black = [3]uint8{0, 0, 0}
	white = [3]uint8{255, 255, 255}
)

func linear(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func luminance(c [3]uint8) float64 {
	return 0.2126*linear(c[0]) + 0.7152*linear(c[1]) + 0.0722*linear(c[2])
}

func contrastRatio(fg, bg [3]uint8) float64 {
	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// readableOn swaps the truecolor foreground for black or white, whichever
// contrasts more, when it is too faint against bg. Lower profiles are left
// to the terminal's own theme.
func (s Style) readableOn(bg [3]uint8) Style {
	if s.rgb == nil || contrastRatio(*s.rgb, bg) >= minContrast {
		return s
	}
	fg := white
	if contrastRatio(black, bg) >= contrastRatio(white, bg) {
		fg = black
	}
	s.rgb = &fg
	return s
}
