package termcolor

import "strings"

// Palette colors the text report. The zero value prints plain text.
type Palette struct {
	term     Terminal
	header   Style
	file     Style
	location Style
	before   Style
	after    Style
}

func NewPalette(t Terminal) Palette {
	p := Palette{
		term:     t,
		header:   Style{Bold: true, Underline: true},
		location: Style{Dim: true},
		before:   Color(1, 167, 0xd7, 0x5f, 0x5f),
		after:    Color(2, 114, 0x87, 0xd7, 0x87),
	}
	if t.Light {
		p.file = Color(4, 25, 0x00, 0x5f, 0xaf)
		p.before = Color(1, 124, 0xaf, 0x00, 0x00)
		p.after = Color(2, 28, 0x00, 0x87, 0x00)
	} else {
		p.file = Color(6, 117, 0x87, 0xd7, 0xff)
	}
	bg := black
	if t.Light {
		bg = white
	}
	p.file = p.file.readableOn(bg)
	p.before = p.before.readableOn(bg)
	p.after = p.after.readableOn(bg)
	return p
}

func (p Palette) Enabled() bool { return p.term.Enabled }

func (p Palette) paint(s Style, text string) string {
	if !p.term.Enabled {
		return text
	}
	return s.Render(text, p.term.Profile)
}

func (p Palette) Header(text string) string   { return p.paint(p.header, text) }
func (p Palette) File(text string) string     { return p.paint(p.file, text) }
func (p Palette) Location(text string) string { return p.paint(p.location, text) }
func (p Palette) Before(text string) string   { return p.paint(p.before, text) }

// After colors the sorted class string, emphasising tokens whose position
// differs from the original.
func (p Palette) After(before, after string) string {
	if !p.term.Enabled {
		return after
	}
	old := strings.Fields(before)
	tokens := strings.Fields(after)
	if len(tokens) == 0 || strings.Join(tokens, " ") != after {
		return p.paint(p.after, after)
	}
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		style := p.after
		if i >= len(old) || old[i] != tok {
			style.Bold = true
		}
		b.WriteString(style.Render(tok, p.term.Profile))
	}
	return b.String()
}
