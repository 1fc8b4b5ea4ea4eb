// Package order provides the canonical class order used when no custom order
// is configured.
package order

import (
	"strings"
	"sync"
)

var defaultOnce = sync.OnceValue(build)

// Default returns a copy of the built-in order.
func Default() []string {
	list := defaultOnce()
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Resolve interprets a configured order value. It reports false when raw is
// not a list of strings, in which case callers use Default.
func Resolve(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Parse reads an order list from text: one class per line or separated by
// whitespace/commas. Lines starting with # are ignored.
func Parse(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		}) {
			out = append(out, tok)
		}
	}
	return out
}

type builder struct {
	list []string
	seen map[string]struct{}
}

func (b *builder) add(classes ...string) {
	for _, c := range classes {
		if _, ok := b.seen[c]; ok {
			continue
		}
		b.seen[c] = struct{}{}
		b.list = append(b.list, c)
	}
}

// scale adds prefix-value for every value; an empty value adds the bare prefix.
func (b *builder) scale(prefix string, values ...string) {
	for _, v := range values {
		if v == "" {
			b.add(prefix)
			continue
		}
		b.add(prefix + "-" + v)
	}
}

func (b *builder) scales(prefixes []string, values ...string) {
	for _, p := range prefixes {
		b.scale(p, values...)
	}
}

// negative adds the -prefix-value form for every value that has one.
func (b *builder) negative(prefix string, values ...string) {
	for _, v := range values {
		switch v {
		case "", "0", "auto", "screen", "min", "max", "fit":
			continue
		}
		b.add("-" + prefix + "-" + v)
	}
}

func (b *builder) colors(prefix string) {
	b.scale(prefix, "inherit", "current", "transparent", "black", "white")
	for _, hue := range hues {
		for _, shade := range shades {
			b.add(prefix + "-" + hue + "-" + shade)
		}
	}
}
