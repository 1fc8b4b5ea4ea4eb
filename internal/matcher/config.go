package matcher

import (
	"maps"
	"slices"
	"strings"
)

// Kind tags the shape of a language configuration value.
type Kind int

const (
	KindAbsent Kind = iota
	KindSingle
	KindChain
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindChain:
		return "chain"
	case KindStructured:
		return "structured"
	default:
		return "absent"
	}
}

// Record is the structured form of a language configuration.
type Record struct {
	Patterns    []string
	Separator   *string
	Replacement *string
}

// Config is one language configuration value. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Config struct {
	Kind     Kind
	Patterns []string
	Record   Record
}

// Absent is the configuration that matches nothing.
var Absent = Config{Kind: KindAbsent}

// Single returns a configuration with one pattern.
func Single(pattern string) Config {
	return Config{Kind: KindSingle, Patterns: []string{pattern}}
}

// Chain returns a configuration whose patterns are applied one inside the
// match of the previous one.
func Chain(patterns ...string) Config {
	return Config{Kind: KindChain, Patterns: append([]string(nil), patterns...)}
}

// Structured returns a configuration carrying separator/replacement overrides.
func Structured(r Record) Config {
	r.Patterns = append([]string(nil), r.Patterns...)
	return Config{Kind: KindStructured, Record: r}
}

// Entry is the value stored under one language id: either a single
// configuration or a list of them, each compiling to its own Matcher.
type Entry []Config

// Decode converts a value produced by the YAML/TOML/JSON decoders into an
// Entry. Shapes that fit none of the known forms degrade to matchers with no
// patterns instead of failing.
func Decode(raw any) Entry {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return Entry{Single(v)}
	case []string:
		if len(v) == 0 {
			return nil
		}
		return Entry{Chain(v...)}
	case []any:
		if len(v) == 0 {
			return nil
		}
		// a list made only of strings is one chained matcher, not several
		if list, ok := stringList(v); ok {
			return Entry{Chain(list...)}
		}
		out := make(Entry, 0, len(v))
		for _, item := range v {
			out = append(out, decodeOne(item))
		}
		return out
	default:
		return Entry{decodeOne(v)}
	}
}

func decodeOne(raw any) Config {
	switch v := raw.(type) {
	case nil:
		return Absent
	case string:
		return Single(v)
	case []string:
		return Chain(v...)
	case []any:
		if list, ok := stringList(v); ok {
			return Chain(list...)
		}
		return Absent
	}
	m, ok := toStringKeyMap(raw)
	if !ok {
		return Structured(Record{})
	}
	return Structured(decodeRecord(m))
}

// decodeRecord reads the record fields. "patterns" wins over its "regex"
// alias, and exact keys win over case variants, so the result never depends
// on map order.
func decodeRecord(m map[string]any) Record {
	var rec Record
	if value, ok := lookup(m, "patterns", "regex"); ok {
		switch p := value.(type) {
		case string:
			rec.Patterns = []string{p}
		case []string:
			rec.Patterns = append([]string(nil), p...)
		case []any:
			if list, ok := stringList(p); ok {
				rec.Patterns = list
			}
		}
	}
	if value, ok := lookup(m, "separator"); ok {
		if s, ok := value.(string); ok {
			rec.Separator = &s
		}
	}
	if value, ok := lookup(m, "replacement"); ok {
		if s, ok := value.(string); ok {
			rec.Replacement = &s
		}
	}
	return rec
}

// lookup returns the value of the first name present in m. Exact keys are
// tried first, then case and whitespace variants in sorted key order.
func lookup(m map[string]any, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := m[name]; ok {
			return v, true
		}
	}
	keys := slices.Sorted(maps.Keys(m))
	for _, name := range names {
		for _, k := range keys {
			if strings.ToLower(strings.TrimSpace(k)) == name {
				return m[k], true
			}
		}
	}
	return nil, false
}

func stringList(values []any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, item := range values {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func toStringKeyMap(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = value
		}
		return out, true
	default:
		return nil, false
	}
}
