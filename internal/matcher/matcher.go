// Package matcher compiles per-language class-extraction configuration into
// regular expressions.
package matcher

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

const (
	patternOptions   = regexp2.IgnoreCase | regexp2.ECMAScript
	separatorOptions = regexp2.ECMAScript
)

// Matcher is the compiled form of one Config.
//
// Patterns are applied as a chain: Patterns[0] over the document, Patterns[1]
// inside each value found by Patterns[0], and so on. regexp2 keeps no scan
// state on the Regexp itself, so one Matcher may be shared by any number of
// concurrent scans.
type Matcher struct {
	Patterns  []*regexp2.Regexp
	Separator *regexp2.Regexp
	// Joiner is the string placed between sorted tokens; empty means a single
	// space.
	Joiner string
}

// PatternCompilationError reports a configuration pattern that is not a valid
// regular expression.
type PatternCompilationError struct {
	Pattern string
	Err     error
}

func (e *PatternCompilationError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternCompilationError) Unwrap() error { return e.Err }

// Compile builds one Matcher per configuration of the entry, in order.
// A single invalid pattern fails the whole entry.
func Compile(entry Entry) ([]*Matcher, error) {
	if len(entry) == 0 {
		return nil, nil
	}
	out := make([]*Matcher, 0, len(entry))
	for _, cfg := range entry {
		m, err := CompileConfig(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// CompileConfig builds the Matcher for one configuration.
func CompileConfig(cfg Config) (*Matcher, error) {
	switch cfg.Kind {
	case KindAbsent:
		return &Matcher{}, nil
	case KindSingle, KindChain:
		patterns, err := compilePatterns(cfg.Patterns)
		if err != nil {
			return nil, err
		}
		return &Matcher{Patterns: patterns}, nil
	case KindStructured:
		patterns, err := compilePatterns(cfg.Record.Patterns)
		if err != nil {
			return nil, err
		}
		m := &Matcher{Patterns: patterns}
		if sep := cfg.Record.Separator; sep != nil {
			re, err := regexp2.Compile(*sep, separatorOptions)
			if err != nil {
				return nil, &PatternCompilationError{Pattern: *sep, Err: err}
			}
			m.Separator = re
		}
		// replacement, else the separator's source text, else a space
		switch {
		case cfg.Record.Replacement != nil && *cfg.Record.Replacement != "":
			m.Joiner = *cfg.Record.Replacement
		case cfg.Record.Separator != nil:
			m.Joiner = *cfg.Record.Separator
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown config kind %d", cfg.Kind)
	}
}

func compilePatterns(sources []string) ([]*regexp2.Regexp, error) {
	if len(sources) == 0 {
		return nil, nil
	}
	out := make([]*regexp2.Regexp, 0, len(sources))
	for _, src := range sources {
		re, err := regexp2.Compile(src, patternOptions)
		if err != nil {
			return nil, &PatternCompilationError{Pattern: src, Err: err}
		}
		out = append(out, re)
	}
	return out, nil
}
