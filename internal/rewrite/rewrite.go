// Package rewrite turns a document into the edits that sort every class list
// found in it.
package rewrite

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/phyten/sortwind/internal/extract"
	"github.com/phyten/sortwind/internal/matcher"
	"github.com/phyten/sortwind/internal/order"
	"github.com/phyten/sortwind/internal/sorter"
)

// DefaultLanguage is consulted when a language has no usable entry.
const DefaultLanguage = "html"

// ErrOverlappingEdits is returned by Apply when two distinct edits cover
// intersecting ranges.
var ErrOverlappingEdits = errors.New("overlapping edits")

// Edit replaces Length bytes at Offset with Text.
type Edit struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// End returns the byte offset just past the replaced range.
func (e Edit) End() int { return e.Offset + e.Length }

// Settings is the sort configuration a Rewriter works from.
type Settings struct {
	// ClassRegex maps a language id to its raw configuration value as
	// produced by the config decoders.
	ClassRegex map[string]any
	// Order is the canonical class order; nil selects order.Default.
	Order            []string
	RemoveDuplicates bool
}

// Rewriter computes edits for documents. It is safe for concurrent use.
type Rewriter struct {
	classRegex map[string]any
	sorter     *sorter.Sorter
	dedup      bool

	mu       sync.Mutex
	compiled map[string]compiled
}

type compiled struct {
	matchers []*matcher.Matcher
	err      error
}

// New prepares a Rewriter. Patterns are compiled on first use per language.
func New(s Settings) *Rewriter {
	ord := s.Order
	if ord == nil {
		ord = order.Default()
	}
	classRegex := make(map[string]any, len(s.ClassRegex))
	for k, v := range s.ClassRegex {
		classRegex[k] = v
	}
	return &Rewriter{
		classRegex: classRegex,
		sorter:     sorter.New(ord),
		dedup:      s.RemoveDuplicates,
		compiled:   make(map[string]compiled),
	}
}

// Sorter exposes the sorter built from the configured order.
func (r *Rewriter) Sorter() *sorter.Sorter { return r.sorter }

// Languages lists the configured language ids in ascending order.
func (r *Rewriter) Languages() []string {
	out := make([]string, 0, len(r.classRegex))
	for k := range r.classRegex {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Matchers returns the compiled matchers used for languageID.
func (r *Rewriter) Matchers(languageID string) ([]*matcher.Matcher, error) {
	key := r.resolveKey(languageID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.compiled[key]; ok {
		return c.matchers, c.err
	}
	ms, err := matcher.Compile(matcher.Decode(r.classRegex[key]))
	if err != nil {
		err = fmt.Errorf("class regex for %q: %w", key, err)
	}
	r.compiled[key] = compiled{matchers: ms, err: err}
	return ms, err
}

// resolveKey picks the configuration key for a language. Missing entries and
// falsy values (nil, "", false, zero or NaN numbers) fall back to
// DefaultLanguage.
func (r *Rewriter) resolveKey(languageID string) string {
	v, ok := r.classRegex[languageID]
	if !ok || falsy(v) {
		return DefaultLanguage
	}
	return languageID
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int8:
		return x == 0
	case int16:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case uint:
		return x == 0
	case uint8:
		return x == 0
	case uint16:
		return x == 0
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	return false
}

// Edits returns one edit per class list found in text, in matcher order and
// then document order. Edits whose replacement equals the original are
// included; use Changed to drop them.
func (r *Rewriter) Edits(ctx context.Context, text, languageID string) ([]Edit, error) {
	matchers, err := r.Matchers(languageID)
	if err != nil {
		return nil, err
	}
	var edits []Edit
	for _, m := range matchers {
		opts := sorter.Options{
			RemoveDuplicates: r.dedup,
			Separator:        m.Separator,
			Joiner:           m.Joiner,
		}
		for leaf, err := range extract.Leaves(m.Patterns, text, 0) {
			if err != nil {
				return nil, err
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sorted, err := r.sorter.Sort(leaf.Text, opts)
			if err != nil {
				return nil, err
			}
			edits = append(edits, Edit{Offset: leaf.Offset, Length: leaf.Length, Text: sorted})
		}
	}
	return edits, nil
}

// Rewrite returns text with every class list sorted, plus the edits that
// changed something.
func (r *Rewriter) Rewrite(ctx context.Context, text, languageID string) (string, []Edit, error) {
	edits, err := r.Edits(ctx, text, languageID)
	if err != nil {
		return "", nil, err
	}
	edits = Changed(text, edits)
	out, err := Apply(text, edits)
	if err != nil {
		return "", nil, err
	}
	return out, edits, nil
}

// Changed drops the edits that would leave text as it is.
func Changed(text string, edits []Edit) []Edit {
	out := make([]Edit, 0, len(edits))
	for _, e := range edits {
		if e.Offset >= 0 && e.End() <= len(text) && text[e.Offset:e.End()] == e.Text {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Apply applies edits computed against text. Identical edits collapse into
// one; distinct edits touching overlapping ranges are rejected.
func Apply(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}
	sorted := append([]Edit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].Length < sorted[j].Length
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	var prev *Edit
	for i := range sorted {
		e := sorted[i]
		if e.Offset < 0 || e.Length < 0 || e.End() > len(text) {
			return "", fmt.Errorf("edit [%d,%d) out of range for %d bytes", e.Offset, e.End(), len(text))
		}
		if prev != nil {
			if e == *prev {
				continue
			}
			if e.Offset < prev.End() || (e.Offset == prev.Offset && e.Offset == prev.End()) {
				return "", fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingEdits, prev.Offset, prev.End(), e.Offset, e.End())
			}
		}
		b.WriteString(text[pos:e.Offset])
		b.WriteString(e.Text)
		pos = e.End()
		prev = &sorted[i]
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}
