package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/sortwind/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldHeaders = map[string]string{
	"location": "LOCATION",
	"file":     "FILE",
	"line":     "LINE",
	"col":      "COL",
	"lang":     "LANG",
	"before":   "BEFORE",
	"after":    "AFTER",
}

var defaultFields = []string{"location", "lang", "before", "after"}

// ResolveFields parses a comma separated --fields value. Empty selects the
// default columns.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	keys := defaultFields
	if raw != "" {
		keys = strings.Split(raw, ",")
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, part := range keys {
		key := strings.ToLower(strings.TrimSpace(part))
		if key == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		header, ok := fieldHeaders[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", part)
		}
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header})
	}
	return sel, nil
}

func (s FieldSelection) Headers() []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Header
	}
	return out
}

func (s FieldSelection) Row(it engine.Item) []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = fieldValue(it, f.Key)
	}
	return out
}

func fieldValue(it engine.Item, key string) string {
	switch key {
	case "location":
		return it.File + ":" + strconv.Itoa(it.Line) + ":" + strconv.Itoa(it.Span.StartCol)
	case "file":
		return it.File
	case "line":
		return strconv.Itoa(it.Line)
	case "col":
		return strconv.Itoa(it.Span.StartCol)
	case "lang":
		return it.Lang
	case "before":
		return it.Before
	case "after":
		return it.After
	}
	return ""
}
