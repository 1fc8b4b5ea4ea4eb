package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/sortwind/internal/engine"
)

// WriteMarkdownTable renders items as a GitHub Flavored Markdown table.
// before/after cells are wrapped in code spans.
func WriteMarkdownTable(w io.Writer, items []engine.Item, sel FieldSelection) error {
	headers := sel.Headers()
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, it := range items {
		row := sel.Row(it)
		for i, f := range sel.Fields {
			if f.Key == "before" || f.Key == "after" {
				row[i] = codeSpan(row[i])
			} else {
				row[i] = escapeMarkdownCell(row[i])
			}
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// codeSpan picks a backtick fence longer than any run inside s.
func codeSpan(s string) string {
	if s == "" {
		return ""
	}
	s = escapeMarkdownCell(s)
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", "\\|")
}
