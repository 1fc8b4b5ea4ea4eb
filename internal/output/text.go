package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/sortwind/internal/engine"
	"github.com/phyten/sortwind/internal/termcolor"
	"github.com/phyten/sortwind/internal/textutil"
)

const ellipsis = "…"

type TextOptions struct {
	Palette termcolor.Palette
	// MaxCell caps the display width of each cell; 0 means unlimited.
	MaxCell int
}

// WriteText renders an aligned table. Widths are measured on display
// columns so wide characters line up.
func WriteText(w io.Writer, items []engine.Item, sel FieldSelection, opts TextOptions) error {
	rows := make([][]string, len(items))
	widths := make([]int, len(sel.Fields))
	for i, h := range sel.Headers() {
		widths[i] = textutil.Width(h)
	}
	for r, it := range items {
		row := sel.Row(it)
		for i, f := range sel.Fields {
			row[i] = fitCell(f.Key, row[i], opts.MaxCell)
			widths[i] = max(widths[i], textutil.Width(row[i]))
		}
		rows[r] = row
	}

	p := opts.Palette
	last := len(sel.Fields) - 1
	line := func(cells []string, paint func(i int, s string) string) error {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			painted := paint(i, cell)
			if i == last {
				b.WriteString(painted)
			} else {
				b.WriteString(textutil.PadRight(painted, widths[i]))
			}
		}
		_, err := fmt.Fprintln(w, b.String())
		return err
	}

	if err := line(sel.Headers(), func(_ int, s string) string { return p.Header(s) }); err != nil {
		return err
	}
	for r, row := range rows {
		it := items[r]
		err := line(row, func(i int, s string) string {
			switch sel.Fields[i].Key {
			case "location", "file":
				return p.File(s)
			case "line", "col", "lang":
				return p.Location(s)
			case "before":
				return p.Before(s)
			case "after":
				if s == it.After {
					return p.After(it.Before, s)
				}
				return p.Before(s)
			}
			return s
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func fitCell(key, s string, limit int) string {
	if limit <= 0 {
		return s
	}
	if key == "location" || key == "file" {
		return textutil.TruncateMiddle(s, limit, ellipsis)
	}
	return textutil.Truncate(s, limit, ellipsis)
}

// WriteSummary prints the trailing counts line.
func WriteSummary(w io.Writer, res *engine.Result, p termcolor.Palette) error {
	verb := "would change"
	if res.Written {
		verb = "changed"
	}
	_, err := fmt.Fprintf(w, "%s %d class list(s) in %d of %d file(s)", verb, res.Total, len(res.ChangedFiles), res.Files)
	if err == nil && res.ErrorCount > 0 {
		_, err = fmt.Fprintf(w, ", %s", p.Before(fmt.Sprintf("%d error(s)", res.ErrorCount)))
	}
	if err == nil {
		_, err = fmt.Fprintf(w, " (%dms)\n", res.ElapsedMS)
	}
	return err
}
