// Package output renders engine results in the formats accepted by --output.
package output

import (
	"fmt"
	"io"

	"github.com/phyten/sortwind/internal/engine"
)

type Options struct {
	Format string
	Fields FieldSelection
	Text   TextOptions
}

// Write renders res in opts.Format. Format must already be normalised.
func Write(w io.Writer, res *engine.Result, opts Options) error {
	if len(opts.Fields.Fields) == 0 {
		sel, err := ResolveFields("")
		if err != nil {
			return err
		}
		opts.Fields = sel
	}
	switch opts.Format {
	case "", "text":
		if len(res.Items) > 0 {
			if err := WriteText(w, res.Items, opts.Fields, opts.Text); err != nil {
				return err
			}
		}
		return WriteSummary(w, res, opts.Text.Palette)
	case "json":
		return WriteJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, res)
	case "csv":
		return WriteCSV(w, res.Items, opts.Fields)
	case "markdown":
		return WriteMarkdownTable(w, res.Items, opts.Fields)
	}
	return fmt.Errorf("unsupported output format: %s", opts.Format)
}
