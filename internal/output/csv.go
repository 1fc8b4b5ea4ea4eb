package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/sortwind/internal/engine"
)

// WriteCSV renders items as RFC 4180 CSV with CRLF line endings.
func WriteCSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(sel.Headers()); err != nil {
		return err
	}
	for _, it := range items {
		if err := writer.Write(sel.Row(it)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
