package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/sortwind/internal/engine"
)

// WriteNDJSON streams one JSON object per item, then one per error.
func WriteNDJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, it := range res.Items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	for _, e := range res.Errors {
		if err := enc.Encode(struct {
			Error engine.ItemError `json:"error"`
		}{e}); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the whole result as one indented document.
func WriteJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
