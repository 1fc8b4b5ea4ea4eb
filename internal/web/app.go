// Package web serves the playground page used by `sortwind serve`.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

// Page is what the playground shows before any request is made.
type Page struct {
	Title     string
	Languages []string
	// Selected is preselected in the language list.
	Selected string
}

type indexData struct {
	Page
	StylesPath string
	ScriptPath string
}

// Register renders page once and attaches it and its assets to mux.
func Register(mux *http.ServeMux, page Page) error {
	if page.Title == "" {
		page.Title = "sortwind"
	}
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, indexData{Page: page, StylesPath: stylesPath, ScriptPath: scriptPath}); err != nil {
		return err
	}
	index := buf.Bytes()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		h := w.Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
		_, _ = w.Write(index)
	})
	mux.HandleFunc(stylesPath, asset("text/css; charset=utf-8", stylesCSS))
	mux.HandleFunc(scriptPath, asset("application/javascript; charset=utf-8", scriptJS))
	return nil
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write([]byte(body))
	}
}
