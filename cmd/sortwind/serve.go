package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/browser"

	"github.com/phyten/sortwind/internal/config"
	"github.com/phyten/sortwind/internal/engine"
	engineopts "github.com/phyten/sortwind/internal/engine/opts"
	"github.com/phyten/sortwind/internal/rewrite"
	"github.com/phyten/sortwind/internal/web"
)

const maxSortBody = 8 << 20

type server struct {
	settings settings
	rw       *rewrite.Rewriter
	mux      *http.ServeMux
}

type sortRequest struct {
	Text       string `json:"text"`
	LanguageID string `json:"languageId"`
}

type sortEdit struct {
	rewrite.Edit
	// UTF-16 code unit positions for editors that address text that way.
	OffsetUTF16 int `json:"offsetUtf16"`
	LengthUTF16 int `json:"lengthUtf16"`
}

type sortResponse struct {
	Edits []sortEdit `json:"edits"`
	Text  string     `json:"text"`
}

type settingsResponse struct {
	RunOnSave        bool     `json:"runOnSave"`
	RemoveDuplicates bool     `json:"removeDuplicates"`
	Languages        []string `json:"languages"`
}

func serveCmd(ctx context.Context, args []string, e env) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	port := fs.Int("p", 8080, "port")
	host := fs.String("host", "127.0.0.1", "listen address")
	repo := fs.String("repo", "", "repository root for /api/scan (default: current dir)")
	configPath := fs.String("config", "", "config file")
	open := fs.Bool("open", false, "open the playground in a browser")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	var layer config.Config
	if *repo != "" {
		layer.Engine.Repo = repo
	}
	st, err := loadSettings(layer, *configPath, e.getenv, e.logger)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	srv, err := newServer(st)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}

	addr := net.JoinHostPort(*host, strconv.Itoa(*port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	url := "http://" + ln.Addr().String() + "/"
	e.logger.Printf("serve listening on %s (repo=%s)", url, mustAbs(st.Engine.Repo))
	if st.ConfigPath != "" {
		e.logger.Printf("config: %s (%s)", st.ConfigPath, st.ConfigSource)
	}
	if *open {
		if err := browser.OpenURL(url); err != nil {
			e.logger.Printf("open browser: %v", err)
		}
	}

	hs := &http.Server{Handler: srv.mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()
	if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.logger.Print(err)
		return exitError
	}
	return exitOK
}

func newServer(st settings) (*server, error) {
	s := &server{settings: st, rw: rewrite.New(st.Sort.Rewrite()), mux: http.NewServeMux()}
	page := web.Page{Languages: s.rw.Languages(), Selected: rewrite.DefaultLanguage}
	if err := web.Register(s.mux, page); err != nil {
		return nil, err
	}
	s.mux.HandleFunc("/api/sort", s.handleSort)
	s.mux.HandleFunc("/api/settings", s.handleSettings)
	s.mux.HandleFunc("/api/scan", s.handleScan)
	return s, nil
}

func (s *server) handleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req sortRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSortBody))
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	text, edits, err := s.rw.Rewrite(r.Context(), req.Text, req.LanguageID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	resp := sortResponse{Edits: make([]sortEdit, 0, len(edits)), Text: text}
	for _, ed := range edits {
		resp.Edits = append(resp.Edits, sortEdit{
			Edit:        ed,
			OffsetUTF16: utf16Len(req.Text[:ed.Offset]),
			LengthUTF16: utf16Len(req.Text[ed.Offset:ed.End()]),
		})
	}
	writeJSON(w, resp)
}

func (s *server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, settingsResponse{
		RunOnSave:        s.settings.Sort.RunOnSave,
		RemoveDuplicates: s.settings.Sort.RemoveDuplicates,
		Languages:        s.rw.Languages(),
	})
}

func (s *server) handleScan(w http.ResponseWriter, r *http.Request) {
	def := engineopts.Defaults(s.settings.Engine.Repo)
	s.settings.Engine.ApplyToOptions(&def)
	opts, err := engineopts.ApplyQuery(def, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// the server never writes files
	opts.Write = false
	opts.Sort = s.settings.Sort.Rewrite()
	res, err := engine.Run(r.Context(), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("encode: %v", err), http.StatusInternalServerError)
	}
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n += utf16.RuneLen(r)
		s = s[size:]
	}
	return n
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
