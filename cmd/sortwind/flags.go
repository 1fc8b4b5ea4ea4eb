package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/sortwind/internal/config"
	engineopts "github.com/phyten/sortwind/internal/engine/opts"
)

// multiFlag collects repeated flags; each value may itself be comma separated.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, engineopts.SplitMulti([]string{v})...)
	return nil
}

type scanConfig struct {
	check      bool
	write      bool
	stdin      bool
	configPath string
	fields     string
	progress   bool
	noProgress bool
	showHelp   bool

	// layer holds only the flags that were given on the command line.
	layer config.Config
}

const scanUsage = `sortwind: sort Tailwind CSS classes in markup and scripts

Usage:
  sortwind [flags] [path...]          report class lists that are out of order
  sortwind --write [flags] [path...]  rewrite files in place
  sortwind --stdin --lang ID          sort stdin and print the result
  sortwind classes "<tokens>"         print a sorted class string
  sortwind serve [-p PORT] [--open]   start the editor/playground server

Flags:
`

func parseScanArgs(args []string, stderr io.Writer) (*scanConfig, error) {
	fs := flag.NewFlagSet("sortwind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprint(stderr, scanUsage)
		fs.PrintDefaults()
	}

	cfg := &scanConfig{}
	var (
		excludes, langs, pathRegex multiFlag

		output         string
		color          string
		jobs           int
		excludeTypical bool
		maxFileBytes   int
		keepDuplicates bool
		orderFile      string
		repo           string
	)
	fs.BoolVar(&cfg.check, "check", false, "exit 1 when any class list would change")
	fs.BoolVar(&cfg.write, "write", false, "rewrite files in place")
	fs.BoolVar(&cfg.write, "w", false, "shorthand for --write")
	fs.BoolVar(&cfg.stdin, "stdin", false, "read one document from stdin and print it sorted")
	fs.StringVar(&cfg.configPath, "config", "", "config file (default: search .sortwind.* upwards, then XDG, then home)")
	fs.StringVar(&cfg.fields, "fields", "", "columns for text/csv/markdown: location,file,line,col,lang,before,after")
	fs.BoolVar(&cfg.progress, "progress", false, "force progress output even when piped")
	fs.BoolVar(&cfg.noProgress, "no-progress", false, "disable progress output")
	fs.StringVar(&output, "output", "text", "text|json|ndjson|csv|markdown")
	fs.StringVar(&output, "o", "text", "shorthand for --output")
	fs.StringVar(&color, "color", "auto", "auto|always|never")
	fs.IntVar(&jobs, "jobs", 0, "max parallel workers (default: number of CPUs)")
	fs.IntVar(&jobs, "j", 0, "shorthand for --jobs")
	fs.Var(&excludes, "exclude", "glob to skip (repeatable)")
	fs.Var(&pathRegex, "path-regex", "only files whose path matches this regexp (repeatable)")
	fs.BoolVar(&excludeTypical, "exclude-typical", true, "skip node_modules, vendor, dist, build and minified files")
	fs.Var(&langs, "lang", "language ids to process (repeatable); with --stdin, the document language")
	fs.IntVar(&maxFileBytes, "max-file-bytes", 0, "skip files larger than this (0 = no limit)")
	fs.BoolVar(&keepDuplicates, "keep-duplicates", false, "keep repeated classes")
	fs.StringVar(&orderFile, "order-file", "", "file with one class per line, replacing the built-in order")
	fs.StringVar(&repo, "repo", "", "repository root (default: current dir)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cfg.showHelp = true
			return cfg, nil
		}
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	s, e := &cfg.layer.Sort, &cfg.layer.Engine
	if set["output"] || set["o"] {
		e.Output = &output
	}
	if set["color"] {
		e.Color = &color
	}
	if set["jobs"] || set["j"] {
		e.Jobs = &jobs
	}
	if set["exclude"] {
		e.Excludes = (*[]string)(&excludes)
	}
	if set["path-regex"] {
		e.PathRegex = (*[]string)(&pathRegex)
	}
	if set["exclude-typical"] {
		e.ExcludeTypical = &excludeTypical
	}
	if set["lang"] {
		e.Langs = (*[]string)(&langs)
	}
	if set["max-file-bytes"] {
		e.MaxFileBytes = &maxFileBytes
	}
	if set["repo"] {
		e.Repo = &repo
	}
	if set["keep-duplicates"] {
		remove := !keepDuplicates
		s.RemoveDuplicates = &remove
	}
	if set["order-file"] {
		s.OrderFile = &orderFile
	}
	if rest := fs.Args(); len(rest) > 0 {
		paths := append([]string(nil), rest...)
		e.Paths = &paths
	}

	if cfg.check && cfg.write {
		return nil, errors.New("--check and --write cannot be combined")
	}
	if cfg.progress && cfg.noProgress {
		return nil, errors.New("--progress and --no-progress cannot be combined")
	}
	return cfg, nil
}

// stdinLang is the first --lang. Empty falls back to the html matchers.
func (c *scanConfig) stdinLang() string {
	if l := c.layer.Engine.Langs; l != nil && len(*l) > 0 {
		return (*l)[0]
	}
	return ""
}
