package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phyten/sortwind/internal/config"
	"github.com/phyten/sortwind/internal/engine"
	engineopts "github.com/phyten/sortwind/internal/engine/opts"
	"github.com/phyten/sortwind/internal/output"
	"github.com/phyten/sortwind/internal/progress"
	"github.com/phyten/sortwind/internal/rewrite"
	"github.com/phyten/sortwind/internal/sorter"
	"github.com/phyten/sortwind/internal/termcolor"
)

const (
	exitOK = 0
	// exitChanged is also used when some files could not be processed.
	exitChanged = 1
	exitError   = 2
)

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	logger *log.Logger
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sortwind: ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		logger: log.Default(),
	})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, e env) int {
	if e.logger == nil {
		e.logger = log.New(e.stderr, "sortwind: ", 0)
	}
	if len(args) > 0 {
		switch args[0] {
		case "serve":
			return serveCmd(ctx, args[1:], e)
		case "classes":
			return classesCmd(args[1:], e)
		}
	}
	return scanCmd(ctx, args, e)
}

func scanCmd(ctx context.Context, args []string, e env) int {
	cfg, err := parseScanArgs(args, e.stderr)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	if cfg.showHelp {
		return exitOK
	}
	st, err := loadSettings(cfg.layer, cfg.configPath, e.getenv, e.logger)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	if cfg.stdin {
		return stdinCmd(ctx, cfg, st, e)
	}

	opts := engineopts.Defaults(st.Engine.Repo)
	st.Engine.ApplyToOptions(&opts)
	opts.Write = cfg.write
	opts.Sort = st.Sort.Rewrite()
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		e.logger.Print(err)
		return exitError
	}
	format, err := engineopts.NormalizeOutput(st.Engine.Output)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	fields, err := output.ResolveFields(cfg.fields)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	mode, err := termcolor.ParseMode(st.Engine.Color)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	stdoutFile, _ := e.stdout.(*os.File)
	term := termcolor.Detect(mode, stdoutFile, termcolor.EnvMap(environ(e.getenv)))

	if progress.ShouldShowProgress(cfg.progress, cfg.noProgress, e.stdout, e.stderr) {
		opts.Progress = true
		opts.ProgressObserver = progress.NewAutoObserver(e.stderr)
	}

	res, err := engine.Run(ctx, opts)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	err = output.Write(e.stdout, res, output.Options{
		Format: format,
		Fields: fields,
		Text:   output.TextOptions{Palette: termcolor.NewPalette(term)},
	})
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	reportErrors(e.stderr, res)

	switch {
	case res.ErrorCount > 0:
		return exitChanged
	case cfg.check && res.Total > 0:
		return exitChanged
	}
	return exitOK
}

// reportErrors lists per-file failures on stderr.
func reportErrors(w io.Writer, res *engine.Result) {
	for _, it := range res.Errors {
		_, _ = fmt.Fprintf(w, "sortwind: %s: %s: %s\n", it.File, it.Stage, it.Message)
	}
}

func stdinCmd(ctx context.Context, cfg *scanConfig, st settings, e env) int {
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	rw := rewrite.New(st.Sort.Rewrite())
	text := string(data)
	out, edits, err := rw.Rewrite(ctx, text, cfg.stdinLang())
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	if cfg.check {
		if len(edits) > 0 {
			return exitChanged
		}
		return exitOK
	}
	if _, err := io.WriteString(e.stdout, out); err != nil {
		e.logger.Print(err)
		return exitError
	}
	return exitOK
}

// classesCmd prints each argument's classes sorted, one result per line.
func classesCmd(args []string, e env) int {
	fs := flag.NewFlagSet("classes", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	keep := fs.Bool("keep-duplicates", false, "keep repeated classes")
	orderFile := fs.String("order-file", "", "file with one class per line")
	configPath := fs.String("config", "", "config file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if fs.NArg() == 0 {
		e.logger.Print(`usage: sortwind classes [--keep-duplicates] [--order-file FILE] "<classes>"...`)
		return exitError
	}

	var layer config.Config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keep-duplicates":
			remove := !*keep
			layer.Sort.RemoveDuplicates = &remove
		case "order-file":
			layer.Sort.OrderFile = orderFile
		}
	})
	st, err := loadSettings(layer, *configPath, e.getenv, e.logger)
	if err != nil {
		e.logger.Print(err)
		return exitError
	}
	rw := rewrite.New(st.Sort.Rewrite())
	for _, arg := range fs.Args() {
		sorted, err := rw.Sorter().Sort(arg, sorter.Options{RemoveDuplicates: st.Sort.RemoveDuplicates})
		if err != nil {
			e.logger.Print(err)
			return exitError
		}
		if _, err := fmt.Fprintln(e.stdout, sorted); err != nil {
			return exitError
		}
	}
	return exitOK
}

// environ rebuilds KEY=VALUE pairs for the color detection variables.
func environ(getenv func(string) string) []string {
	keys := []string{"TERM", "COLORTERM", "COLORFGBG", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR"}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := getenv(k); v != "" {
			out = append(out, k+"="+strings.TrimSpace(v))
		}
	}
	return out
}
