package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/sortwind/internal/detect"
	"github.com/phyten/sortwind/internal/execx"
	"github.com/phyten/sortwind/internal/model"
	"github.com/phyten/sortwind/internal/progress"
	"github.com/phyten/sortwind/internal/rewrite"
)

// sniffLen は NUL バイトを探してバイナリ判定する先頭バイト数
const sniffLen = 8000

// errNotRepository は git が使えずディレクトリ走査に切り替えるべきことを示す
var errNotRepository = errors.New("not a git repository")

type fileResult struct {
	items   []Item
	err     *ItemError
	known   bool
	changed bool
}

// Run は指定されたオプションに従ってファイルを列挙し、各ファイルのクラス文字列を並べ替えます。
//
// 変化したクラス文字列ごとに Item を返し、ファイル単位の失敗は Result.Errors に集約されます。
// 設定されたパターンが不正な場合やファイル一覧の取得に失敗した場合のみエラーを返します。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if strings.TrimSpace(opts.RepoDir) == "" {
		opts.RepoDir = "."
	}
	if opts.Runner == nil {
		opts.Runner = execx.DefaultRunner()
	}

	rw := rewrite.New(opts.Sort)
	// 壊れたパターンはファイルに触れる前に報告する
	for _, lang := range append(rw.Languages(), rewrite.DefaultLanguage) {
		if _, err := rw.Matchers(lang); err != nil {
			return nil, err
		}
	}

	observer := opts.ProgressObserver
	if observer == nil && opts.Progress {
		observer = progress.NewAutoObserver(nil)
	}
	if observer == nil {
		observer = progress.NoopObserver{}
	}
	est := progress.NewEstimator(-1, progress.Config{})

	files, err := listFiles(ctx, opts)
	if err != nil {
		return nil, err
	}
	files = filterByPathRegex(files, opts.PathRegexCompiled)
	snap, _ := est.Stage(progress.StageRewrite, len(files))
	observer.Publish(snap)

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := processFile(gctx, rw, opts, rel)
			if err != nil {
				return err
			}
			results[i] = res
			est.AdvancePublish(1, observer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observer.Done(est.Snapshot())
		return nil, err
	}
	observer.Done(est.Complete())

	out := &Result{Written: opts.Write}
	for i, res := range results {
		if res.known {
			out.Files++
		}
		if res.changed {
			out.ChangedFiles = append(out.ChangedFiles, files[i])
		}
		out.Items = append(out.Items, res.items...)
		if res.err != nil {
			out.Errors = append(out.Errors, *res.err)
		}
	}

	sort.SliceStable(out.Items, func(i, j int) bool {
		if out.Items[i].File == out.Items[j].File {
			return out.Items[i].Span.ByteStart < out.Items[j].Span.ByteStart
		}
		return out.Items[i].File < out.Items[j].File
	})
	sort.Strings(out.ChangedFiles)
	sort.Slice(out.Errors, func(i, j int) bool {
		if out.Errors[i].File == out.Errors[j].File {
			return out.Errors[i].Stage < out.Errors[j].Stage
		}
		return out.Errors[i].File < out.Errors[j].File
	})
	out.Total = len(out.Items)
	out.ErrorCount = len(out.Errors)
	out.ElapsedMS = msSince(start)
	return out, nil
}

// processFile が error を返すのはキャンセル時だけで、それ以外の失敗は fileResult.err に入れる
func processFile(ctx context.Context, rw *rewrite.Rewriter, opts Options, rel string) (fileResult, error) {
	var res fileResult
	abs := filepath.Join(opts.RepoDir, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// 削除済みだが index に残っているファイル
			return res, nil
		}
		res.err = newItemError(rel, StageRead, err)
		return res, nil
	}
	if !info.Mode().IsRegular() {
		return res, nil
	}
	if opts.MaxFileBytes > 0 && info.Size() > int64(opts.MaxFileBytes) {
		return res, nil
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		res.err = newItemError(rel, StageRead, err)
		return res, nil
	}
	if isBinary(data) || !utf8.Valid(data) {
		return res, nil
	}
	lang := detect.FromPathAndContent(rel, data)
	if lang.Name == "" || !detect.MatchesLang(lang, opts.Langs) {
		return res, nil
	}
	res.known = true

	text := string(data)
	edits, err := rw.Edits(ctx, text, lang.Name)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		res.err = newItemError(rel, StageRewrite, err)
		return res, nil
	}
	edits = rewrite.Changed(text, edits)
	if len(edits) == 0 {
		return res, nil
	}
	updated, err := rewrite.Apply(text, edits)
	if err != nil {
		res.err = newItemError(rel, StageRewrite, err)
		return res, nil
	}

	index := model.NewLineIndex(data)
	res.items = make([]Item, 0, len(edits))
	for _, e := range edits {
		span := index.Span(e.Offset, e.Length)
		res.items = append(res.items, Item{
			File:   rel,
			Lang:   lang.Name,
			Line:   span.StartLine,
			Span:   span,
			Before: text[e.Offset:e.End()],
			After:  e.Text,
		})
	}
	res.changed = updated != text

	if opts.Write && res.changed {
		// 既存ファイルへの WriteFile はパーミッションを変えない
		if err := os.WriteFile(abs, []byte(updated), info.Mode().Perm()); err != nil {
			res.err = newItemError(rel, StageWrite, err)
		}
	}
	return res, nil
}

func isBinary(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return bytes.IndexByte(head, 0) >= 0
}

func newItemError(file, stage string, err error) *ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &ItemError{File: file, Stage: stage, Message: msg}
}

// listFiles は git ls-files で候補を列挙し、git が無いかリポジトリ外ならディレクトリを走査する
func listFiles(ctx context.Context, opts Options) ([]string, error) {
	files, err := gitLsFiles(ctx, opts)
	if errors.Is(err, errNotRepository) {
		return walkFiles(ctx, opts)
	}
	return files, err
}

func gitLsFiles(ctx context.Context, opts Options) ([]string, error) {
	args := buildLsFilesArgs(opts.Paths, opts.Excludes, opts.ExcludeTypical)
	stdout, stderr, err := opts.Runner.Run(ctx, opts.RepoDir, "git", args...)
	if err != nil {
		if execx.IsNotFound(err) || execx.ExitCode(err) == 128 {
			return nil, errNotRepository
		}
		return nil, execx.Describe("git ls-files", err, stderr)
	}
	seen := make(map[string]struct{})
	var files []string
	for _, raw := range bytes.Split(stdout, []byte{0}) {
		if len(raw) == 0 {
			continue
		}
		rel := filepath.ToSlash(string(raw))
		if _, dup := seen[rel]; dup {
			continue
		}
		seen[rel] = struct{}{}
		files = append(files, rel)
	}
	sort.Strings(files)
	return files, nil
}

func walkFiles(ctx context.Context, opts Options) ([]string, error) {
	filter := newPathFilter(opts.Paths, opts.Excludes, opts.ExcludeTypical)
	var files []string
	err := filepath.WalkDir(opts.RepoDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(opts.RepoDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if filter.skipDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && filter.keepFile(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", opts.RepoDir, err)
	}
	sort.Strings(files)
	return files, nil
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
