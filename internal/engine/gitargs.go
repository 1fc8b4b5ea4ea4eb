package engine

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// typicalExcludeDirs are build output and dependency directories that never
// hold hand-written markup.
var typicalExcludeDirs = []string{
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"coverage",
	".next",
	".nuxt",
	".svelte-kit",
	".output",
}

const minifiedGlob = "*.min.*"

func typicalExcludePathspecs() []string {
	out := make([]string, 0, len(typicalExcludeDirs)+1)
	for _, dir := range typicalExcludeDirs {
		out = append(out, ":(glob,exclude)**/"+dir+"/**")
	}
	return append(out, ":(glob,exclude)**/"+minifiedGlob)
}

// buildLsFilesArgs builds the `git ls-files` argument list.
func buildLsFilesArgs(includes, excludes []string, typical bool) []string {
	args := []string{"-c", "core.quotePath=false", "ls-files", "-z", "--cached", "--others", "--exclude-standard", "--"}
	return append(args, buildPathspecs(includes, excludes, typical)...)
}

// buildPathspecs builds the list to append after "--" for `git ls-files`.
func buildPathspecs(includes, excludes []string, typical bool) []string {
	out := make([]string, 0, len(includes)+len(excludes)+len(typicalExcludeDirs)+2)
	for _, raw := range includes {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			out = append(out, filepath.ToSlash(trimmed))
		}
	}
	if len(out) == 0 {
		out = append(out, ".")
	}
	if typical {
		out = append(out, typicalExcludePathspecs()...)
	}
	for _, raw := range excludes {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		trimmed = filepath.ToSlash(trimmed)
		if strings.HasPrefix(trimmed, ":!") || strings.HasPrefix(trimmed, ":(exclude)") || strings.HasPrefix(trimmed, ":(glob,exclude)") {
			out = append(out, trimmed)
			continue
		}
		out = append(out, ":(glob,exclude)"+trimmed)
	}
	return out
}

// pathFilter mirrors the pathspecs for the directory walk fallback. Patterns
// match either the whole slash-separated path or any leading directory of it.
type pathFilter struct {
	includes []string
	excludes []string
	typical  bool
}

func newPathFilter(includes, excludes []string, typical bool) pathFilter {
	clean := func(in []string) []string {
		var out []string
		for _, raw := range in {
			p := strings.TrimSpace(filepath.ToSlash(raw))
			p = strings.TrimPrefix(p, "./")
			p = strings.TrimSuffix(p, "/")
			if p == "" || p == "." {
				continue
			}
			for _, prefix := range []string{":(glob,exclude)", ":(exclude)", ":!"} {
				p = strings.TrimPrefix(p, prefix)
			}
			p = strings.TrimSuffix(p, "/**")
			out = append(out, p)
		}
		return out
	}
	return pathFilter{includes: clean(includes), excludes: clean(excludes), typical: typical}
}

// skipDir reports whether the walk should not descend into rel.
func (f pathFilter) skipDir(rel string) bool {
	base := path.Base(rel)
	if base == ".git" {
		return true
	}
	if f.typical {
		for _, dir := range typicalExcludeDirs {
			if base == dir {
				return true
			}
		}
	}
	return matchAny(f.excludes, rel)
}

func (f pathFilter) keepFile(rel string) bool {
	if f.typical {
		if ok, _ := path.Match(minifiedGlob, path.Base(rel)); ok {
			return false
		}
	}
	if matchAny(f.excludes, rel) {
		return false
	}
	return len(f.includes) == 0 || matchAny(f.includes, rel)
}

// matchAny tests rel and each of its parent directories. A pattern without
// a slash is also tried against the last element alone.
func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		baseOnly := !strings.Contains(p, "/")
		for cur := rel; cur != "." && cur != "/" && cur != ""; cur = path.Dir(cur) {
			if ok, _ := path.Match(p, cur); ok {
				return true
			}
			if baseOnly {
				if ok, _ := path.Match(p, path.Base(cur)); ok {
					return true
				}
			}
		}
	}
	return false
}

// CompilePathRegex compiles --path-regex values; empty entries are ignored.
func CompilePathRegex(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, raw := range patterns {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		rx, err := regexp.Compile(trimmed)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rx)
	}
	return compiled, nil
}

func filterByPathRegex(files []string, rx []*regexp.Regexp) []string {
	if len(rx) == 0 {
		return files
	}
	out := files[:0]
	for _, f := range files {
		for _, r := range rx {
			if r.MatchString(f) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
