package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

type Info struct {
	Name string
}

// LanguageID returns the editor language id used to pick a class regex for
// the file, or "" when the file is not a known markup/script/style type.
func LanguageID(p string, data []byte) string {
	return FromPathAndContent(p, data).Name
}

func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		return Info{Name: name}
	}
	if shebang := detectByShebang(data); shebang != "" {
		return Info{Name: shebang}
	}
	if looksLikeHTML(data) {
		return Info{Name: "html"}
	}
	return Info{Name: ""}
}

func detectByPath(p string) string {
	lowerBase := strings.ToLower(filepath.Base(p))
	if lang, ok := basenameLanguages[lowerBase]; ok {
		return lang
	}
	ext := filepath.Ext(lowerBase)
	if ext == "" {
		return ""
	}
	stem := strings.TrimSuffix(lowerBase, ext)
	if inner := filepath.Ext(stem); inner != "" {
		if lang, ok := extensionLanguages[inner+ext]; ok {
			return lang
		}
	}
	return extensionLanguages[ext]
}

func looksLikeHTML(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	sample = bytes.ToLower(bytes.TrimSpace(sample))
	return bytes.HasPrefix(sample, []byte("<!doctype html")) || bytes.HasPrefix(sample, []byte("<html"))
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for _, entry := range shebangLanguages {
		if strings.Contains(line, entry.key) {
			return entry.lang
		}
	}
	return ""
}

func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

func MatchesLang(info Info, allow []string) bool {
	if len(allow) == 0 {
		return true
	}
	detected := NormalizeLangName(info.Name)
	if detected == "" {
		return false
	}
	for _, raw := range allow {
		if NormalizeLangName(raw) == detected {
			return true
		}
	}
	return false
}

// CanonicalLangs normalizes and dedupes a language allow list, keeping the
// first occurrence order.
func CanonicalLangs(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := NormalizeLangName(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

var basenameLanguages = map[string]string{
	"index.html": "html",
	"app.vue":    "vue",
}

var extensionLanguages = map[string]string{
	".html":       "html",
	".htm":        "html",
	".xhtml":      "html",
	".shtml":      "html",
	".vue":        "vue",
	".svelte":     "svelte",
	".astro":      "astro",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".jsx":        "javascriptreact",
	".ts":         "typescript",
	".mts":        "typescript",
	".cts":        "typescript",
	".tsx":        "typescriptreact",
	".css":        "css",
	".pcss":       "postcss",
	".postcss":    "postcss",
	".scss":       "scss",
	".sass":       "sass",
	".less":       "less",
	".php":        "php",
	".blade.php":  "blade",
	".twig":       "twig",
	".html.twig":  "twig",
	".erb":        "erb",
	".html.erb":   "erb",
	".haml":       "haml",
	".slim":       "slim",
	".hbs":        "handlebars",
	".handlebars": "handlebars",
	".mustache":   "handlebars",
	".liquid":     "liquid",
	".njk":        "nunjucks",
	".cshtml":     "razor",
	".razor":      "razor",
	".heex":       "phoenix-heex",
	".leex":       "phoenix-heex",
	".templ":      "templ",
	".gohtml":     "gohtml",
	".tmpl":       "gohtml",
	".md":         "markdown",
	".markdown":   "markdown",
	".mdx":        "mdx",
	".elm":        "elm",
	".rs":         "rust",
	".clj":        "clojure",
	".cljs":       "clojure",
	".hx":         "haxe",
}

var langAliases = map[string]string{
	"htm":        "html",
	"xhtml":      "html",
	"js":         "javascript",
	"mjs":        "javascript",
	"cjs":        "javascript",
	"jsx":        "javascriptreact",
	"react":      "javascriptreact",
	"ts":         "typescript",
	"tsx":        "typescriptreact",
	"pcss":       "postcss",
	"md":         "markdown",
	"hbs":        "handlebars",
	"mustache":   "handlebars",
	"heex":       "phoenix-heex",
	"cshtml":     "razor",
	"laravel":    "blade",
	"go-html":    "gohtml",
	"gotemplate": "gohtml",
}

// ts-node has to be checked before node
var shebangLanguages = []struct {
	key  string
	lang string
}{
	{key: "ts-node", lang: "typescript"},
	{key: "tsx", lang: "typescript"},
	{key: "bun", lang: "javascript"},
	{key: "deno", lang: "javascript"},
	{key: "node", lang: "javascript"},
}
