package detect

import "testing"

func TestLanguageIDByExtension(t *testing.T) {
	cases := map[string]string{
		"web/index.html":               "html",
		"src/App.VUE":                  "vue",
		"src/routes/+page.svelte":      "svelte",
		"src/Button.tsx":               "typescriptreact",
		"src/Button.jsx":               "javascriptreact",
		"styles/site.scss":             "scss",
		"resources/views/a.blade.php":  "blade",
		"templates/page.html.twig":     "twig",
		"app/views/show.html.erb":      "erb",
		"lib/web/components.html.heex": "phoenix-heex",
		"main.go":                      "",
		"README":                       "",
	}
	for path, want := range cases {
		if got := LanguageID(path, nil); got != want {
			t.Fatalf("LanguageID(%q)=%q want %q", path, got, want)
		}
	}
}

func TestLanguageIDByContent(t *testing.T) {
	if got := LanguageID("bin/build", []byte("#!/usr/bin/env node\nconsole.log(1)\n")); got != "javascript" {
		t.Fatalf("node shebang detected as %q", got)
	}
	if got := LanguageID("bin/gen", []byte("#!/usr/bin/env ts-node\n")); got != "typescript" {
		t.Fatalf("ts-node shebang detected as %q", got)
	}
	if got := LanguageID("page", []byte("\n<!DOCTYPE html>\n<html></html>")); got != "html" {
		t.Fatalf("doctype detected as %q", got)
	}
	if got := LanguageID("notes", []byte("plain text")); got != "" {
		t.Fatalf("plain text detected as %q", got)
	}
}

func TestNormalizeLangNameAliases(t *testing.T) {
	cases := map[string]string{
		"JSX":  "javascriptreact",
		"Ts":   "typescript",
		"htm":  "html",
		"HBS":  "handlebars",
		"vue":  "vue",
		" md ": "markdown",
	}
	for input, want := range cases {
		if got := NormalizeLangName(input); got != want {
			t.Fatalf("NormalizeLangName(%q)=%q want %q", input, got, want)
		}
	}
}

func TestCanonicalLangsDedupes(t *testing.T) {
	got := CanonicalLangs([]string{" jsx ", "TSX", "javascriptreact", "", "html"})
	want := []string{"javascriptreact", "typescriptreact", "html"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value mismatch at %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestMatchesLang(t *testing.T) {
	info := Info{Name: "typescriptreact"}
	if !MatchesLang(info, nil) {
		t.Fatal("empty allow list should match everything")
	}
	if !MatchesLang(info, []string{"html", "tsx"}) {
		t.Fatal("alias should match")
	}
	if MatchesLang(info, []string{"vue"}) {
		t.Fatal("vue should not match tsx")
	}
	if MatchesLang(Info{}, []string{"html"}) {
		t.Fatal("unknown language should not match a non-empty allow list")
	}
}
