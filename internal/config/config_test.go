package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/sortwind/internal/matcher"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func stringsPtr(values ...string) *[]string {
	copied := append([]string(nil), values...)
	return &copied
}

func TestMergeEnginePrecedence(t *testing.T) {
	base := EngineSettings{Jobs: 2, Paths: []string{"base"}, MaxFileBytes: 1024}

	fileCfg := EngineConfig{Paths: stringsPtr("file"), ExcludeTypical: boolPtr(true), Output: strPtr("json")}
	envCfg := EngineConfig{Paths: stringsPtr("env"), Langs: stringsPtr("vue")}
	flagCfg := EngineConfig{Paths: stringsPtr("flag"), Jobs: intPtr(8), Output: strPtr(" csv ")}

	merged := MergeEngine(base, fileCfg, envCfg, flagCfg)

	if !reflect.DeepEqual(merged.Paths, []string{"flag"}) {
		t.Fatalf("unexpected paths: %v", merged.Paths)
	}
	if !merged.ExcludeTypical {
		t.Fatal("expected ExcludeTypical true from file layer")
	}
	if !reflect.DeepEqual(merged.Langs, []string{"vue"}) {
		t.Fatalf("unexpected langs: %v", merged.Langs)
	}
	if merged.Jobs != 8 {
		t.Fatalf("expected Jobs 8, got %d", merged.Jobs)
	}
	if merged.MaxFileBytes != 1024 {
		t.Fatalf("expected MaxFileBytes from base, got %d", merged.MaxFileBytes)
	}
	if merged.Output != "csv" {
		t.Fatalf("expected Output csv, got %q", merged.Output)
	}
	if merged.Color != "auto" {
		t.Fatalf("expected Color auto, got %q", merged.Color)
	}
}

func TestMergeEngineEmptyListClears(t *testing.T) {
	base := EngineSettings{Excludes: []string{"vendor"}}
	merged := MergeEngine(base, EngineConfig{Excludes: stringsPtr()})
	if merged.Excludes == nil || len(merged.Excludes) != 0 {
		t.Fatalf("expected empty excludes, got %#v", merged.Excludes)
	}
	if merged.Output != "text" {
		t.Fatalf("expected Output text, got %q", merged.Output)
	}
}

func TestMergeSortClassRegexPerLanguage(t *testing.T) {
	base := DefaultSortSettings()
	fileCfg := SortConfig{ClassRegex: map[string]any{"html": `tw="([^"]*)"`}}
	flagCfg := SortConfig{RemoveDuplicates: boolPtr(false), Order: stringsPtr("flex", "p-1")}

	merged := MergeSort(base, fileCfg, flagCfg)

	if merged.ClassRegex["html"] != `tw="([^"]*)"` {
		t.Fatalf("html entry not overridden: %v", merged.ClassRegex["html"])
	}
	if merged.ClassRegex["vue"] != base.ClassRegex["vue"] {
		t.Fatal("vue entry should be inherited from defaults")
	}
	if merged.RemoveDuplicates {
		t.Fatal("expected RemoveDuplicates false after flag override")
	}
	if !reflect.DeepEqual(merged.Order, []string{"flex", "p-1"}) {
		t.Fatalf("unexpected order: %v", merged.Order)
	}
	if base.ClassRegex["html"] == `tw="([^"]*)"` {
		t.Fatal("base settings must not be mutated")
	}
}

func TestMergeSortOrderSourceFollowsLayers(t *testing.T) {
	orderFile := filepath.Join(t.TempDir(), "order.txt")
	if err := os.WriteFile(orderFile, []byte("z-10\np-1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fileCfg := SortConfig{Order: stringsPtr("p-1", "z-10")}
	flagCfg := SortConfig{OrderFile: &orderFile}

	merged, err := ResolveOrder(MergeSort(DefaultSortSettings(), fileCfg, SortConfig{}, flagCfg))
	if err != nil {
		t.Fatalf("ResolveOrder failed: %v", err)
	}
	if !reflect.DeepEqual(merged.Order, []string{"z-10", "p-1"}) {
		t.Fatalf("order_file flag should replace the file order: %v", merged.Order)
	}

	envCfg := SortConfig{Order: stringsPtr("m-2")}
	merged = MergeSort(DefaultSortSettings(), SortConfig{OrderFile: &orderFile}, envCfg)
	if merged.OrderFile != "" || !reflect.DeepEqual(merged.Order, []string{"m-2"}) {
		t.Fatalf("env order should replace the file order_file: %+v", merged)
	}

	both := MergeSort(DefaultSortSettings(), SortConfig{Order: stringsPtr("grid"), OrderFile: &orderFile})
	if !reflect.DeepEqual(both.Order, []string{"grid"}) || both.OrderFile != "" {
		t.Fatalf("order should win within one layer: %+v", both)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"SORTWIND_CLASS_REGEX":       `{"html": "tw=\"([^\"]*)\"", "vue": ["a", "b"]}`,
		"SORTWIND_ORDER":             "flex, p-1\nm-2",
		"SORTWIND_REMOVE_DUPLICATES": "no",
		"SORTWIND_RUN_ON_SAVE":       "1",
		"SORTWIND_PATH":              "src,pages",
		"SORTWIND_EXCLUDE":           "vendor,dist",
		"SORTWIND_EXCLUDE_TYPICAL":   "yes",
		"SORTWIND_LANGS":             "html,vue",
		"SORTWIND_MAX_FILE_BYTES":    "8192",
		"SORTWIND_JOBS":              "4",
		"SORTWIND_OUTPUT":            "ndjson",
		"SORTWIND_COLOR":             "never",
	}
	cfg, err := FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}
	if cfg.Sort.ClassRegex["html"] != `tw="([^"]*)"` {
		t.Fatalf("unexpected html class regex: %v", cfg.Sort.ClassRegex["html"])
	}
	if _, ok := cfg.Sort.ClassRegex["vue"].([]any); !ok {
		t.Fatalf("expected vue list, got %T", cfg.Sort.ClassRegex["vue"])
	}
	if cfg.Sort.Order == nil || !reflect.DeepEqual(*cfg.Sort.Order, []string{"flex", "p-1", "m-2"}) {
		t.Fatalf("unexpected order: %v", cfg.Sort.Order)
	}
	if cfg.Sort.RemoveDuplicates == nil || *cfg.Sort.RemoveDuplicates {
		t.Fatal("expected RemoveDuplicates false")
	}
	if cfg.Sort.RunOnSave == nil || !*cfg.Sort.RunOnSave {
		t.Fatal("expected RunOnSave true")
	}
	if cfg.Engine.Paths == nil || !reflect.DeepEqual(*cfg.Engine.Paths, []string{"src", "pages"}) {
		t.Fatalf("unexpected paths: %v", cfg.Engine.Paths)
	}
	if cfg.Engine.Excludes == nil || !reflect.DeepEqual(*cfg.Engine.Excludes, []string{"vendor", "dist"}) {
		t.Fatalf("unexpected excludes: %v", cfg.Engine.Excludes)
	}
	if cfg.Engine.ExcludeTypical == nil || !*cfg.Engine.ExcludeTypical {
		t.Fatal("expected ExcludeTypical true")
	}
	if cfg.Engine.Langs == nil || !reflect.DeepEqual(*cfg.Engine.Langs, []string{"html", "vue"}) {
		t.Fatalf("unexpected langs: %v", cfg.Engine.Langs)
	}
	if cfg.Engine.MaxFileBytes == nil || *cfg.Engine.MaxFileBytes != 8192 {
		t.Fatalf("unexpected max_file_bytes: %+v", cfg.Engine.MaxFileBytes)
	}
	if cfg.Engine.Jobs == nil || *cfg.Engine.Jobs != 4 {
		t.Fatalf("unexpected jobs: %+v", cfg.Engine.Jobs)
	}
	if cfg.Engine.Output == nil || *cfg.Engine.Output != "ndjson" {
		t.Fatalf("unexpected output: %+v", cfg.Engine.Output)
	}
	if cfg.Engine.Color == nil || *cfg.Engine.Color != "never" {
		t.Fatalf("unexpected color: %+v", cfg.Engine.Color)
	}
	if cfg.Engine.Repo != nil {
		t.Fatalf("expected Repo unset, got %q", *cfg.Engine.Repo)
	}
}

func TestFromEnvCollectsErrors(t *testing.T) {
	env := map[string]string{
		"SORTWIND_CLASS_REGEX":       `["not", "an", "object"]`,
		"SORTWIND_REMOVE_DUPLICATES": "maybe",
		"SORTWIND_JOBS":              "many",
	}
	_, err := FromEnv(func(key string) string { return env[key] })
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"SORTWIND_CLASS_REGEX", "SORTWIND_REMOVE_DUPLICATES", "SORTWIND_JOBS"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q should mention %s", err, key)
		}
	}
}

func TestLoadConfigFormats(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		".yaml": "sort:\n  class_regex:\n    html: 'tw=\"([^\"]*)\"'\n  remove_duplicates: false\nengine:\n  jobs: 3\n  exclude: [vendor]\n",
		".toml": "[sort]\nremove_duplicates = false\n[sort.class_regex]\nhtml = 'tw=\"([^\"]*)\"'\n[engine]\njobs = 3\nexclude = [\"vendor\"]\n",
		".json": "{\n  \"sortwind.classRegex\": {\"html\": \"tw=\\\"([^\\\"]*)\\\"\"},\n  \"sortwind.removeDuplicates\": false,\n  \"engine\": {\"jobs\": 3, \"exclude\": \"vendor\"}\n}\n",
	}

	for ext, content := range cases {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "config"+ext)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got := cfg.Sort.ClassRegex["html"]; got != `tw="([^"]*)"` {
				t.Fatalf("html class regex mismatch: %v", got)
			}
			if cfg.Sort.RemoveDuplicates == nil || *cfg.Sort.RemoveDuplicates {
				t.Fatal("remove_duplicates should be false")
			}
			if cfg.Engine.Jobs == nil || *cfg.Engine.Jobs != 3 {
				t.Fatalf("jobs mismatch: %+v", cfg.Engine.Jobs)
			}
			if cfg.Engine.Excludes == nil || !reflect.DeepEqual(*cfg.Engine.Excludes, []string{"vendor"}) {
				t.Fatalf("exclude mismatch: %v", cfg.Engine.Excludes)
			}
			if len(cfg.Warnings) != 0 {
				t.Fatalf("unexpected warnings: %v", cfg.Warnings)
			}
		})
	}
}

func TestLoadMalformedOrderWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sortwind.yaml")
	content := "order: 12\nremove_duplicates: sometimes\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sort.Order != nil {
		t.Fatalf("malformed order should be dropped, got %v", *cfg.Sort.Order)
	}
	if cfg.Sort.RemoveDuplicates != nil {
		t.Fatal("malformed remove_duplicates should be dropped")
	}
	if len(cfg.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", cfg.Warnings)
	}
	for _, w := range cfg.Warnings {
		if !strings.HasPrefix(w, path+": ") {
			t.Fatalf("warning should carry the file path: %q", w)
		}
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("colour: always\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadRejectsClassRegexList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("class_regex: [a, b]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-table class_regex")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFindWalksUpAndFallsBackToXDG(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "a", ".sortwind.toml")
	if err := os.WriteFile(want, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, source, err := Find(nested, "", filepath.Join(root, "xdg"), filepath.Join(root, "home"))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got != want || source != "cwd-up" {
		t.Fatalf("expected %s (cwd-up), got %s (%s)", want, got, source)
	}

	other := t.TempDir()
	xdg := filepath.Join(other, "xdg")
	if err := os.MkdirAll(filepath.Join(xdg, "sortwind"), 0o755); err != nil {
		t.Fatal(err)
	}
	xdgFile := filepath.Join(xdg, "sortwind", "config.yaml")
	if err := os.WriteFile(xdgFile, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, source, err = Find(filepath.Join(other, "repo-missing-config"), "", xdg, filepath.Join(other, "home"))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got != xdgFile || source != "xdg" {
		t.Fatalf("expected %s (xdg), got %s (%s)", xdgFile, got, source)
	}
}

func TestFindExplicitDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Find(dir, dir, "", ""); err == nil {
		t.Fatal("expected error when SORTWIND_CONFIG names a directory")
	}
}

func TestValidateClassRegex(t *testing.T) {
	if err := ValidateClassRegex(DefaultSortSettings().ClassRegex); err != nil {
		t.Fatalf("default class regexes should compile: %v", err)
	}
	err := ValidateClassRegex(map[string]any{"html": "class=\"([^\"]*\""})
	var pce *matcher.PatternCompilationError
	if !errors.As(err, &pce) {
		t.Fatalf("expected PatternCompilationError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"html"`) {
		t.Fatalf("error should name the language: %v", err)
	}
}

func TestResolveOrderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.txt")
	if err := os.WriteFile(path, []byte("# layout\nflex\np-1 m-2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := ResolveOrder(SortSettings{OrderFile: path})
	if err != nil {
		t.Fatalf("ResolveOrder failed: %v", err)
	}
	if !reflect.DeepEqual(s.Order, []string{"flex", "p-1", "m-2"}) {
		t.Fatalf("unexpected order: %v", s.Order)
	}

	explicit, err := ResolveOrder(SortSettings{Order: []string{"grid"}, OrderFile: path})
	if err != nil || !reflect.DeepEqual(explicit.Order, []string{"grid"}) {
		t.Fatalf("explicit order should win: %v %v", explicit.Order, err)
	}

	if _, err := ResolveOrder(SortSettings{OrderFile: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatal("expected error for missing order file")
	}
}

func TestSortSettingsRewriteCopies(t *testing.T) {
	s := SortSettings{ClassRegex: map[string]any{"html": "x"}, Order: []string{"flex"}, RemoveDuplicates: true}
	r := s.Rewrite()
	r.ClassRegex["html"] = "y"
	r.Order[0] = "grid"
	if s.ClassRegex["html"] != "x" || s.Order[0] != "flex" {
		t.Fatal("Rewrite must copy its inputs")
	}
	if !r.RemoveDuplicates {
		t.Fatal("RemoveDuplicates not carried")
	}
}
