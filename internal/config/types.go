package config

import (
	"maps"
	"strings"

	"github.com/phyten/sortwind/internal/engine"
	"github.com/phyten/sortwind/internal/rewrite"
)

// SortConfig is one layer of sort settings. Nil fields are unset.
type SortConfig struct {
	// ClassRegex holds raw per-language entries; a layer overrides only the
	// languages it names.
	ClassRegex       map[string]any `yaml:"class_regex" toml:"class_regex" json:"class_regex"`
	Order            *[]string      `yaml:"order" toml:"order" json:"order"`
	OrderFile        *string        `yaml:"order_file" toml:"order_file" json:"order_file"`
	RemoveDuplicates *bool          `yaml:"remove_duplicates" toml:"remove_duplicates" json:"remove_duplicates"`
	RunOnSave        *bool          `yaml:"run_on_save" toml:"run_on_save" json:"run_on_save"`
}

type EngineConfig struct {
	Paths          *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	PathRegex      *[]string `yaml:"path_regex" toml:"path_regex" json:"path_regex"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Langs          *[]string `yaml:"langs" toml:"langs" json:"langs"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	Repo           *string   `yaml:"repo" toml:"repo" json:"repo"`
	Output         *string   `yaml:"output" toml:"output" json:"output"`
	Color          *string   `yaml:"color" toml:"color" json:"color"`
}

type Config struct {
	Sort   SortConfig   `yaml:"sort" toml:"sort" json:"sort"`
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	// Warnings lists values that were ignored instead of rejected.
	Warnings []string `yaml:"-" toml:"-" json:"-"`
}

type SortSettings struct {
	ClassRegex map[string]any
	// Order is nil when the built-in order applies.
	Order            []string
	OrderFile        string
	RemoveDuplicates bool
	RunOnSave        bool
}

type EngineSettings struct {
	Paths          []string
	Excludes       []string
	PathRegex      []string
	ExcludeTypical bool
	Langs          []string
	MaxFileBytes   int
	Jobs           int
	Repo           string
	Output         string
	Color          string
}

// Rewrite converts the merged settings into the rewriter's input.
func (s SortSettings) Rewrite() rewrite.Settings {
	return rewrite.Settings{
		ClassRegex:       maps.Clone(s.ClassRegex),
		Order:            cloneStrings(s.Order),
		RemoveDuplicates: s.RemoveDuplicates,
	}
}

// DefaultSortSettings returns the built-in class regexes and flags.
func DefaultSortSettings() SortSettings {
	return SortSettings{
		ClassRegex:       defaultClassRegex(),
		RemoveDuplicates: true,
		RunOnSave:        false,
	}
}

func defaultClassRegex() map[string]any {
	markup := `\bclass\s*=\s*["']([^"']*)["']`
	script := []any{
		`\bclass(?:Name)?\s*=\s*["'` + "`" + `]([^"'` + "`" + `]*)["'` + "`" + `]`,
		[]any{
			`\b(?:clsx|cn|classnames|twMerge|twJoin)\(([^)]*)\)`,
			`["'` + "`" + `]([^"'` + "`" + `]*)["'` + "`" + `]`,
		},
	}
	apply := `@apply\s+([^;}!]+?)\s*(?:!important\s*)?[;}]`
	return map[string]any{
		"html":            markup,
		"vue":             markup,
		"svelte":          `\bclass\s*=\s*["']([^"'{}]*)["']`,
		"astro":           markup,
		"javascript":      script,
		"javascriptreact": script,
		"typescript":      script,
		"typescriptreact": script,
		"css":             apply,
		"scss":            apply,
		"less":            apply,
		"postcss":         apply,
	}
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Paths:          cloneStrings(opts.Paths),
		Excludes:       cloneStrings(opts.Excludes),
		PathRegex:      cloneStrings(opts.PathRegex),
		ExcludeTypical: opts.ExcludeTypical,
		Langs:          cloneStrings(opts.Langs),
		MaxFileBytes:   opts.MaxFileBytes,
		Jobs:           opts.Jobs,
		Repo:           opts.RepoDir,
		Output:         "text",
		Color:          "auto",
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Paths = cloneStrings(s.Paths)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.PathRegex = cloneStrings(s.PathRegex)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.Langs = cloneStrings(s.Langs)
	opts.MaxFileBytes = s.MaxFileBytes
	opts.Jobs = s.Jobs
	if trimmed := strings.TrimSpace(s.Repo); trimmed != "" {
		opts.RepoDir = trimmed
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
