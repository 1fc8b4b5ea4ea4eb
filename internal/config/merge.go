package config

import "strings"

// resolve returns the last non-nil layer value, or def.
func resolve[T any](def T, values ...*T) T {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			result = cloneStrings(*v)
			if result == nil {
				result = []string{}
			}
		}
	}
	return result
}

func resolveTrimmed(def string, values ...*string) string {
	return strings.TrimSpace(resolve(def, values...))
}

// MergeSort applies layers in order (file, env, flags). class_regex merges
// per language so a layer can override one language without repeating the
// others.
func MergeSort(base SortSettings, layers ...SortConfig) SortSettings {
	out := base
	out.ClassRegex = make(map[string]any, len(base.ClassRegex))
	for k, v := range base.ClassRegex {
		out.ClassRegex[k] = v
	}
	out.Order = cloneStrings(base.Order)
	for _, layer := range layers {
		for lang, entry := range layer.ClassRegex {
			out.ClassRegex[lang] = entry
		}
		// order and order_file are one setting: a higher layer replaces
		// whichever form a lower layer used. Within a layer order wins.
		if layer.OrderFile != nil {
			out.OrderFile = strings.TrimSpace(*layer.OrderFile)
			out.Order = nil
		}
		if layer.Order != nil {
			out.Order = cloneStrings(*layer.Order)
			out.OrderFile = ""
		}
		out.RemoveDuplicates = resolve(out.RemoveDuplicates, layer.RemoveDuplicates)
		out.RunOnSave = resolve(out.RunOnSave, layer.RunOnSave)
	}
	return out
}

func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Paths = resolveStrings(out.Paths, layer.Paths)
		out.Excludes = resolveStrings(out.Excludes, layer.Excludes)
		out.PathRegex = resolveStrings(out.PathRegex, layer.PathRegex)
		out.ExcludeTypical = resolve(out.ExcludeTypical, layer.ExcludeTypical)
		out.Langs = resolveStrings(out.Langs, layer.Langs)
		out.MaxFileBytes = resolve(out.MaxFileBytes, layer.MaxFileBytes)
		out.Jobs = resolve(out.Jobs, layer.Jobs)
		out.Repo = resolveTrimmed(out.Repo, layer.Repo)
		out.Output = resolveTrimmed(out.Output, layer.Output)
		out.Color = resolveTrimmed(out.Color, layer.Color)
	}
	if out.Output == "" {
		out.Output = "text"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	return out
}
