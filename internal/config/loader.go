package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/sortwind/internal/engine/opts"
	"github.com/phyten/sortwind/internal/order"
)

// vscodePrefix is the namespace the editor extension stores its settings in.
const vscodePrefix = "sortwind."

var sortKeyMap = map[string]string{
	"class_regex":       "class_regex",
	"classregex":        "class_regex",
	"order":             "order",
	"sort_order":        "order",
	"order_file":        "order_file",
	"orderfile":         "order_file",
	"remove_duplicates": "remove_duplicates",
	"removeduplicates":  "remove_duplicates",
	"run_on_save":       "run_on_save",
	"runonsave":         "run_on_save",
}

var engineKeyMap = map[string]string{
	"path":            "path",
	"paths":           "path",
	"exclude":         "exclude",
	"excludes":        "exclude",
	"exclude_typical": "exclude_typical",
	"path_regex":      "path_regex",
	"langs":           "langs",
	"lang":            "langs",
	"languages":       "langs",
	"max_file_bytes":  "max_file_bytes",
	"max_bytes":       "max_file_bytes",
	"jobs":            "jobs",
	"repo":            "repo",
	"output":          "output",
	"color":           "color",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	raw, err := decodeFile(path, data)
	if err != nil {
		return cfg, err
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	for i, w := range decoded.Warnings {
		decoded.Warnings[i] = path + ": " + w
	}
	return decoded, nil
}

func decodeFile(path string, data []byte) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return raw, nil
}

// decodeConfigMap routes keys into the sort and engine sections. Keys may sit
// at the top level, inside a "sort"/"sortwind"/"engine" table, or carry the
// editor's "sortwind." prefix.
func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	sortSection := make(map[string]any)
	engineSection := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "sort", "sortwind":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", key, err)
			}
			if err := fillSection(sortSection, sub, sortKeyMap, "sort"); err != nil {
				return cfg, err
			}
		case "engine":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("engine: %w", err)
			}
			if err := fillSection(engineSection, sub, engineKeyMap, "engine"); err != nil {
				return cfg, err
			}
		default:
			norm = strings.TrimPrefix(norm, vscodePrefix)
			if canonical, ok := sortKeyMap[norm]; ok {
				sortSection[canonical] = value
				continue
			}
			if canonical, ok := engineKeyMap[norm]; ok {
				engineSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	warnings, err := assignSort(sortSection, &cfg.Sort)
	if err != nil {
		return cfg, fmt.Errorf("sort: %w", err)
	}
	cfg.Warnings = warnings
	if err := assignEngine(engineSection, &cfg.Engine); err != nil {
		return cfg, fmt.Errorf("engine: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[strings.TrimPrefix(normalizeKey(key), vscodePrefix)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

// assignSort rejects only a class_regex that is not a table. A malformed
// order or flag is dropped with a warning so the defaults stay in effect.
func assignSort(section map[string]any, dst *SortConfig) ([]string, error) {
	var warnings []string
	for key, value := range section {
		switch key {
		case "class_regex":
			m, err := toStringKeyMap(value)
			if err != nil {
				return warnings, fmt.Errorf("class_regex: %w", err)
			}
			dst.ClassRegex = make(map[string]any, len(m))
			for lang, entry := range m {
				dst.ClassRegex[strings.TrimSpace(lang)] = entry
			}
		case "order":
			list, ok := order.Resolve(value)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("order: expected a list of strings, got %T; using the default order", value))
				continue
			}
			dst.Order = &list
		case "order_file":
			str, err := expectString(value, key)
			if err != nil {
				return warnings, err
			}
			trimmed := strings.TrimSpace(str)
			dst.OrderFile = &trimmed
		case "remove_duplicates":
			b, err := expectBool(value, key)
			if err != nil {
				warnings = append(warnings, err.Error()+"; using the default")
				continue
			}
			dst.RemoveDuplicates = &b
		case "run_on_save":
			b, err := expectBool(value, key)
			if err != nil {
				warnings = append(warnings, err.Error()+"; using the default")
				continue
			}
			dst.RunOnSave = &b
		default:
			return warnings, fmt.Errorf("unknown key: %s", key)
		}
	}
	return warnings, nil
}

func assignEngine(section map[string]any, dst *EngineConfig) error {
	for key, value := range section {
		switch key {
		case "path", "exclude", "path_regex", "langs":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			switch key {
			case "path":
				dst.Paths = &list
			case "exclude":
				dst.Excludes = &list
			case "path_regex":
				dst.PathRegex = &list
			default:
				dst.Langs = &list
			}
		case "exclude_typical":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.ExcludeTypical = &b
		case "max_file_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		case "repo", "output", "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			switch key {
			case "repo":
				dst.Repo = &trimmed
			case "output":
				dst.Output = &trimmed
			default:
				dst.Color = &trimmed
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return engineopts.SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
