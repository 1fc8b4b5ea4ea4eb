package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	engineopts "github.com/phyten/sortwind/internal/engine/opts"
	"github.com/phyten/sortwind/internal/order"
)

// FromEnv reads SORTWIND_* variables. SORTWIND_CLASS_REGEX holds a JSON
// object keyed by language id; SORTWIND_ORDER is a comma/space separated list.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(key string) (string, bool) {
		raw := strings.TrimSpace(getenv(key))
		return raw, raw != ""
	}
	setString := func(target **string, key string) {
		if raw, ok := lookup(key); ok {
			*target = &raw
		}
	}
	setList := func(target **[]string, key string) {
		if raw, ok := lookup(key); ok {
			list := engineopts.SplitMulti([]string{raw})
			if list == nil {
				list = []string{}
			}
			*target = &list
		}
	}
	setBool := func(target **bool, key string) {
		raw, ok := lookup(key)
		if !ok {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, key string, min, max int) {
		raw, ok := lookup(key)
		if !ok {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	if raw, ok := lookup("SORTWIND_CLASS_REGEX"); ok {
		var m map[string]any
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			errs = append(errs, fmt.Errorf("SORTWIND_CLASS_REGEX: %w", err))
		} else {
			cfg.Sort.ClassRegex = m
		}
	}
	if raw, ok := lookup("SORTWIND_ORDER"); ok {
		list := order.Parse(raw)
		cfg.Sort.Order = &list
	}
	setString(&cfg.Sort.OrderFile, "SORTWIND_ORDER_FILE")
	setBool(&cfg.Sort.RemoveDuplicates, "SORTWIND_REMOVE_DUPLICATES")
	setBool(&cfg.Sort.RunOnSave, "SORTWIND_RUN_ON_SAVE")

	setList(&cfg.Engine.Paths, "SORTWIND_PATH")
	setList(&cfg.Engine.Excludes, "SORTWIND_EXCLUDE")
	setList(&cfg.Engine.PathRegex, "SORTWIND_PATH_REGEX")
	setBool(&cfg.Engine.ExcludeTypical, "SORTWIND_EXCLUDE_TYPICAL")
	setList(&cfg.Engine.Langs, "SORTWIND_LANGS")
	setInt(&cfg.Engine.MaxFileBytes, "SORTWIND_MAX_FILE_BYTES", 0, math.MaxInt)
	// upper bound is enforced by NormalizeAndValidate
	setInt(&cfg.Engine.Jobs, "SORTWIND_JOBS", 0, math.MaxInt)
	setString(&cfg.Engine.Repo, "SORTWIND_REPO")
	setString(&cfg.Engine.Output, "SORTWIND_OUTPUT")
	setString(&cfg.Engine.Color, "SORTWIND_COLOR")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
