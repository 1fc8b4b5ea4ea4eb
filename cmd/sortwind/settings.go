package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/phyten/sortwind/internal/config"
	engineopts "github.com/phyten/sortwind/internal/engine/opts"
)

type settings struct {
	Sort       config.SortSettings
	Engine     config.EngineSettings
	ConfigPath string
	// ConfigSource is "explicit", "cwd-up", "xdg", "home" or empty.
	ConfigSource string
}

// loadSettings layers defaults, the config file, SORTWIND_* variables and
// flags, in that order, and validates the class regexes.
func loadSettings(flags config.Config, explicitConfig string, getenv func(string) string, logger *log.Logger) (settings, error) {
	var out settings
	repo := "."
	if flags.Engine.Repo != nil && strings.TrimSpace(*flags.Engine.Repo) != "" {
		repo = *flags.Engine.Repo
	}
	if explicitConfig == "" {
		explicitConfig = getenv("SORTWIND_CONFIG")
	}
	path, source, err := config.Find(repo, explicitConfig, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return out, fmt.Errorf("config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return out, err
	}
	for _, w := range fileCfg.Warnings {
		logger.Printf("warning: %s", w)
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return out, err
	}

	// order_file in a config file is relative to that file
	if fileCfg.Sort.OrderFile != nil && path != "" {
		if rel := strings.TrimSpace(*fileCfg.Sort.OrderFile); rel != "" && !filepath.IsAbs(rel) {
			abs := filepath.Join(filepath.Dir(path), rel)
			fileCfg.Sort.OrderFile = &abs
		}
	}

	sortSettings := config.MergeSort(config.DefaultSortSettings(), fileCfg.Sort, envCfg.Sort, flags.Sort)
	sortSettings, err = config.ResolveOrder(sortSettings)
	if err != nil {
		return out, err
	}
	if err := config.ValidateClassRegex(sortSettings.ClassRegex); err != nil {
		return out, err
	}

	base := config.EngineSettingsFromOptions(engineopts.Defaults(repo))
	out = settings{
		Sort:         sortSettings,
		Engine:       config.MergeEngine(base, fileCfg.Engine, envCfg.Engine, flags.Engine),
		ConfigPath:   path,
		ConfigSource: source,
	}
	return out, nil
}
