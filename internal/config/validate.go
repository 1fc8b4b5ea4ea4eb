package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/phyten/sortwind/internal/matcher"
	"github.com/phyten/sortwind/internal/order"
)

// ValidateClassRegex compiles every configured language entry so a broken
// pattern is reported before any file is touched.
func ValidateClassRegex(classRegex map[string]any) error {
	langs := make([]string, 0, len(classRegex))
	for lang := range classRegex {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	var errs []error
	for _, lang := range langs {
		if _, err := matcher.Compile(matcher.Decode(classRegex[lang])); err != nil {
			errs = append(errs, fmt.Errorf("class_regex %q: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}

// ResolveOrder loads OrderFile when set. An explicit Order wins over the file.
func ResolveOrder(s SortSettings) (SortSettings, error) {
	if s.Order != nil || s.OrderFile == "" {
		return s, nil
	}
	data, err := os.ReadFile(s.OrderFile)
	if err != nil {
		return s, fmt.Errorf("order_file: %w", err)
	}
	s.Order = order.Parse(string(data))
	return s, nil
}
