package search

import (
	"regexp"

	"github.com/harrison/sift/internal/models"
)

// Filter keeps the entries whose basename contains a match for pattern.
//
// The pattern is compiled as (?:pattern) and searched unanchored, so "txt"
// matches "a.txt" and an empty pattern matches everything. Input order is
// preserved. An empty entries slice returns immediately without compiling
// the pattern: an invalid pattern that never has to match anything is not
// reported.
func Filter(entries []models.Entry, pattern string) ([]models.Entry, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		if re.MatchString(entry.Name()) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// CompilePattern compiles pattern wrapped in a non-capturing group.
// A compile failure is returned as a *ConfigError.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?:" + pattern + ")")
	if err != nil {
		return nil, &ConfigError{Field: FlagRegex, Value: pattern, Err: err}
	}
	return re, nil
}
