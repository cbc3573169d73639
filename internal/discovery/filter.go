package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters testcase ids by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters ids by name pattern using wildcard matching.
// Supports patterns like "t1*" or "*edge*"; a pattern without wildcards
// matches any id containing it.
func (f *Filter) FilterByName(ids []string, pattern string) []string {
	if pattern == "" {
		return ids
	}

	var filtered []string

	for _, id := range ids {
		// filepath.Match handles * and ? wildcards
		matched, err := filepath.Match(pattern, id)
		if err == nil && matched {
			filtered = append(filtered, id)
			continue
		}

		if strings.Contains(pattern, "*") {
			if matchParts(id, strings.Split(pattern, "*")) {
				filtered = append(filtered, id)
			}
			continue
		}

		if !strings.Contains(pattern, "?") && strings.Contains(id, pattern) {
			filtered = append(filtered, id)
		}
	}

	return filtered
}

// matchParts reports whether every non-empty part occurs in name, and at least one part is non-empty
func matchParts(name string, parts []string) bool {
	hasNonEmptyPart := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmptyPart
}
