// Package strings provides string slice utilities shared by the cleaners'
// configuration tables.
package strings

import (
	"strings"
)

// DedupeAndTrimLower lowercases every element, trims whitespace, and
// removes duplicates and empty strings. Order is preserved. Used to keep
// alias tables free of case-variant duplicates.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  BC ", "bc", "British Columbia", ""})
//	// Returns: []string{"bc", "british columbia"}
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
