// Package match implements the label matching policy used to bind header
// columns to field descriptors.
package match

import "strings"

// NormalizeLabel normalizes a header label or field name for matching.
// The normalization pipeline:
// 1. Strip underscore characters.
// 2. Case-fold to lower.
//
// Matching is therefore case- and underscore-insensitive and nothing else:
// no camel-case tokenization, no partial or fuzzy matching. "First_Name",
// "firstname" and "FIRSTNAME" all normalize to "firstname".
func NormalizeLabel(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if r != '_' {
			result.WriteRune(r)
		}
	}

	return strings.ToLower(result.String())
}
