// Package shared holds small domain helpers used across aggregates.
package shared

import "strings"

// NormalizeName canonicalizes an ingredient, recipe, or unit name for
// storage and lookup: trimmed, lower-cased, underscores read as spaces.
// All matching in the system is done on normalized names.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToLower(name)
}
