package common

import "strings"

// NormalizeID canonicalizes a country identifier for source lookup:
// hyphens become underscores so "sierra-leone" matches the
// "sierra_leone"-style naming of the data files.
func NormalizeID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "_")
}

// DisplayName converts a country identifier to its human-readable form:
// separators become spaces and each word is title-cased, so
// "sierra_leone" becomes "Sierra Leone".
func DisplayName(id string) string {
	id = strings.ReplaceAll(NormalizeID(id), "_", " ")
	words := strings.Fields(id)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
