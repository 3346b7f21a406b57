package question

import "strings"

// Normalize prepares an answer value for comparison: surrounding
// whitespace is trimmed and the text is lowercased. Nothing else:
// in particular there is no numeric coercion, so "4.0" does not
// match "4". Typed answers are compared as normalized text to keep
// grading predictable across the mix of numeric, word and markup
// answers the service produces.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Grade compares a submitted answer against the canonical answer
// using normalized string equality.
func Grade(submitted, canonical string) bool {
	return Normalize(submitted) == Normalize(canonical)
}
