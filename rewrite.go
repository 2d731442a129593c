package faleproxy

import "regexp"

// Replacement is the literal text substituted for every match.
const Replacement = "Fale"

var yalePattern = regexp.MustCompile(`(?i)yale`)

// Rewrite replaces every case-insensitive occurrence of "yale" in s with
// Replacement. Matches inside longer words are rewritten too, and the
// replacement casing is fixed ("YALE" becomes "Fale").
func Rewrite(s string) string {
	return yalePattern.ReplaceAllLiteralString(s, Replacement)
}

// NeedsRewrite reports whether s contains anything Rewrite would change.
func NeedsRewrite(s string) bool {
	return yalePattern.MatchString(s)
}
