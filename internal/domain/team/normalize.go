package team

import "strings"

// CombinedDisplayName is the synthetic subject that folds every Key West
// naming variant in the corpus into one identity.
const CombinedDisplayName = "Key West (Combined)"

// NormalizeName canonicalizes a team name for fuzzy matching: lower-case,
// alphanumeric only. "Key West FC" and "Key-West" normalize identically.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeAll maps each input name to its normalized form, deduplicated.
func NormalizeAll(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		if n := NormalizeName(name); n != "" {
			out[n] = struct{}{}
		}
	}
	return out
}

// IsKeyWestName reports whether a name refers to the Key West rival, matching
// the "key west" substring case- and punctuation-insensitively. Used by the
// worthy-opponent special case.
func IsKeyWestName(name string) bool {
	if strings.Contains(strings.ToLower(name), "key west") {
		return true
	}
	return strings.Contains(NormalizeName(name), "keywest")
}

// IsKeyWestVariant recognizes the wider set of spellings the corpus uses for
// Key West sides. The "kw" substring is deliberately loose; it mirrors how the
// corpus was labeled.
func IsKeyWestVariant(name string) bool {
	lower := strings.ToLower(name)
	if lower == "kwfc" {
		return true
	}
	for _, pattern := range []string{"key west", "keywest", "key-west", "kw", "keystone"} {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
