package fuzzy

import (
	"strings"
	"unicode"
)

// DuplicateThreshold is the token-overlap ratio above which two action-item
// descriptions are considered the same real-world task.
const DuplicateThreshold = 0.6

// Normalize lowercases text and strips punctuation so that superficial
// formatting differences don't defeat matching
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// Punctuation becomes a separator, not nothing: "follow-up" and
			// "follow up" should tokenize identically.
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// TokenSet returns the set of unique normalized words in s
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(s)) {
		set[w] = struct{}{}
	}
	return set
}

// OverlapRatio computes the token-set Jaccard ratio |A∩B| / |A∪B|
func OverlapRatio(a, b string) float64 {
	setA := TokenSet(a)
	setB := TokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// IsSameTask reports whether two action-item descriptions refer to the same
// real-world task. A match is an exact normalized equality, substring
// containment in either direction, or a token overlap above the threshold.
func IsSameTask(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return false
	}

	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	return OverlapRatio(a, b) > DuplicateThreshold
}

// IsDuplicate reports whether a generated action item restates any of the
// existing items. Used to suppress AI-produced items that duplicate
// provider-native ones across repeated analysis passes.
func IsDuplicate(generated string, existing []string) bool {
	for _, item := range existing {
		if IsSameTask(generated, item) {
			return true
		}
	}
	return false
}
