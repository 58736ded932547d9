package words

import "strings"

// Category is a coarse morphological grouping used to pick plausible
// distractors. It is a suffix heuristic, not a grammatical guarantee.
type Category string

const (
	CategoryVerb     Category = "verb"
	CategoryPlural   Category = "plural"
	CategoryAbstract Category = "abstract"
	CategoryOther    Category = "other"
)

var (
	verbSuffixes     = []string{"tu", "du", "ten", "tzen"}
	pluralSuffixes   = []string{"ak", "ek"}
	abstractSuffixes = []string{"era", "ura", "tasun"}
)

// Classify maps a surface word to its category. It is pure and total:
// input is lowercased and trimmed, and every word gets a category.
// Rules are checked in fixed priority order and the first match wins,
// so a word that satisfies several suffix patterns is classified by
// the earliest rule only.
func Classify(word string) Category {
	w := strings.ToLower(strings.TrimSpace(word))

	if hasAnySuffix(w, verbSuffixes) {
		return CategoryVerb
	}
	if hasAnySuffix(w, pluralSuffixes) {
		return CategoryPlural
	}
	// The article -a is ignored for abstract suffixes, so
	// "herritasuna" still matches "tasun".
	base := strings.TrimSuffix(w, "a")
	if hasAnySuffix(w, abstractSuffixes) || hasAnySuffix(base, abstractSuffixes) {
		return CategoryAbstract
	}
	return CategoryOther
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
