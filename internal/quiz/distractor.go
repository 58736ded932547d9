package quiz

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

// DistractorCount is the number of wrong options per question.
const DistractorCount = 3

// minCategoryPool is the minimum number of distinct same-category
// candidates required before category filtering is trusted. Below this
// the selector falls back to the whole vocabulary so sparse categories
// still produce varied options.
const minCategoryPool = 10

// SelectDistractors picks up to count distinct wrong options for target
// from the shared vocabulary. Candidates matching the target's
// morphological category are preferred. The result never contains the
// target's headword or any of its synonyms; it may be shorter than
// count when the vocabulary cannot supply enough distinct strings.
func SelectDistractors(rng *rand.Rand, target words.WordEntry, vocabulary []words.WordEntry, count int) []string {
	universe := lo.FlatMap(vocabulary, func(e words.WordEntry, _ int) []string {
		return append([]string{e.Headword}, e.Synonyms...)
	})

	excluded := make(map[string]bool, len(target.Synonyms)+1)
	excluded[target.Headword] = true
	for _, s := range target.Synonyms {
		excluded[s] = true
	}
	candidates := lo.Filter(universe, func(s string, _ int) bool {
		return !excluded[s]
	})

	targetCategory := words.Classify(target.Headword)
	sameCategory := lo.Filter(candidates, func(s string, _ int) bool {
		return words.Classify(s) == targetCategory
	})

	pool := sameCategory
	if len(lo.Uniq(sameCategory)) < minCategoryPool {
		pool = candidates
	}

	distinct := lo.Uniq(pool)
	rng.Shuffle(len(distinct), func(i, j int) {
		distinct[i], distinct[j] = distinct[j], distinct[i]
	})

	if len(distinct) > count {
		distinct = distinct[:count]
	}
	return distinct
}
