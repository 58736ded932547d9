package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

func TestSelectDistractorsExcludesTarget(t *testing.T) {
	target := words.WordEntry{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor", "lasterka"}, Level: 1}
	vocab := []words.WordEntry{
		target,
		{ID: "2", Headword: "handi", Synonyms: []string{"nagusi", "erraldoi"}, Level: 1},
		{ID: "3", Headword: "polit", Synonyms: []string{"eder", "dotore"}, Level: 1},
		{ID: "4", Headword: "ilun", Synonyms: []string{"goibel"}, Level: 1},
	}

	got := SelectDistractors(testRng(5), target, vocab, DistractorCount)

	assert.Len(t, got, DistractorCount)
	assert.NotContains(t, got, "azkar")
	assert.NotContains(t, got, "bizkor")
	assert.NotContains(t, got, "lasterka")
}

func TestSelectDistractorsDistinct(t *testing.T) {
	target := words.WordEntry{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1}
	// "eder" appears both as a synonym of polit and as its own headword.
	vocab := []words.WordEntry{
		target,
		{ID: "2", Headword: "polit", Synonyms: []string{"eder"}, Level: 1},
		{ID: "3", Headword: "eder", Synonyms: []string{"dotore"}, Level: 1},
		{ID: "4", Headword: "ilun", Synonyms: []string{"goibel"}, Level: 1},
	}

	for seed := uint64(0); seed < 20; seed++ {
		got := SelectDistractors(testRng(seed), target, vocab, DistractorCount)
		seen := make(map[string]bool)
		for _, d := range got {
			assert.False(t, seen[d], "duplicate distractor %q (seed %d)", d, seed)
			seen[d] = true
		}
	}
}

func TestSelectDistractorsPrefersSameCategory(t *testing.T) {
	// Target is a verb; build a vocabulary with plenty of distinct verbs
	// so the category filter has enough candidates to stand on.
	target := words.WordEntry{ID: "t", Headword: "dantzatu", Synonyms: []string{"saltatu"}, Level: 1}
	vocab := []words.WordEntry{target}
	for i := 0; i < 12; i++ {
		vocab = append(vocab, words.WordEntry{
			ID:       fmt.Sprintf("v%d", i),
			Headword: fmt.Sprintf("lagundu%d-tu", i),
			Synonyms: []string{fmt.Sprintf("hartu%d-du", i)},
			Level:    1,
		})
	}
	// A handful of non-verbs that must not appear.
	vocab = append(vocab,
		words.WordEntry{ID: "n1", Headword: "mahai", Synonyms: []string{"oholtza"}, Level: 1},
		words.WordEntry{ID: "n2", Headword: "etxe", Synonyms: []string{"bizileku"}, Level: 1},
	)

	got := SelectDistractors(testRng(9), target, vocab, DistractorCount)
	assert.Len(t, got, DistractorCount)
	for _, d := range got {
		assert.Equal(t, words.CategoryVerb, words.Classify(d), "distractor %q not a verb", d)
	}
}

func TestSelectDistractorsSparseCategoryFallsBack(t *testing.T) {
	// Only one other verb exists, far below the category threshold, so
	// the selector must widen to the whole vocabulary.
	target := words.WordEntry{ID: "t", Headword: "dantzatu", Synonyms: []string{"saltatu"}, Level: 1}
	vocab := []words.WordEntry{
		target,
		{ID: "v", Headword: "galdu", Synonyms: []string{"desagertu"}, Level: 1},
		{ID: "n1", Headword: "mahai", Synonyms: []string{"oholtza"}, Level: 1},
		{ID: "n2", Headword: "etxe", Synonyms: []string{"bizileku"}, Level: 1},
	}

	got := SelectDistractors(testRng(2), target, vocab, DistractorCount)
	assert.Len(t, got, DistractorCount)
}

func TestSelectDistractorsShortage(t *testing.T) {
	// One other entry supplies just two candidate strings.
	target := words.WordEntry{ID: "t", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1}
	vocab := []words.WordEntry{
		target,
		{ID: "o", Headword: "handi", Synonyms: []string{"nagusi"}, Level: 1},
	}

	got := SelectDistractors(testRng(4), target, vocab, DistractorCount)
	assert.Len(t, got, 2, "degrades to fewer distractors instead of failing")

	// Nothing but the target itself: zero distractors.
	got = SelectDistractors(testRng(4), target, []words.WordEntry{target}, DistractorCount)
	assert.Empty(t, got)
}
