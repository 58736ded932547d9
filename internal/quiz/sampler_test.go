package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

func testRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestUniformSamplerCoversPool(t *testing.T) {
	pool := []words.WordEntry{
		{ID: "a", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1},
		{ID: "b", Headword: "handi", Synonyms: []string{"nagusi"}, Level: 1},
		{ID: "c", Headword: "polit", Synonyms: []string{"eder"}, Level: 1},
	}
	s := NewUniform(testRng(7))

	seen := make(map[string]int)
	for i := 0; i < 3000; i++ {
		seen[s.Draw(pool).ID]++
	}

	for _, e := range pool {
		assert.Greater(t, seen[e.ID], 0, "entry %s never drawn", e.ID)
	}
}

func TestWeightedSamplerBiasesTowardFailures(t *testing.T) {
	a := words.WordEntry{ID: "a", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1}
	b := words.WordEntry{ID: "b", Headword: "handi", Synonyms: []string{"nagusi"}, Level: 1}
	pool := []words.WordEntry{a, b}

	stats := map[string]FailureStat{
		StatKey("a", 1): {EntryKey: StatKey("a", 1), Wrong: 5, Attempts: 5},
		StatKey("b", 1): {EntryKey: StatKey("b", 1), Wrong: 0, Attempts: 5},
	}
	s := NewWeighted(testRng(11), stats)

	const draws = 10000
	countA := 0
	for i := 0; i < draws; i++ {
		if s.Draw(pool).ID == "a" {
			countA++
		}
	}

	// weight(a) = 1 + 5*3 + (5/5)*5 = 21, weight(b) = 1.
	// Expected share for a is 21/22 ≈ 0.95; allow generous slack.
	assert.Greater(t, countA, draws/2, "entry with failures must dominate")
	assert.Greater(t, countA, 9000)
	assert.Less(t, countA, draws, "entry without failures must still be reachable")
}

func TestWeightedSamplerKeepsUnseenEntriesReachable(t *testing.T) {
	a := words.WordEntry{ID: "a", Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1}
	b := words.WordEntry{ID: "b", Headword: "handi", Synonyms: []string{"nagusi"}, Level: 1}
	stats := map[string]FailureStat{
		StatKey("a", 1): {EntryKey: StatKey("a", 1), Wrong: 10, Attempts: 10},
	}
	s := NewWeighted(testRng(3), stats)

	seenB := false
	for i := 0; i < 10000; i++ {
		if s.Draw([]words.WordEntry{a, b}).ID == "b" {
			seenB = true
			break
		}
	}
	assert.True(t, seenB, "minimum weight of 1 keeps every entry selectable")
}

func TestSamplerForStrategySelection(t *testing.T) {
	rng := testRng(1)

	_, uniform := SamplerFor(rng, nil).(*uniformSampler)
	assert.True(t, uniform, "no stats selects uniform sampling")

	_, uniform = SamplerFor(rng, map[string]FailureStat{}).(*uniformSampler)
	assert.True(t, uniform, "empty stats selects uniform sampling")

	stats := map[string]FailureStat{"a|1": {Wrong: 1, Attempts: 2}}
	_, weighted := SamplerFor(rng, stats).(*weightedSampler)
	assert.True(t, weighted, "stats select weighted sampling")
}
