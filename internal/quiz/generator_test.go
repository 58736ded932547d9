package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

func testVocabulary(n int) []words.WordEntry {
	vocab := make([]words.WordEntry, 0, n)
	for i := 0; i < n; i++ {
		vocab = append(vocab, words.WordEntry{
			ID:       fmt.Sprintf("w%d", i),
			Headword: fmt.Sprintf("hitz%d", i),
			Synonyms: []string{fmt.Sprintf("kide%d", i), fmt.Sprintf("pareko%d", i)},
			Level:    1,
		})
	}
	return vocab
}

func assertQuestionInvariants(t *testing.T, q Question) {
	t.Helper()

	assert.Contains(t, q.Options, q.Answer, "answer must be among the options")
	assert.Contains(t, q.Entry.Synonyms, q.Answer, "answer must come from the entry's own synonyms")

	seen := make(map[string]bool)
	for _, opt := range q.Options {
		assert.False(t, seen[opt], "duplicate option %q", opt)
		seen[opt] = true
	}
	assert.LessOrEqual(t, len(q.Options), 1+DistractorCount)
}

func TestGenerateCountAndInvariants(t *testing.T) {
	vocab := testVocabulary(20)

	for _, needed := range []int{1, 5, 30} {
		got, err := Generate(testRng(uint64(needed)), needed, vocab, nil)
		require.NoError(t, err)
		require.Len(t, got, needed)
		for _, q := range got {
			assertQuestionInvariants(t, q)
			assert.Len(t, q.Options, 1+DistractorCount, "rich vocabulary yields full option sets")
		}
	}
}

func TestGenerateEmptyVocabulary(t *testing.T) {
	_, err := Generate(testRng(1), 5, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestGenerateInvalidNeeded(t *testing.T) {
	_, err := Generate(testRng(1), 0, testVocabulary(3), nil)
	assert.Error(t, err)
}

func TestGenerateFailsFastOnSynonymlessEntry(t *testing.T) {
	vocab := []words.WordEntry{{ID: "bad", Headword: "hutsik", Level: 1}}
	_, err := Generate(testRng(1), 1, vocab, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyVocabulary)
}

func TestGenerateSingleEntryDegrades(t *testing.T) {
	// The whole level is one entry, so there are no distractors at all.
	// Generation must still succeed with a short option list.
	vocab := []words.WordEntry{
		{ID: "1", Headword: "azkar", Synonyms: []string{"bizkor", "lasterka"}, Level: 1},
	}

	got, err := Generate(testRng(6), 1, vocab, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	q := got[0]
	assertQuestionInvariants(t, q)
	assert.Equal(t, []string{q.Answer}, q.Options)
}

func TestGenerateRepeatsAllowed(t *testing.T) {
	vocab := testVocabulary(2)
	got, err := Generate(testRng(8), 10, vocab, nil)
	require.NoError(t, err)
	require.Len(t, got, 10, "sampling with replacement fills more slots than entries")
}

func TestGenerateIndependentRuns(t *testing.T) {
	// No fixed seed contract between runs; both outputs must satisfy the
	// invariants independently.
	vocab := testVocabulary(15)
	for seed := uint64(100); seed < 102; seed++ {
		got, err := Generate(testRng(seed), 8, vocab, nil)
		require.NoError(t, err)
		for _, q := range got {
			assertQuestionInvariants(t, q)
		}
	}
}

func TestGeneratePoolLength(t *testing.T) {
	vocab := testVocabulary(25)
	got, err := GeneratePool(testRng(3), 2, vocab, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2*QuestionsPerTurn)

	_, err = GeneratePool(testRng(3), 0, vocab, nil)
	assert.Error(t, err)
}

func TestGenerateWeightedUsesStats(t *testing.T) {
	vocab := testVocabulary(5)
	stats := map[string]FailureStat{
		StatKey("w0", 1): {EntryKey: StatKey("w0", 1), Wrong: 8, Attempts: 8},
	}

	counts := make(map[string]int)
	for seed := uint64(0); seed < 50; seed++ {
		got, err := Generate(testRng(seed), 10, vocab, stats)
		require.NoError(t, err)
		for _, q := range got {
			counts[q.Entry.ID]++
		}
	}

	for _, other := range []string{"w1", "w2", "w3", "w4"} {
		assert.Greater(t, counts["w0"], counts[other], "missed entry must be drawn more than %s", other)
	}
}
