package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateHistory(t *testing.T) {
	log := []AnswerRecord{
		{EntryID: "a", Level: 1, Correct: false},
		{EntryID: "a", Level: 1, Correct: true},
		{EntryID: "a", Level: 1, Correct: false},
		{EntryID: "b", Level: 1, Correct: true},
		{EntryID: "b", Level: 1, Correct: true},
		{EntryID: "c", Level: 2, Correct: false}, // single attempt, dropped
	}

	stats := AggregateHistory(log)

	a, ok := stats[StatKey("a", 1)]
	require.True(t, ok)
	assert.Equal(t, 3, a.Attempts)
	assert.Equal(t, 2, a.Wrong)

	b, ok := stats[StatKey("b", 1)]
	require.True(t, ok)
	assert.Equal(t, 2, b.Attempts)
	assert.Equal(t, 0, b.Wrong)

	_, ok = stats[StatKey("c", 2)]
	assert.False(t, ok, "single attempts are statistically insufficient")
}

func TestAggregateHistorySeparatesLevels(t *testing.T) {
	log := []AnswerRecord{
		{EntryID: "a", Level: 1, Correct: false},
		{EntryID: "a", Level: 1, Correct: false},
		{EntryID: "a", Level: 2, Correct: true},
		{EntryID: "a", Level: 2, Correct: true},
	}

	stats := AggregateHistory(log)
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[StatKey("a", 1)].Wrong)
	assert.Equal(t, 0, stats[StatKey("a", 2)].Wrong)
}

func TestAggregateHistoryFresh(t *testing.T) {
	log := []AnswerRecord{
		{EntryID: "a", Level: 1, Correct: false},
		{EntryID: "a", Level: 1, Correct: false},
	}

	first := AggregateHistory(log)
	second := AggregateHistory(log)
	assert.Equal(t, first, second)

	// Mutating one result must not leak into a later computation.
	s := first[StatKey("a", 1)]
	s.Wrong = 99
	first[StatKey("a", 1)] = s
	third := AggregateHistory(log)
	assert.Equal(t, 2, third[StatKey("a", 1)].Wrong)
}

func TestAggregateHistoryEmpty(t *testing.T) {
	assert.Empty(t, AggregateHistory(nil))
}
