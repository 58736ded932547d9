package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// testPool builds a pool where every question's answer is "right-N"
// with N the flat index, so tests can answer deterministically.
func testPool(players int) []quiz.Question {
	pool := make([]quiz.Question, 0, players*quiz.QuestionsPerTurn)
	for i := 0; i < players*quiz.QuestionsPerTurn; i++ {
		answer := fmt.Sprintf("right-%d", i)
		pool = append(pool, quiz.Question{
			Entry: words.WordEntry{
				ID:       fmt.Sprintf("e%d", i),
				Headword: fmt.Sprintf("hitz%d", i),
				Synonyms: []string{answer},
				Level:    1,
			},
			Answer:  answer,
			Options: []string{answer, "wrong-a", "wrong-b", "wrong-c"},
		})
	}
	return pool
}

// fixedClock advances by step on every read.
type fixedClock struct {
	t    time.Time
	step time.Duration
}

func (c *fixedClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	g, err := New(1, names, testPool(len(names)))
	require.NoError(t, err)
	return g
}

func TestNewValidatesPool(t *testing.T) {
	_, err := New(1, []string{"Ane"}, testPool(2))
	assert.Error(t, err, "pool sized for 2 players rejected for 1")

	_, err = New(1, nil, nil)
	assert.Error(t, err)

	g, err := New(1, []string{"Ane", "Jon"}, testPool(2))
	require.NoError(t, err)
	assert.Equal(t, PhaseIntermission, g.Phase())
	assert.Equal(t, 0, g.CurrentPlayer())
}

func TestPoolIndexContract(t *testing.T) {
	g := newTestGame(t, "Ane", "Jon")

	// Walk player 0's full turn, then into player 1's turn up to question 3.
	require.NoError(t, g.StartTurn())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		_, accepted := g.Answer("whatever")
		require.True(t, accepted)
		require.NoError(t, g.Advance())
	}
	require.Equal(t, PhaseIntermission, g.Phase())
	require.NoError(t, g.StartTurn())
	for i := 0; i < 3; i++ {
		g.Answer("whatever")
		require.NoError(t, g.Advance())
	}

	q, err := g.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, quiz.PoolIndex(1, 3), 13)
	assert.Equal(t, "e13", q.Entry.ID, "Playing(1,3) must read pool[13]")
}

func TestScoringAndPenalty(t *testing.T) {
	g := newTestGame(t, "Ane")
	clock := &fixedClock{t: time.Unix(1000, 0), step: time.Second}
	g.now = clock.now

	require.NoError(t, g.StartTurn())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		q, err := g.CurrentQuestion()
		require.NoError(t, err)

		// Answer the first 7 correctly, miss the last 3.
		choice := q.Answer
		if i >= 7 {
			choice = "wrong-a"
		}
		correct, accepted := g.Answer(choice)
		require.True(t, accepted)
		assert.Equal(t, i < 7, correct)
		require.NoError(t, g.Advance())
	}

	require.Equal(t, PhaseSummary, g.Phase())
	p := g.Players[0]
	assert.Equal(t, 7, p.Score)
	// The stepping clock is read at turn start and turn end (1s apart),
	// plus 3 wrong * 10s penalty.
	assert.InDelta(t, 1+3*WrongAnswerPenaltySeconds, p.ElapsedSeconds, 0.001)
}

func TestAnswerOncePerQuestion(t *testing.T) {
	g := newTestGame(t, "Ane")
	require.NoError(t, g.StartTurn())

	q, err := g.CurrentQuestion()
	require.NoError(t, err)

	_, accepted := g.Answer("wrong-a")
	require.True(t, accepted)

	// Resubmission is a no-op: not accepted, no score change, no extra penalty.
	correct, accepted := g.Answer(q.Answer)
	assert.False(t, accepted)
	assert.False(t, correct)
	assert.Equal(t, 0, g.Players[0].Score)
	assert.Equal(t, 1, g.WrongThisTurn())
}

func TestPenaltyCounterResetsPerTurn(t *testing.T) {
	g := newTestGame(t, "Ane", "Jon")
	clock := &fixedClock{t: time.Unix(0, 0), step: time.Second}
	g.now = clock.now

	require.NoError(t, g.StartTurn())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		g.Answer("wrong-a")
		require.NoError(t, g.Advance())
	}

	require.Equal(t, PhaseIntermission, g.Phase())
	require.NoError(t, g.StartTurn())
	assert.Equal(t, 0, g.WrongThisTurn(), "penalty counter resets on turn start")
}

func TestPhaseGuards(t *testing.T) {
	g := newTestGame(t, "Ane")

	_, err := g.CurrentQuestion()
	assert.Error(t, err, "no current question during intermission")

	_, accepted := g.Answer("x")
	assert.False(t, accepted, "answers rejected outside Playing")

	assert.Error(t, g.Advance())
	assert.Error(t, g.EnterReview())
	assert.Error(t, g.Restart(testPool(1)))

	require.NoError(t, g.StartTurn())
	assert.Error(t, g.StartTurn(), "turn cannot start twice")
	assert.Error(t, g.Advance(), "cannot advance an unanswered question")
}

func TestSummaryReviewLoop(t *testing.T) {
	g := newTestGame(t, "Ane")
	require.NoError(t, g.StartTurn())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		g.Answer("wrong-a")
		require.NoError(t, g.Advance())
	}
	require.Equal(t, PhaseSummary, g.Phase())

	require.NoError(t, g.EnterReview())
	assert.Equal(t, PhaseReview, g.Phase())
	require.NoError(t, g.LeaveReview())
	assert.Equal(t, PhaseSummary, g.Phase())
}

func TestRestartResets(t *testing.T) {
	g := newTestGame(t, "Ane")
	require.NoError(t, g.StartTurn())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		q, _ := g.CurrentQuestion()
		g.Answer(q.Answer)
		require.NoError(t, g.Advance())
	}
	require.Equal(t, quiz.QuestionsPerTurn, g.Players[0].Score)

	require.NoError(t, g.Restart(testPool(1)))
	assert.Equal(t, PhaseIntermission, g.Phase())
	assert.Equal(t, 0, g.CurrentPlayer())
	assert.Equal(t, 0, g.Players[0].Score)
	assert.Zero(t, g.Players[0].ElapsedSeconds)
}

func TestStandingsOrdering(t *testing.T) {
	g := newTestGame(t, "Ane", "Jon", "Miren")
	g.Players[0].Score = 5
	g.Players[0].ElapsedSeconds = 40
	g.Players[1].Score = 8
	g.Players[1].ElapsedSeconds = 90
	g.Players[2].Score = 5
	g.Players[2].ElapsedSeconds = 25

	s := g.Standings()
	require.Len(t, s, 3)
	assert.Equal(t, "Jon", s[0].Name, "highest score first")
	assert.Equal(t, "Miren", s[1].Name, "score tie broken by lower elapsed")
	assert.Equal(t, "Ane", s[2].Name)
}

func TestReviewWordsSortedDistinct(t *testing.T) {
	pool := testPool(1)
	// Duplicate an entry to prove deduplication.
	pool[5].Entry = pool[0].Entry
	g, err := New(1, []string{"Ane"}, pool)
	require.NoError(t, err)

	got := g.ReviewWords()
	assert.Len(t, got, quiz.QuestionsPerTurn-1)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Headword, got[i].Headword, "alphabetical by headword")
	}
}
