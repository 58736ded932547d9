package game

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gallegodamar/sinonimoak/internal/quiz"
)

// Phase is the scheduler state. Transitions:
//
//	Intermission(p) → Playing(p, 0)        StartTurn
//	Playing(p, i)   → Playing(p, i+1)      Advance, i < 9
//	Playing(p, 9)   → Intermission(p+1)    Advance, more players
//	Playing(p, 9)   → Summary              Advance, last player
//	Summary         ⇄ Review               EnterReview / LeaveReview
//	Summary         → Intermission(0)      Restart with a fresh pool
type Phase int

const (
	PhaseIntermission Phase = iota
	PhasePlaying
	PhaseSummary
	PhaseReview
)

var errPhase = errors.New("game: operation not valid in current phase")

// Game drives per-player turns over a generated question pool. It is
// strictly sequential: only the active player's turn state is mutable.
type Game struct {
	Level   int
	Players []Player

	pool          []quiz.Question
	phase         Phase
	currentPlayer int
	questionIndex int
	answered      bool
	wrongThisTurn int
	turnStart     time.Time

	// now is time.Now outside of tests.
	now func() time.Time
}

// New creates a game over a generated pool. The pool must hold exactly
// QuestionsPerTurn questions per player; the scheduler starts in the
// first player's intermission.
func New(level int, names []string, pool []quiz.Question) (*Game, error) {
	if len(names) == 0 {
		return nil, errors.New("game: at least one player required")
	}
	want := len(names) * quiz.QuestionsPerTurn
	if len(pool) != want {
		return nil, fmt.Errorf("game: pool has %d questions, want %d for %d players", len(pool), want, len(names))
	}

	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{ID: i, Name: name}
	}

	return &Game{
		Level:   level,
		Players: players,
		pool:    pool,
		phase:   PhaseIntermission,
		now:     time.Now,
	}, nil
}

// Phase returns the current scheduler phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayer returns the index of the player whose turn it is (or
// whose intermission is showing).
func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}

// QuestionIndex returns the 0-based position within the current turn.
func (g *Game) QuestionIndex() int {
	return g.questionIndex
}

// WrongThisTurn returns the penalty counter for the active turn.
func (g *Game) WrongThisTurn() int {
	return g.wrongThisTurn
}

// Answered reports whether the current question already has a locked-in
// answer.
func (g *Game) Answered() bool {
	return g.answered
}

// CurrentQuestion returns the active question, using the flat pool
// index contract: player p, position i reads pool[p*10+i].
func (g *Game) CurrentQuestion() (*quiz.Question, error) {
	if g.phase != PhasePlaying {
		return nil, errPhase
	}
	return &g.pool[quiz.PoolIndex(g.currentPlayer, g.questionIndex)], nil
}

// StartTurn moves from the intermission into the player's first
// question. It resets the per-turn penalty counter and records the turn
// start timestamp for the elapsed-time calculation.
func (g *Game) StartTurn() error {
	if g.phase != PhaseIntermission {
		return errPhase
	}
	g.phase = PhasePlaying
	g.questionIndex = 0
	g.answered = false
	g.wrongThisTurn = 0
	g.turnStart = g.now()
	return nil
}

// Answer locks in the player's choice for the current question. A
// correct choice scores one point; any other choice increments the
// turn's penalty counter. Resubmitting while a question is already
// answered is a no-op and reports accepted=false.
func (g *Game) Answer(choice string) (correct, accepted bool) {
	if g.phase != PhasePlaying || g.answered {
		return false, false
	}
	g.answered = true

	q := g.pool[quiz.PoolIndex(g.currentPlayer, g.questionIndex)]
	if choice == q.Answer {
		g.Players[g.currentPlayer].Score++
		return true, true
	}
	g.wrongThisTurn++
	return false, true
}

// Advance moves past an answered question: to the next question within
// the turn, or after the last question it finalizes the player's
// elapsed time and hands over to the next intermission (or the summary
// after the final player).
func (g *Game) Advance() error {
	if g.phase != PhasePlaying || !g.answered {
		return errPhase
	}

	if g.questionIndex+1 < quiz.QuestionsPerTurn {
		g.questionIndex++
		g.answered = false
		return nil
	}

	p := &g.Players[g.currentPlayer]
	wallClock := g.now().Sub(g.turnStart).Seconds()
	p.ElapsedSeconds = wallClock + float64(WrongAnswerPenaltySeconds*g.wrongThisTurn)

	if g.currentPlayer+1 < len(g.Players) {
		g.currentPlayer++
		g.phase = PhaseIntermission
		return nil
	}
	g.phase = PhaseSummary
	return nil
}

// EnterReview switches from the summary to the word review.
func (g *Game) EnterReview() error {
	if g.phase != PhaseSummary {
		return errPhase
	}
	g.phase = PhaseReview
	return nil
}

// LeaveReview returns from the word review to the summary.
func (g *Game) LeaveReview() error {
	if g.phase != PhaseReview {
		return errPhase
	}
	g.phase = PhaseSummary
	return nil
}

// Restart begins a new game with the same players and a freshly
// generated pool. Scores and times reset; the old pool is replaced
// wholesale.
func (g *Game) Restart(pool []quiz.Question) error {
	if g.phase != PhaseSummary {
		return errPhase
	}
	want := len(g.Players) * quiz.QuestionsPerTurn
	if len(pool) != want {
		return fmt.Errorf("game: pool has %d questions, want %d", len(pool), want)
	}

	for i := range g.Players {
		g.Players[i].Score = 0
		g.Players[i].ElapsedSeconds = 0
	}
	g.pool = pool
	g.currentPlayer = 0
	g.questionIndex = 0
	g.answered = false
	g.wrongThisTurn = 0
	g.phase = PhaseIntermission
	return nil
}

// Standings returns the players ranked by score (desc), then elapsed
// time (asc), then join order.
func (g *Game) Standings() []Player {
	out := make([]Player, len(g.Players))
	copy(out, g.Players)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].ElapsedSeconds != out[j].ElapsedSeconds {
			return out[i].ElapsedSeconds < out[j].ElapsedSeconds
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// TotalQuestions returns the pool size.
func (g *Game) TotalQuestions() int {
	return len(g.pool)
}

// TotalCorrect sums all player scores.
func (g *Game) TotalCorrect() int {
	total := 0
	for _, p := range g.Players {
		total += p.Score
	}
	return total
}
