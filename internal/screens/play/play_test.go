package play

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/internal/game"
	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/screen"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents []store.AnswerEventData
	runEvents    []store.RunEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendRunEvent(_ context.Context, data store.RunEventData) error {
	m.runEvents = append(m.runEvents, data)
	return nil
}
func (m *mockEventRepo) AnswerHistory(_ context.Context, _ string) ([]quiz.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryRunSummaries(_ context.Context, _ store.QueryOpts) ([]store.RunSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LevelAccuracies(_ context.Context) ([]store.LevelAccuracy, error) {
	return nil, nil
}
func (m *mockEventRepo) MostMissed(_ context.Context, _ int) ([]store.MissedWord, error) {
	return nil, nil
}

// stubSource backs the level cache used for rematches.
type stubSource struct {
	entries []words.WordEntry
}

func (s *stubSource) ActiveByLevel(_ context.Context, _ int) ([]words.WordEntry, error) {
	return s.entries, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// testPool builds a one-player pool where every question's correct
// answer is option "bai-N".
func testPool(t *testing.T) []quiz.Question {
	t.Helper()
	pool := make([]quiz.Question, quiz.QuestionsPerTurn)
	for i := range pool {
		answer := fmt.Sprintf("bai-%d", i)
		pool[i] = quiz.Question{
			Entry: words.WordEntry{
				ID:       fmt.Sprintf("w%d", i),
				Headword: fmt.Sprintf("hitz%d", i),
				Synonyms: []string{answer},
				Level:    1,
			},
			Answer:  answer,
			Options: []string{answer, "ez-a", "ez-b", "ez-c"},
		}
	}
	return pool
}

func testPlayScreen(t *testing.T) (*PlayScreen, *mockEventRepo) {
	t.Helper()
	gm, err := game.New(1, []string{"Miren"}, testPool(t))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	repo := &mockEventRepo{}
	cache := words.NewLevelCache(&stubSource{}, zerolog.Nop())
	return New(gm, "solo", repo, cache, zerolog.Nop()), repo
}

// run applies a message and executes any resulting command, feeding its
// message back into the screen, mirroring the Bubble Tea loop.
func run(t *testing.T, s screen.Screen, msg tea.Msg) screen.Screen {
	t.Helper()
	s, cmd := s.Update(msg)
	for cmd != nil {
		s, cmd = s.Update(cmd())
	}
	return s
}

func TestPlayScreen_StartsInIntermission(t *testing.T) {
	s, _ := testPlayScreen(t)
	if s.gm.Phase() != game.PhaseIntermission {
		t.Fatalf("phase = %v, want intermission", s.gm.Phase())
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty intermission view")
	}
}

func TestPlayScreen_AnswerPersistsEvent(t *testing.T) {
	s, repo := testPlayScreen(t)

	var scr screen.Screen = s
	scr = run(t, scr, enterKey()) // start turn
	scr = run(t, scr, keyPress('1'))

	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.Player != "Miren" {
		t.Errorf("player = %q, want Miren", ev.Player)
	}
	if !ev.Correct {
		t.Error("expected first option to be recorded as correct")
	}
	if ev.ChosenAnswer != "bai-0" {
		t.Errorf("chosen = %q, want bai-0", ev.ChosenAnswer)
	}
	_ = scr
}

func TestPlayScreen_FullTurnReachesSummaryAndRecordsRun(t *testing.T) {
	s, repo := testPlayScreen(t)

	var scr screen.Screen = s
	scr = run(t, scr, enterKey()) // start turn
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		scr = run(t, scr, keyPress('1')) // answer
		scr = run(t, scr, enterKey())    // advance
	}

	ps := scr.(*PlayScreen)
	if ps.gm.Phase() != game.PhaseSummary {
		t.Fatalf("phase = %v, want summary", ps.gm.Phase())
	}
	if len(repo.runEvents) != 1 {
		t.Fatalf("run events = %d, want 1", len(repo.runEvents))
	}
	ev := repo.runEvents[0]
	if ev.Mode != "solo" {
		t.Errorf("mode = %q, want solo", ev.Mode)
	}
	if ev.CorrectAnswers != quiz.QuestionsPerTurn {
		t.Errorf("correct = %d, want %d", ev.CorrectAnswers, quiz.QuestionsPerTurn)
	}
	if len(ev.Standings) != 1 || ev.Standings[0].Score != quiz.QuestionsPerTurn {
		t.Errorf("standings = %+v, want one player with a perfect score", ev.Standings)
	}
}

func TestPlayScreen_WrongAnswerNotScored(t *testing.T) {
	s, repo := testPlayScreen(t)

	var scr screen.Screen = s
	scr = run(t, scr, enterKey())
	scr = run(t, scr, keyPress('2')) // "ez-a"

	ev := repo.answerEvents[0]
	if ev.Correct {
		t.Error("expected wrong answer to be recorded as incorrect")
	}
	ps := scr.(*PlayScreen)
	if ps.gm.Players[0].Score != 0 {
		t.Errorf("score = %d, want 0", ps.gm.Players[0].Score)
	}
	if ps.gm.WrongThisTurn() != 1 {
		t.Errorf("wrong this turn = %d, want 1", ps.gm.WrongThisTurn())
	}
}

func TestPlayScreen_SummaryToReviewAndBack(t *testing.T) {
	s, _ := testPlayScreen(t)

	var scr screen.Screen = s
	scr = run(t, scr, enterKey())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		scr = run(t, scr, keyPress('1'))
		scr = run(t, scr, enterKey())
	}

	scr = run(t, scr, keyPress('w'))
	ps := scr.(*PlayScreen)
	if ps.gm.Phase() != game.PhaseReview {
		t.Fatalf("phase = %v, want review", ps.gm.Phase())
	}
	if view := ps.View(80, 24); view == "" {
		t.Error("expected non-empty review view")
	}

	scr = run(t, scr, enterKey())
	ps = scr.(*PlayScreen)
	if ps.gm.Phase() != game.PhaseSummary {
		t.Fatalf("phase = %v, want summary", ps.gm.Phase())
	}
}

func TestPlayScreen_RematchResetsGame(t *testing.T) {
	s, _ := testPlayScreen(t)
	s.cache = words.NewLevelCache(&stubSource{entries: []words.WordEntry{
		{ID: "w0", Headword: "etxe", Synonyms: []string{"bizileku"}, Level: 1},
		{ID: "w1", Headword: "handi", Synonyms: []string{"itzel"}, Level: 1},
	}}, zerolog.Nop())

	var scr screen.Screen = s
	scr = run(t, scr, enterKey())
	for i := 0; i < quiz.QuestionsPerTurn; i++ {
		scr = run(t, scr, keyPress('1'))
		scr = run(t, scr, enterKey())
	}

	oldRunID := scr.(*PlayScreen).runID
	scr = run(t, scr, keyPress('r'))

	ps := scr.(*PlayScreen)
	if ps.gm.Phase() != game.PhaseIntermission {
		t.Fatalf("phase = %v, want intermission after rematch", ps.gm.Phase())
	}
	if ps.gm.Players[0].Score != 0 {
		t.Errorf("score = %d, want 0 after rematch", ps.gm.Players[0].Score)
	}
	if ps.runID == oldRunID {
		t.Error("expected a fresh run ID for the rematch")
	}
}
