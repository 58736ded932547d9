package play

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/internal/game"
	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/screen"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/ui/components"
	"github.com/gallegodamar/sinonimoak/internal/ui/layout"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// PlayScreen drives a full game: per-player intermissions, the question
// loop with answer feedback, the final standings and the word review.
type PlayScreen struct {
	gm     *game.Game
	mode   string // "solo" or "multi"
	events store.EventRepo
	cache  *words.LevelCache
	log    zerolog.Logger

	runID         string
	runStart      time.Time
	questionStart time.Time
	mc            components.MultiChoice
	errMsg        string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates the play screen over an initialized game.
func New(gm *game.Game, mode string, events store.EventRepo, cache *words.LevelCache, log zerolog.Logger) *PlayScreen {
	return &PlayScreen{
		gm:       gm,
		mode:     mode,
		events:   events,
		cache:    cache,
		log:      log,
		runID:    uuid.NewString(),
		runStart: time.Now(),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	if s.mode == "solo" {
		return "Bakarka"
	}
	return "Jokoa"
}

func (s *PlayScreen) Status() string {
	return fmt.Sprintf("%d. maila", s.gm.Level)
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.gm.Phase() {
	case game.PhaseIntermission:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Hasi txanda"},
			{Key: "Esc", Description: "Utzi"},
		}
	case game.PhasePlaying:
		if s.gm.Answered() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Jarraitu"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓ / 1-4", Description: "Aukeratu"},
			{Key: "Enter", Description: "Erantzun"},
		}
	case game.PhaseSummary:
		return []layout.KeyHint{
			{Key: "R", Description: "Berriro jokatu"},
			{Key: "W", Description: "Hitzak berrikusi"},
			{Key: "Esc", Description: "Menura"},
		}
	case game.PhaseReview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Sailkapenera"},
		}
	}
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistDoneMsg:
		if msg.Err != nil {
			s.log.Warn().Err(msg.Err).Str("run_id", s.runID).Msg("event append failed")
		}
		return s, nil

	case restartPoolMsg:
		return s.handleRestartPool(msg)

	case tea.KeyMsg:
		switch s.gm.Phase() {
		case game.PhaseIntermission:
			if msg.String() == "enter" {
				return s.startTurn()
			}
		case game.PhasePlaying:
			return s.updatePlaying(msg)
		case game.PhaseSummary:
			return s.updateSummary(msg)
		case game.PhaseReview:
			switch msg.String() {
			case "enter", "w", "b":
				if err := s.gm.LeaveReview(); err != nil {
					s.log.Warn().Err(err).Msg("leave review")
				}
			}
			return s, nil
		}
	}
	return s, nil
}

// startTurn transitions into the active player's first question.
func (s *PlayScreen) startTurn() (screen.Screen, tea.Cmd) {
	if err := s.gm.StartTurn(); err != nil {
		s.log.Warn().Err(err).Msg("start turn")
		return s, nil
	}
	s.loadQuestion()
	return s, nil
}

// loadQuestion rebuilds the multichoice component for the current question.
func (s *PlayScreen) loadQuestion() {
	q, err := s.gm.CurrentQuestion()
	if err != nil {
		s.log.Error().Err(err).Msg("current question")
		return
	}

	correctIdx := 0
	for i, opt := range q.Options {
		if opt == q.Answer {
			correctIdx = i
			break
		}
	}

	prompt := fmt.Sprintf("Zein da %q hitzaren sinonimoa?", q.Entry.Headword)
	s.mc = components.NewMultiChoice(prompt, q.Options, correctIdx)
	s.questionStart = time.Now()
}

func (s *PlayScreen) updatePlaying(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.gm.Answered() {
		if msg.String() == "enter" {
			return s.advance()
		}
		return s, nil
	}

	s.mc, _ = s.mc.Update(msg)
	if !s.mc.Submitted {
		return s, nil
	}

	chosen := s.mc.Options[s.mc.ChosenIndex]
	correct, accepted := s.gm.Answer(chosen)
	if !accepted {
		return s, nil
	}

	q, err := s.gm.CurrentQuestion()
	if err != nil {
		return s, nil
	}
	timeMs := int(time.Since(s.questionStart).Milliseconds())
	player := s.gm.Players[s.gm.CurrentPlayer()].Name

	return s, s.persistAnswer(*q, player, chosen, correct, timeMs)
}

// advance moves past the answered question. When the final player's
// turn ends it records the finished run.
func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.gm.Advance(); err != nil {
		s.log.Warn().Err(err).Msg("advance")
		return s, nil
	}

	switch s.gm.Phase() {
	case game.PhasePlaying:
		s.loadQuestion()
		return s, nil
	case game.PhaseSummary:
		return s, s.persistRun()
	}
	return s, nil
}

func (s *PlayScreen) updateSummary(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		return s, s.regeneratePool()
	case "w", "enter":
		if err := s.gm.EnterReview(); err != nil {
			s.log.Warn().Err(err).Msg("enter review")
		}
		return s, nil
	}
	return s, nil
}

// persistAnswer appends one answer event. Failures are logged, never
// surfaced to the player.
func (s *PlayScreen) persistAnswer(q quiz.Question, player, chosen string, correct bool, timeMs int) tea.Cmd {
	data := store.AnswerEventData{
		RunID:         s.runID,
		Player:        player,
		EntryID:       q.Entry.ID,
		Level:         q.Entry.Level,
		Headword:      q.Entry.Headword,
		CorrectAnswer: q.Answer,
		ChosenAnswer:  chosen,
		Correct:       correct,
		TimeMs:        timeMs,
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: s.events.AppendAnswerEvent(context.Background(), data)}
	}
}

// persistRun appends the run summary once the game reaches the standings.
func (s *PlayScreen) persistRun() tea.Cmd {
	standings := make([]store.PlayerStanding, 0, len(s.gm.Players))
	for _, p := range s.gm.Standings() {
		standings = append(standings, store.PlayerStanding{
			Name:           p.Name,
			Score:          p.Score,
			ElapsedSeconds: p.ElapsedSeconds,
		})
	}

	data := store.RunEventData{
		RunID:           s.runID,
		Mode:            s.mode,
		Level:           s.gm.Level,
		Standings:       standings,
		QuestionsServed: s.gm.TotalQuestions(),
		CorrectAnswers:  s.gm.TotalCorrect(),
		DurationSecs:    int(time.Since(s.runStart).Seconds()),
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: s.events.AppendRunEvent(context.Background(), data)}
	}
}

// regeneratePool builds a fresh pool for a rematch with the same players.
func (s *PlayScreen) regeneratePool() tea.Cmd {
	level := s.gm.Level
	players := len(s.gm.Players)
	soloName := ""
	if s.mode == "solo" {
		soloName = s.gm.Players[0].Name
	}

	return func() tea.Msg {
		ctx := context.Background()

		vocabulary, err := s.cache.Ensure(ctx, level)
		if err != nil {
			return restartPoolMsg{Err: err}
		}

		var stats map[string]quiz.FailureStat
		if soloName != "" {
			history, err := s.events.AnswerHistory(ctx, soloName)
			if err != nil {
				s.log.Warn().Err(err).Str("player", soloName).Msg("answer history unavailable, using uniform draw")
			} else {
				stats = quiz.AggregateHistory(history)
			}
		}

		seed := uint64(time.Now().UnixNano())
		rng := rand.New(rand.NewPCG(seed, seed))

		pool, err := quiz.GeneratePool(rng, players, vocabulary, stats)
		if err != nil {
			return restartPoolMsg{Err: err}
		}
		return restartPoolMsg{Pool: pool}
	}
}

func (s *PlayScreen) handleRestartPool(msg restartPoolMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if err := s.gm.Restart(msg.Pool); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.runID = uuid.NewString()
	s.runStart = time.Now()
	return s, nil
}
