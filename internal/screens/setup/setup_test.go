package setup

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

type noopEventRepo struct{}

func (noopEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (noopEventRepo) AppendRunEvent(context.Context, store.RunEventData) error       { return nil }
func (noopEventRepo) AnswerHistory(context.Context, string) ([]quiz.AnswerRecord, error) {
	return nil, nil
}
func (noopEventRepo) QueryRunSummaries(context.Context, store.QueryOpts) ([]store.RunSummaryRecord, error) {
	return nil, nil
}
func (noopEventRepo) LevelAccuracies(context.Context) ([]store.LevelAccuracy, error) {
	return nil, nil
}
func (noopEventRepo) MostMissed(context.Context, int) ([]store.MissedWord, error) {
	return nil, nil
}

type emptySource struct{}

func (emptySource) ActiveByLevel(context.Context, int) ([]words.WordEntry, error) {
	return nil, nil
}

func testCfg() config.Config {
	return config.Config{DefaultLevel: 1, MaxLevel: 3, HistoryLimit: 50}
}

func testSetup(mode Mode) *SetupScreen {
	cache := words.NewLevelCache(emptySource{}, zerolog.Nop())
	return New(mode, noopEventRepo{}, cache, testCfg(), zerolog.Nop())
}

func typeString(s *SetupScreen, text string) {
	for _, r := range text {
		scr, _ := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		*s = *scr.(*SetupScreen)
	}
}

func pressEnter(s *SetupScreen) tea.Cmd {
	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	*s = *scr.(*SetupScreen)
	return cmd
}

func TestSetup_SoloSkipsPlayerCount(t *testing.T) {
	s := testSetup(ModeSolo)
	pressEnter(s) // choose level 1

	if s.step != stepNames {
		t.Fatalf("step = %d, want name entry", s.step)
	}
	if s.playerCount != 1 {
		t.Errorf("playerCount = %d, want 1", s.playerCount)
	}
}

func TestSetup_MultiAsksPlayerCount(t *testing.T) {
	s := testSetup(ModeMulti)
	pressEnter(s)

	if s.step != stepPlayerCount {
		t.Fatalf("step = %d, want player count", s.step)
	}
}

func TestSetup_RejectsPlayerCountOutOfRange(t *testing.T) {
	s := testSetup(ModeMulti)
	pressEnter(s)

	typeString(s, "7")
	pressEnter(s)

	if s.step != stepPlayerCount {
		t.Errorf("step = %d, want to stay on player count", s.step)
	}
	if s.errMsg == "" {
		t.Error("expected validation message for 7 players")
	}
}

func TestSetup_RejectsEmptyName(t *testing.T) {
	s := testSetup(ModeSolo)
	pressEnter(s)

	pressEnter(s) // empty name
	if s.errMsg == "" {
		t.Error("expected validation message for empty name")
	}
	if len(s.names) != 0 {
		t.Errorf("names = %v, want none accepted", s.names)
	}
}

func TestSetup_RejectsDuplicateName(t *testing.T) {
	s := testSetup(ModeMulti)
	pressEnter(s)
	typeString(s, "2")
	pressEnter(s)

	typeString(s, "Ane")
	pressEnter(s)
	typeString(s, "ane")
	pressEnter(s)

	if len(s.names) != 1 {
		t.Errorf("names = %v, want the duplicate rejected", s.names)
	}
	if s.errMsg == "" {
		t.Error("expected validation message for duplicate name")
	}
}

func TestSetup_EmptyVocabularyShowsError(t *testing.T) {
	s := testSetup(ModeSolo)
	pressEnter(s)
	typeString(s, "Jon")
	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("expected pool generation command")
	}

	msg := cmd()
	scr, _ := s.Update(msg)
	s = scr.(*SetupScreen)

	if s.step != stepLevel {
		t.Errorf("step = %d, want back on level selection", s.step)
	}
	if s.errMsg == "" {
		t.Error("expected empty vocabulary message")
	}
}
