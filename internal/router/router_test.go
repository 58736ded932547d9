package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gallegodamar/sinonimoak/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	setup := &stubScreen{title: "setup"}
	r.Push(setup)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("expected active 'setup', got %q", r.Active().Title())
	}
	if !setup.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	setup := &stubScreen{title: "setup"}
	r.Push(setup)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	game := &stubScreen{title: "game"}
	r.Replace(game)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "game" {
		t.Errorf("expected active 'game', got %q", r.Active().Title())
	}
	if !game.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	game := &stubScreen{title: "game"}
	r.Update(ReplaceScreenMsg{Screen: game})

	if r.Active().Title() != "game" {
		t.Errorf("expected active 'game', got %q", r.Active().Title())
	}
	if !game.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	setup := &stubScreen{title: "setup"}
	r.Push(setup)

	game := &stubScreen{title: "game"}
	r.Replace(game)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "game" {
		t.Errorf("expected active 'game', got %q", r.Active().Title())
	}
}
