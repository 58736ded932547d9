package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gallegodamar/sinonimoak/internal/screen"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/ui/layout"
	"github.com/gallegodamar/sinonimoak/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs []store.RunSummaryRecord
	Err  error
}

// HistoryScreen lists past runs, newest first.
type HistoryScreen struct {
	events   store.EventRepo
	limit    int
	runs     []store.RunSummaryRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo, limit int) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		limit:    limit,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.events.QueryRunSummaries(context.Background(), store.QueryOpts{Limit: s.limit})
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historia"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Xehetasunak"},
		{Key: "↑↓", Description: "Nabigatu"},
		{Key: "Esc", Description: "Atzera"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErrorea: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Historia kargatzen...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Oraindik ez dago jokorik.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		dateStr := run.Timestamp.Format("2006-01-02 15:04")
		mins := run.DurationSecs / 60
		secs := run.DurationSecs % 60

		var accuracy float64
		if run.QuestionsServed > 0 {
			accuracy = float64(run.CorrectAnswers) / float64(run.QuestionsServed) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d. maila  %d jokalari  %d:%02d  %%%.0f zuzen",
			prefix, dateStr, run.Level, len(run.Standings), mins, secs, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for rank, st := range run.Standings {
				detail := fmt.Sprintf("    %d. %-16s %2d puntu  %6.1f s",
					rank+1, st.Name, st.Score, st.ElapsedSeconds)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
