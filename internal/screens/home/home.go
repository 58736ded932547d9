package home

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/router"
	"github.com/gallegodamar/sinonimoak/internal/screen"
	"github.com/gallegodamar/sinonimoak/internal/screens/history"
	"github.com/gallegodamar/sinonimoak/internal/screens/setup"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/ui/components"
	"github.com/gallegodamar/sinonimoak/internal/ui/theme"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// wordCountsMsg delivers the per-level dictionary counts for the stats line.
type wordCountsMsg struct {
	Counts map[int]int
	Err    error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	wordRepo store.WordRepo
	counts   map[int]int
	log      zerolog.Logger
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with injected dependencies.
func New(wordRepo store.WordRepo, eventRepo store.EventRepo, cache *words.LevelCache, cfg config.Config, log zerolog.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "JOKATU", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(setup.ModeMulti, eventRepo, cache, cfg, log),
				}
			}
		}},
		{Label: "BAKARKA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(setup.ModeSolo, eventRepo, cache, cfg, log),
				}
			}
		}},
		{Label: "HISTORIA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo, cfg.HistoryLimit)}
			}
		}},
		{Label: "IRTEN", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		wordRepo: wordRepo,
		log:      log,
	}
}

// Init fetches the dictionary counts off the update loop.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		counts, err := h.wordRepo.CountByLevel(context.Background())
		return wordCountsMsg{Counts: counts, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Sinonimoak"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordCountsMsg:
		if msg.Err != nil {
			h.log.Warn().Err(msg.Err).Msg("dictionary counts unavailable")
			return h, nil
		}
		h.counts = msg.Counts
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render("S I N O N I M O A K")
	subtitle := theme.Subtitle.Width(cw).Render("Euskarazko sinonimoen jokoa")

	sections := []string{title, subtitle}

	if line := renderCountsLine(h.counts); line != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(line))
	}

	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return components.CenterFrame(content, width, height)
}

// renderCountsLine formats the per-level dictionary sizes, e.g.
// "1. maila: 40 hitz   2. maila: 25 hitz".
func renderCountsLine(counts map[int]int) string {
	if len(counts) == 0 {
		return ""
	}
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		parts = append(parts, fmt.Sprintf("%d. maila: %d hitz", level, counts[level]))
	}
	return strings.Join(parts, "   ")
}
