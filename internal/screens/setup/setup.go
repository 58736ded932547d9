package setup

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/game"
	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/router"
	"github.com/gallegodamar/sinonimoak/internal/screen"
	"github.com/gallegodamar/sinonimoak/internal/screens/play"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/ui/components"
	"github.com/gallegodamar/sinonimoak/internal/ui/layout"
	"github.com/gallegodamar/sinonimoak/internal/ui/theme"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// Mode selects between a solo run and a pass-the-keyboard match.
type Mode int

const (
	ModeSolo Mode = iota
	ModeMulti
)

type step int

const (
	stepLevel step = iota
	stepPlayerCount
	stepNames
	stepGenerating
)

// poolReadyMsg delivers the generated question pool, or the reason
// generation failed.
type poolReadyMsg struct {
	Pool []quiz.Question
	Err  error
}

// SetupScreen collects level, player count and names, then generates
// the question pool and hands off to the game screen.
type SetupScreen struct {
	mode   Mode
	events store.EventRepo
	cache  *words.LevelCache
	cfg    config.Config
	log    zerolog.Logger

	step        step
	levelMenu   components.Menu
	level       int
	countInput  components.TextInput
	nameInput   components.TextInput
	playerCount int
	names       []string
	errMsg      string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(mode Mode, events store.EventRepo, cache *words.LevelCache, cfg config.Config, log zerolog.Logger) *SetupScreen {
	s := &SetupScreen{
		mode:       mode,
		events:     events,
		cache:      cache,
		cfg:        cfg,
		log:        log,
		step:       stepLevel,
		countInput: components.NewTextInput("2-4", true, 1),
		nameInput:  components.NewTextInput("Izena...", false, 16),
	}

	items := make([]components.MenuItem, 0, cfg.MaxLevel)
	for level := 1; level <= cfg.MaxLevel; level++ {
		level := level
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d. maila", level),
			Action: func() tea.Cmd {
				return s.chooseLevel(level)
			},
		})
	}
	s.levelMenu = components.NewMenu(items)
	if cfg.DefaultLevel >= 1 && cfg.DefaultLevel <= len(items) {
		s.levelMenu.Selected = cfg.DefaultLevel - 1
	}

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	if s.mode == ModeSolo {
		return "Bakarka"
	}
	return "Joko berria"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepLevel:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Maila"},
			{Key: "Enter", Description: "Aukeratu"},
			{Key: "Esc", Description: "Atzera"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jarraitu"},
			{Key: "Esc", Description: "Atzera"},
		}
	}
}

// chooseLevel advances to player-count entry (or straight to the single
// name prompt in solo mode).
func (s *SetupScreen) chooseLevel(level int) tea.Cmd {
	s.level = level
	s.errMsg = ""
	if s.mode == ModeSolo {
		s.playerCount = 1
		s.step = stepNames
		return s.nameInput.Init()
	}
	s.step = stepPlayerCount
	return s.countInput.Init()
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolReadyMsg:
		return s.handlePoolReady(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			switch s.step {
			case stepPlayerCount:
				return s.submitPlayerCount()
			case stepNames:
				return s.submitName()
			}
		}
	}

	var cmd tea.Cmd
	switch s.step {
	case stepLevel:
		s.levelMenu, cmd = s.levelMenu.Update(msg)
	case stepPlayerCount:
		s.countInput, cmd = s.countInput.Update(msg)
	case stepNames:
		s.nameInput, cmd = s.nameInput.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) submitPlayerCount() (screen.Screen, tea.Cmd) {
	n, err := s.countInput.NumericValue()
	if err != nil || n < 1 || n > game.MaxPlayers {
		s.errMsg = fmt.Sprintf("Jokalari kopurua 1 eta %d artekoa izan behar da", game.MaxPlayers)
		return s, nil
	}
	s.errMsg = ""
	s.playerCount = n
	s.step = stepNames
	return s, s.nameInput.Init()
}

func (s *SetupScreen) submitName() (screen.Screen, tea.Cmd) {
	name := s.nameInput.Value()
	if name == "" {
		s.errMsg = "Izena ezin da hutsik egon"
		return s, nil
	}
	for _, existing := range s.names {
		if strings.EqualFold(existing, name) {
			s.errMsg = "Izen hori hartuta dago"
			return s, nil
		}
	}

	s.errMsg = ""
	s.names = append(s.names, name)
	if len(s.names) < s.playerCount {
		s.nameInput.Reset()
		return s, nil
	}

	s.step = stepGenerating
	return s, s.generatePool()
}

// generatePool fetches the level vocabulary and builds the full pool.
// Solo runs bias the draw toward the player's historically missed
// words; matches draw uniformly.
func (s *SetupScreen) generatePool() tea.Cmd {
	level := s.level
	players := len(s.names)
	soloName := ""
	if s.mode == ModeSolo {
		soloName = s.names[0]
	}

	return func() tea.Msg {
		ctx := context.Background()

		vocabulary, err := s.cache.Ensure(ctx, level)
		if err != nil {
			return poolReadyMsg{Err: err}
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
			return poolReadyMsg{Err: err}
		}
		return poolReadyMsg{Pool: pool}
	}
}

func (s *SetupScreen) handlePoolReady(msg poolReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, quiz.ErrEmptyVocabulary) {
			s.errMsg = fmt.Sprintf("Ez dago hitzik %d. mailan. Erabili 'sinonimoak seed' hiztegia kargatzeko.", s.level)
		} else {
			s.errMsg = msg.Err.Error()
		}
		s.step = stepLevel
		return s, nil
	}

	gm, err := game.New(s.level, s.names, msg.Pool)
	if err != nil {
		s.errMsg = err.Error()
		s.step = stepLevel
		return s, nil
	}

	mode := "multi"
	if s.mode == ModeSolo {
		mode = "solo"
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: play.New(gm, mode, s.events, s.cache, s.log),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.step {
	case stepLevel:
		body = theme.Body.Render("Aukeratu maila:") + "\n\n" + s.levelMenu.View()
	case stepPlayerCount:
		body = theme.Body.Render("Zenbat jokalari?") + "\n\n" + s.countInput.View()
	case stepNames:
		prompt := fmt.Sprintf("%d. jokalariaren izena:", len(s.names)+1)
		body = theme.Body.Render(prompt) + "\n\n" + s.nameInput.View()
	case stepGenerating:
		body = theme.Hint.Render("Galderak prestatzen...")
	}

	sections := []string{components.Card(body, cw)}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}
