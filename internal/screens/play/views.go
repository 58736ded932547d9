package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gallegodamar/sinonimoak/internal/game"
	"github.com/gallegodamar/sinonimoak/internal/ui/components"
	"github.com/gallegodamar/sinonimoak/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	var body string
	switch s.gm.Phase() {
	case game.PhaseIntermission:
		body = s.renderIntermission(width)
	case game.PhasePlaying:
		body = s.renderQuestion(width)
	case game.PhaseSummary:
		body = s.renderSummary(width)
	case game.PhaseReview:
		body = s.renderReview(width)
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg)
	}

	return components.CenterFrame(body, width, height)
}

// renderIntermission shows the handoff card before a player's turn.
func (s *PlayScreen) renderIntermission(width int) string {
	cw := components.ContentWidth(width)
	player := s.gm.Players[s.gm.CurrentPlayer()]

	body := theme.Title.Render(player.Name+"ren txanda") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("%d galdera dituzu aurretik.", s.gm.TotalQuestions()/len(s.gm.Players))) + "\n" +
		theme.Hint.Render(fmt.Sprintf("Erantzun oker bakoitzak %d segundo gehitzen ditu.", game.WrongAnswerPenaltySeconds)) + "\n\n" +
		theme.Hint.Render("Sakatu Enter hasteko.")

	return components.Card(body, cw)
}

// renderQuestion shows the active question with progress and, once
// answered, the colored feedback baked into the multichoice component.
func (s *PlayScreen) renderQuestion(width int) string {
	cw := components.ContentWidth(width)
	player := s.gm.Players[s.gm.CurrentPlayer()]

	progress := components.NewCountBar(
		player.Name,
		s.gm.QuestionIndex()+1,
		s.gm.TotalQuestions()/len(s.gm.Players),
		cw-8,
	)

	sections := []string{
		progress.View(),
		components.Card(s.mc.View(), cw),
	}

	if s.gm.Answered() {
		if s.mc.IsCorrect() {
			sections = append(sections, theme.Correct.Render("Oso ondo!"))
		} else {
			q, err := s.gm.CurrentQuestion()
			feedback := "Okerra."
			if err == nil {
				feedback = fmt.Sprintf("Okerra. Erantzuna: %s (+%ds)", q.Answer, game.WrongAnswerPenaltySeconds)
			}
			sections = append(sections, theme.Incorrect.Render(feedback))
		}
	}

	if wrong := s.gm.WrongThisTurn(); wrong > 0 {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("Zigorra: +%d s", wrong*game.WrongAnswerPenaltySeconds)))
	}

	return strings.Join(sections, "\n\n")
}

// renderSummary shows the final standings, winner first.
func (s *PlayScreen) renderSummary(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Sailkapena"))
	b.WriteString("\n\n")

	for rank, p := range s.gm.Standings() {
		line := fmt.Sprintf("%d. %-16s %2d puntu   %6.1f s", rank+1, p.Name, p.Score, p.ElapsedSeconds)
		style := theme.Body
		if rank == 0 {
			style = theme.Correct
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"%d/%d erantzun zuzen guztira", s.gm.TotalCorrect(), s.gm.TotalQuestions())))

	return components.Card(b.String(), cw)
}

// renderReview lists the distinct words of the game with their synonyms.
func (s *PlayScreen) renderReview(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Hitzak"))
	b.WriteString("\n\n")

	for _, e := range s.gm.ReviewWords() {
		b.WriteString(theme.Selected.Render(e.Headword))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(strings.Join(e.Synonyms, ", ")))
		b.WriteString("\n")
	}

	return components.Card(b.String(), cw)
}
