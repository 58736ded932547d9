package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/gallegodamar/sinonimoak/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. When Total is set the
// right-hand annotation shows "current/total" instead of a percentage.
type ProgressBar struct {
	Label   string
	Current int
	Total   int
	Percent float64
	Width   int
}

// NewProgressBar creates a percentage-annotated progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// NewCountBar creates a progress bar annotated with "current/total".
func NewCountBar(label string, current, total, width int) ProgressBar {
	percent := 0.0
	if total > 0 {
		percent = float64(current) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Current: current,
		Total:   total,
		Percent: percent,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	annotation := fmt.Sprintf("  %d%%", int(p.Percent*100))
	if p.Total > 0 {
		annotation = fmt.Sprintf("  %d/%d", p.Current, p.Total)
	}

	barWidth := p.Width - lipgloss.Width(result) - len(annotation)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(annotation)

	return result
}
