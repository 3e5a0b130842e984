package consult

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/ui/components"
	"github.com/abhisek/dermatype/internal/ui/theme"
)

func (s *ConsultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", s.errMsg))
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width, height)
}

func (s *ConsultScreen) renderQuestion(width, height int) string {
	q := s.current.Question
	if q == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", phaseLabel(s.current.Phase)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  ~%d left", len(s.answers)+1, s.current.EstimatedRemaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n\n")

	b.WriteString(s.renderConfidence(width))

	return b.String()
}

// renderConfidence shows the live confidence bar once answers exist.
func (s *ConsultScreen) renderConfidence(width int) string {
	if len(s.answers) == 0 {
		return ""
	}

	snap := s.current.Snapshot
	bar := components.NewProgressBar("Confidence", snap.Confidence/100, true, min(width-8, 60))
	bar.Fill = theme.TierColor(string(snap.Tier))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if a, err := archetype.Get(snap.Leader); err == nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Leaning: %s", a.Name)))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit the consultation?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers so far will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func phaseLabel(p questionbank.Phase) string {
	switch p {
	case questionbank.PhaseOil:
		return "Oil behavior"
	case questionbank.PhaseSensitivity:
		return "Sensitivity"
	case questionbank.PhaseDifferentiators:
		return "Fine-tuning"
	case questionbank.PhaseDemographics:
		return "About you"
	default:
		return ""
	}
}
