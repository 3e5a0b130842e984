package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/ui/components"
	"github.com/abhisek/dermatype/internal/ui/theme"
)

func (s *ResultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s", s.errMsg))
	}
	if s.res == nil {
		return ""
	}

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	name := s.res.Primary
	summary := ""
	if a, err := archetype.Get(s.res.Primary); err == nil {
		name = a.Name
		summary = a.Summary
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(name))
	b.WriteString("\n")
	if summary != "" {
		wrapped := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(summary)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wrapped))
	}
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Confidence", s.res.Confidence/100, true, min(width-8, 60))
	bar.Fill = theme.TierColor(string(s.res.Tier))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("%s confidence", s.res.Tier)))
	b.WriteString("\n\n")

	if len(s.res.Flags) > 0 {
		b.WriteString(center.Foreground(theme.Warning).Bold(true).Render("Worth a dermatologist's look:"))
		b.WriteString("\n")
		for _, f := range s.res.Flags {
			b.WriteString(center.Foreground(theme.Warning).Render(fmt.Sprintf("• %s", f)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.res.Explanation) > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).Render("What drove this match"))
		b.WriteString("\n")
		for _, k := range s.res.Explanation {
			b.WriteString(center.Foreground(theme.Text).Render(s.describeAnswer(k.QuestionID, k.OptionID)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.res.Differential) > 0 {
		var alts []string
		for _, c := range s.res.Differential {
			altName := c.ArchetypeID
			if a, err := archetype.Get(c.ArchetypeID); err == nil {
				altName = a.Name
			}
			alts = append(alts, fmt.Sprintf("%s (%.0f%%)", altName, c.Probability*100))
		}
		b.WriteString(center.Foreground(theme.TextDim).Render("Also considered: " + strings.Join(alts, ", ")))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderAdvice(width))

	if s.savedID != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("Saved as %s", s.savedID)))
	}

	return b.String()
}

func (s *ResultScreen) renderAdvice(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.generating {
		return center.Render(s.spin.View())
	}
	if s.adviceErr != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("Advice unavailable: %s", s.adviceErr))
	}
	if s.adv == nil {
		return ""
	}

	wrapped := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.adv.Render())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, wrapped)
}

func (s *ResultScreen) describeAnswer(questionID, optionID string) string {
	if q, err := s.bank.Question(questionID); err == nil {
		if o, ok := q.Option(optionID); ok {
			return fmt.Sprintf("%s → %s", q.Prompt, o.Label)
		}
	}
	return fmt.Sprintf("%s → %s", questionID, optionID)
}
