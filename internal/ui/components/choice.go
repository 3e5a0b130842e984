package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dermatype/internal/ui/theme"
)

// ChoiceList is a single-select option list. There is no right answer;
// submitting records whichever option is highlighted.
type ChoiceList struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoiceList creates a choice list with the first option highlighted.
func NewChoiceList(prompt string, options []string) ChoiceList {
	return ChoiceList{
		Prompt:  prompt,
		Options: options,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys jump
// straight to an option and submit it.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
	default:
		if n := numberKey(key); n >= 0 && n < len(c.Options) {
			c.Selected = n
			c.Submitted = true
		}
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == c.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

func numberKey(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}
