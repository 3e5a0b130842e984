package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dermatype/internal/advice"
	sess "github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/nav"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/screen"
	consultscreen "github.com/abhisek/dermatype/internal/screens/consult"
	"github.com/abhisek/dermatype/internal/screens/result"
	"github.com/abhisek/dermatype/internal/screens/welcome"
	"github.com/abhisek/dermatype/internal/store"
	"github.com/abhisek/dermatype/internal/ui/layout"
)

// Options wires the consultation flow's dependencies. Consultations and
// Advice are optional; without them the flow runs classify-only.
type Options struct {
	Bank          *questionbank.Bank
	Policy        sess.Policy
	Consultations store.ConsultationRepo
	Advice        *advice.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	stack  *nav.Stack
	width  int
	height int
}

// newAppModel builds the welcome → consult → result screen flow.
func newAppModel(opts Options) AppModel {
	resultFactory := func(answers sess.History, demo sess.Demographics) screen.Screen {
		return result.New(opts.Bank, answers, demo, opts.Consultations, opts.Advice)
	}
	consultFactory := func() screen.Screen {
		return consultscreen.New(opts.Bank, opts.Policy, resultFactory)
	}
	return AppModel{
		stack: nav.New(welcome.New(consultFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.stack.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.stack.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.stack.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinted.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.stack.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
