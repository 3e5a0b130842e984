package consult

import (
	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/nav"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/router"
	"github.com/abhisek/dermatype/internal/screen"
	"github.com/abhisek/dermatype/internal/ui/components"
	"github.com/abhisek/dermatype/internal/ui/layout"
)

// ResultFactory builds the screen shown once the consultation ends.
type ResultFactory func(answers sess.History, demo sess.Demographics) screen.Screen

// ConsultScreen walks the user through the question flow one question
// at a time, showing live confidence as answers accumulate.
type ConsultScreen struct {
	bank          *questionbank.Bank
	policy        sess.Policy
	resultFactory ResultFactory

	answers     sess.History
	current     router.Result
	choice      components.ChoiceList
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*ConsultScreen)(nil)
var _ screen.KeyHintProvider = (*ConsultScreen)(nil)

// New creates a consultation screen positioned at the first question.
func New(bank *questionbank.Bank, policy sess.Policy, resultFactory ResultFactory) *ConsultScreen {
	s := &ConsultScreen{
		bank:          bank,
		policy:        policy,
		resultFactory: resultFactory,
	}

	res, err := router.NextQuestion(s.session())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.setCurrent(res)
	return s
}

func (s *ConsultScreen) session() sess.Session {
	return sess.Session{
		Answers:      s.answers,
		Demographics: sess.DeriveDemographics(s.bank, s.answers),
		Bank:         s.bank,
		Policy:       s.policy,
	}
}

func (s *ConsultScreen) setCurrent(res router.Result) {
	s.current = res
	if res.Question != nil {
		labels := make([]string, len(res.Question.Options))
		for i, o := range res.Question.Options {
			labels[i] = o.Label
		}
		s.choice = components.NewChoiceList(res.Question.Prompt, labels)
	}
}

func (s *ConsultScreen) Title() string {
	return "Consultation"
}

func (s *ConsultScreen) Init() tea.Cmd {
	return nil
}

func (s *ConsultScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-9", Description: "Quick pick"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ConsultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.errMsg != "" {
		return s, tea.Quit
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submitAnswer()
	}
	return s, nil
}

// submitAnswer records the highlighted option and advances the flow.
func (s *ConsultScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.current.Question
	if q == nil || s.choice.Selected >= len(q.Options) {
		return s, nil
	}

	s.answers = append(s.answers, sess.Answer{
		QuestionID: q.ID,
		OptionID:   q.Options[s.choice.Selected].ID,
	})

	res, err := router.NextQuestion(s.session())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if res.Done {
		answers := s.answers
		demo := sess.DeriveDemographics(s.bank, answers)
		next := s.resultFactory(answers, demo)
		return s, func() tea.Msg {
			return nav.ReplaceScreenMsg{Screen: next}
		}
	}

	s.setCurrent(res)
	return s, nil
}
