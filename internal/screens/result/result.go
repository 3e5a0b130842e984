package result

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dermatype/internal/advice"
	"github.com/abhisek/dermatype/internal/classify"
	sess "github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/screen"
	"github.com/abhisek/dermatype/internal/store"
	"github.com/abhisek/dermatype/internal/ui/components"
	"github.com/abhisek/dermatype/internal/ui/layout"

	"github.com/google/uuid"
)

// savedMsg is sent when the consultation has been persisted.
type savedMsg struct {
	ID  string
	Err error
}

// adviceMsg is sent when advice generation finishes.
type adviceMsg struct {
	Advice *advice.Advice
	Err    error
}

// ResultScreen shows the final classification, persists it, and offers
// optional AI-generated care advice.
type ResultScreen struct {
	bank      *questionbank.Bank
	answers   sess.History
	demo      sess.Demographics
	repo      store.ConsultationRepo
	adviceSvc *advice.Service

	res        *classify.Result
	errMsg     string
	savedID    string
	adv        *advice.Advice
	adviceErr  string
	generating bool
	spin       components.Spinner
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New classifies the finished consultation and builds the result screen.
// Pass a nil repo to skip persistence and a nil advice service to hide
// the advice action.
func New(bank *questionbank.Bank, answers sess.History, demo sess.Demographics, repo store.ConsultationRepo, adviceSvc *advice.Service) *ResultScreen {
	s := &ResultScreen{
		bank:      bank,
		answers:   answers,
		demo:      demo,
		repo:      repo,
		adviceSvc: adviceSvc,
	}

	res, err := classify.Classify(bank, answers, demo)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.res = res
	return s
}

func (s *ResultScreen) Title() string {
	return "Your Skin Profile"
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.repo == nil || s.res == nil {
		return nil
	}
	return s.saveCmd()
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.adviceSvc != nil && s.adv == nil && !s.generating {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "Care advice"})
	}
	hints = append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err == nil {
			s.savedID = msg.ID
		}
		return s, nil

	case adviceMsg:
		s.generating = false
		if msg.Err != nil {
			s.adviceErr = msg.Err.Error()
			return s, nil
		}
		s.adv = msg.Advice
		return s, s.persistAdviceCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "a", "A":
			if s.adviceSvc != nil && s.adv == nil && !s.generating {
				s.generating = true
				s.adviceErr = ""
				s.spin = components.NewSpinner("Putting together your care advice...")
				return s, tea.Batch(s.generateAdviceCmd(), s.spin.Init())
			}
		case "q", "Q", "esc", "enter":
			return s, tea.Quit
		}

	default:
		if s.generating {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *ResultScreen) saveCmd() tea.Cmd {
	c := &store.Consultation{
		ID:           uuid.NewString(),
		Answers:      s.answers,
		Demographics: s.demo,
		Result:       s.res,
	}
	return func() tea.Msg {
		err := s.repo.Save(context.Background(), c)
		return savedMsg{ID: c.ID, Err: err}
	}
}

func (s *ResultScreen) generateAdviceCmd() tea.Cmd {
	res, demo := s.res, s.demo
	return func() tea.Msg {
		a, err := s.adviceSvc.Generate(context.Background(), res, demo)
		return adviceMsg{Advice: a, Err: err}
	}
}

// persistAdviceCmd attaches the rendered advice to the saved record.
// Best effort: the advice is already on screen either way.
func (s *ResultScreen) persistAdviceCmd() tea.Cmd {
	if s.repo == nil || s.savedID == "" || s.adv == nil {
		return nil
	}
	id, text := s.savedID, s.adv.Render()
	return func() tea.Msg {
		_ = s.repo.SetAdvice(context.Background(), id, text)
		return nil
	}
}
