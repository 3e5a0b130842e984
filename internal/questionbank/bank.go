package questionbank

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/dermatype/internal/archetype"
)

// ErrQuestionNotFound is returned when a question ID is not in the bank.
var ErrQuestionNotFound = errors.New("question not found")

// Bank is a read-only question catalog organized by phase.
// Safe for unlimited concurrent readers.
type Bank struct {
	questions []Question
	byID      map[string]*Question
	byPhase   map[Phase][]Question
	order     map[string]int
}

// defaultBank is the built-in 24-question bank, set by init() in seed.go.
var defaultBank *Bank

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

// New builds a Bank from the given questions, validating structure.
// Question order within each phase follows slice order.
func New(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	b := &Bank{
		questions: slices.Clone(questions),
		byID:      make(map[string]*Question, len(questions)),
		byPhase:   make(map[Phase][]Question),
		order:     make(map[string]int, len(questions)),
	}

	// Stable global order: phase order first, then definition order.
	slices.SortStableFunc(b.questions, func(a, c Question) int {
		return int(a.Phase) - int(c.Phase)
	})
	for i := range b.questions {
		q := &b.questions[i]
		b.byID[q.ID] = q
		b.byPhase[q.Phase] = append(b.byPhase[q.Phase], *q)
		b.order[q.ID] = i
	}
	return b, nil
}

// Question returns the question with the given ID.
func (b *Bank) Question(id string) (Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return *q, nil
}

// QuestionsInPhase returns the ordered questions of a phase.
func (b *Bank) QuestionsInPhase(p Phase) []Question {
	return slices.Clone(b.byPhase[p])
}

// All returns every question in asking order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// validateQuestions performs all structural checks on a question set.
// Returns a combined error describing every problem found, or nil.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
			continue
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q has fewer than 2 options", q.ID))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if optSet[o.ID] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option ID %q", q.ID, o.ID))
			}
			optSet[o.ID] = true

			// The archetype set is closed: every delta must reference
			// a defined archetype.
			for aid := range o.Deltas {
				if !archetype.Exists(aid) {
					errs = append(errs, fmt.Sprintf(
						"question %q option %q references unknown archetype %q", q.ID, o.ID, aid))
				}
			}
		}
	}

	// Skip rules must reference questions from strictly earlier positions
	// so the decision is always over prior answers.
	pos := make(map[string]int, len(questions))
	ordered := slices.Clone(questions)
	slices.SortStableFunc(ordered, func(a, c Question) int {
		return int(a.Phase) - int(c.Phase)
	})
	for i, q := range ordered {
		pos[q.ID] = i
	}
	for _, q := range ordered {
		for _, r := range q.SkipIfAny {
			ref, ok := pos[r.QuestionID]
			if !ok {
				errs = append(errs, fmt.Sprintf(
					"question %q skip rule references unknown question %q", q.ID, r.QuestionID))
				continue
			}
			if ref >= pos[q.ID] {
				errs = append(errs, fmt.Sprintf(
					"question %q skip rule references %q, which is not asked earlier", q.ID, r.QuestionID))
			}
			refQ := questionByID(questions, r.QuestionID)
			if _, ok := refQ.Option(r.OptionID); !ok {
				errs = append(errs, fmt.Sprintf(
					"question %q skip rule references unknown option %q on %q", q.ID, r.OptionID, r.QuestionID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid question bank:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func questionByID(questions []Question, id string) Question {
	for _, q := range questions {
		if q.ID == id {
			return q
		}
	}
	return Question{}
}
