package consult

import (
	"slices"

	"github.com/abhisek/dermatype/internal/questionbank"
)

// Answer is a user-submitted (question, option) pair. Once recorded it is
// immutable; a session's answers are append-only.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// History is an ordered, append-only sequence of answers.
type History []Answer

// Answered reports whether the question has been answered.
func (h History) Answered(questionID string) bool {
	for _, a := range h {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// Chose reports whether the given option was chosen for the given question.
func (h History) Chose(questionID, optionID string) bool {
	for _, a := range h {
		if a.QuestionID == questionID && a.OptionID == optionID {
			return true
		}
	}
	return false
}

// Flags collects the medical flags raised by the history, deduplicated and
// sorted. Unknown references are ignored; validation happens elsewhere.
func (h History) Flags(bank *questionbank.Bank) []questionbank.MedicalFlag {
	seen := make(map[questionbank.MedicalFlag]bool)
	for _, a := range h {
		q, err := bank.Question(a.QuestionID)
		if err != nil {
			continue
		}
		o, ok := q.Option(a.OptionID)
		if !ok || o.Flag == "" {
			continue
		}
		seen[o.Flag] = true
	}
	flags := make([]questionbank.MedicalFlag, 0, len(seen))
	for f := range seen {
		flags = append(flags, f)
	}
	slices.Sort(flags)
	return flags
}
