package consult

import (
	"fmt"

	"github.com/abhisek/dermatype/internal/questionbank"
)

// InvalidAnswerError marks an answer referencing an unknown question or
// option, or a duplicate submission for an already-answered question.
// It indicates a client/integration bug and is never retried.
type InvalidAnswerError struct {
	Index      int
	QuestionID string
	OptionID   string
	Reason     string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer #%d (%s/%s): %s",
		e.Index, e.QuestionID, e.OptionID, e.Reason)
}

// ValidateAnswers checks every answer against the bank. It returns the
// first problem found as an *InvalidAnswerError, or nil.
func ValidateAnswers(bank *questionbank.Bank, answers History) error {
	seen := make(map[string]bool, len(answers))
	for i, a := range answers {
		q, err := bank.Question(a.QuestionID)
		if err != nil {
			return &InvalidAnswerError{
				Index: i, QuestionID: a.QuestionID, OptionID: a.OptionID,
				Reason: "unknown question",
			}
		}
		if _, ok := q.Option(a.OptionID); !ok {
			return &InvalidAnswerError{
				Index: i, QuestionID: a.QuestionID, OptionID: a.OptionID,
				Reason: "unknown option",
			}
		}
		if seen[a.QuestionID] {
			return &InvalidAnswerError{
				Index: i, QuestionID: a.QuestionID, OptionID: a.OptionID,
				Reason: "question answered twice",
			}
		}
		seen[a.QuestionID] = true
	}
	return nil
}
