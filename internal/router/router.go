// Package router selects the next consultation question. It is a
// forward-only state machine over the question phases: a phase is left
// once every question in it is answered or skipped, and no phase is ever
// revisited. Given an identical answer sequence it always proposes the
// same next question, with no randomness, no hidden state.
package router

import (
	"fmt"

	"github.com/abhisek/dermatype/internal/confidence"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
)

// Result is the router's output contract. When Done is false, Question,
// Phase, and EstimatedRemaining describe the next step; when Done is true
// the Snapshot is the session's final confidence state.
type Result struct {
	Done     bool                   `json:"done"`
	Question *questionbank.Question `json:"question,omitempty"`
	Phase    questionbank.Phase     `json:"-"`
	Snapshot confidence.Snapshot    `json:"snapshot"`

	// EstimatedRemaining counts the currently un-skipped, unanswered
	// questions ahead. A heuristic, not a guarantee: later answers can
	// skip questions still counted here.
	EstimatedRemaining int `json:"estimated_remaining"`
}

// InvariantViolation reports a broken router contract: a state that is
// unreachable when the question bank and skip rules are well-formed.
// It is a programming error, fatal rather than retryable.
type InvariantViolation struct {
	Detail   string
	Answered []string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("router invariant violation: %s (answered: %v)", e.Detail, e.Answered)
}

// Advance is the inbound entry point: it validates the submitted answers,
// then routes. Invalid answers surface as *consult.InvalidAnswerError.
func Advance(bank *questionbank.Bank, policy consult.Policy, answers consult.History, demo consult.Demographics) (Result, error) {
	sess := consult.Session{
		Answers:      answers,
		Demographics: demo,
		Bank:         bank,
		Policy:       policy,
	}
	if err := sess.Validate(); err != nil {
		return Result{}, err
	}
	return NextQuestion(sess)
}

// NextQuestion returns the next question to ask, or a done result.
//
// The session is assumed validated. The early stop fires only once the
// minimum-question floor has been met, so a single lucky answer cannot
// end the consultation.
func NextQuestion(sess consult.Session) (Result, error) {
	if sess.Bank == nil || sess.Bank.Len() == 0 {
		return Result{}, &InvariantViolation{
			Detail:   "no question bank",
			Answered: sess.AnsweredIDs(),
		}
	}

	snap := confidence.Compute(sess)

	if snap.Confidence >= sess.Policy.StopConfidence && len(sess.Answers) >= sess.Policy.MinQuestions {
		return Result{Done: true, Snapshot: snap}, nil
	}

	for _, phase := range questionbank.AllPhases() {
		for _, q := range sess.Bank.QuestionsInPhase(phase) {
			if sess.Answers.Answered(q.ID) {
				continue
			}
			if q.ShouldSkip(sess.Answers.Chose) {
				continue
			}
			if len(q.Options) == 0 {
				return Result{}, &InvariantViolation{
					Detail:   fmt.Sprintf("question %q has no options", q.ID),
					Answered: sess.AnsweredIDs(),
				}
			}
			question := q
			return Result{
				Question:           &question,
				Phase:              phase,
				Snapshot:           snap,
				EstimatedRemaining: estimateRemaining(sess, phase),
			}, nil
		}
	}

	// Every phase exhausted: the consultation is complete.
	return Result{Done: true, Snapshot: snap}, nil
}

// estimateRemaining counts unanswered, currently un-skipped questions in
// the given phase and all later phases.
func estimateRemaining(sess consult.Session, from questionbank.Phase) int {
	n := 0
	for _, phase := range questionbank.AllPhases() {
		if phase < from {
			continue
		}
		for _, q := range sess.Bank.QuestionsInPhase(phase) {
			if sess.Answers.Answered(q.ID) || q.ShouldSkip(sess.Answers.Chose) {
				continue
			}
			n++
		}
	}
	return n
}
