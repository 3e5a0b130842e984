package consult

import (
	"github.com/abhisek/dermatype/internal/questionbank"
)

// Session is the explicit state of one consultation, passed by value into
// every engine operation. The engine keeps no state between calls; the
// caller owns persistence of the answer sequence.
type Session struct {
	Answers      History
	Demographics Demographics
	Bank         *questionbank.Bank
	Policy       Policy
}

// NewSession creates an empty session over the given bank and policy.
func NewSession(bank *questionbank.Bank, policy Policy) Session {
	return Session{Bank: bank, Policy: policy}
}

// WithAnswer returns a copy of the session with the answer appended.
// The original session is not modified.
func (s Session) WithAnswer(a Answer) Session {
	answers := make(History, 0, len(s.Answers)+1)
	answers = append(answers, s.Answers...)
	answers = append(answers, a)
	s.Answers = answers
	return s
}

// WithDemographics returns a copy of the session with the explicit
// demographics record replaced.
func (s Session) WithDemographics(d Demographics) Session {
	s.Demographics = d
	return s
}

// EffectiveDemographics merges demographics derived from demographic-phase
// answers with the explicitly supplied record; explicit fields win.
func (s Session) EffectiveDemographics() Demographics {
	return DeriveDemographics(s.Bank, s.Answers).Merge(s.Demographics)
}

// Flags returns the medical flags raised so far, sorted.
func (s Session) Flags() []questionbank.MedicalFlag {
	return s.Answers.Flags(s.Bank)
}

// Validate checks the session's answers against its bank.
func (s Session) Validate() error {
	return ValidateAnswers(s.Bank, s.Answers)
}

// AnsweredIDs returns the IDs of answered questions in submission order.
func (s Session) AnsweredIDs() []string {
	ids := make([]string, len(s.Answers))
	for i, a := range s.Answers {
		ids[i] = a.QuestionID
	}
	return ids
}
