// Package classify produces the terminal result of a consultation: the
// final ranked archetype distribution, confidence tier, medical flags,
// and an explanation of what drove the match.
package classify

import (
	"github.com/abhisek/dermatype/internal/confidence"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
)

// KeyAnswer names an answer that materially moved the score, with the
// amount it contributed.
type KeyAnswer struct {
	QuestionID   string  `json:"question_id"`
	OptionID     string  `json:"option_id"`
	Contribution float64 `json:"contribution"`
}

// Candidate is a runner-up archetype in the differential diagnosis,
// annotated with the answers that pulled the score away from it.
type Candidate struct {
	ArchetypeID  string      `json:"archetype_id"`
	Probability  float64     `json:"probability"`
	PulledAwayBy []KeyAnswer `json:"pulled_away_by,omitempty"`
}

// Result is the terminal classification output.
type Result struct {
	Primary        string                     `json:"primary"`
	Tier           confidence.Tier            `json:"tier"`
	Confidence     float64                    `json:"confidence"`
	Distribution   map[string]float64         `json:"distribution"`
	Flags          []questionbank.MedicalFlag `json:"medical_flags"`
	QuestionsAsked int                        `json:"questions_asked"`

	// Explanation lists the top discriminating answers behind the
	// primary match, strongest first.
	Explanation []KeyAnswer `json:"explanation"`

	// Differential holds the second- and third-ranked archetypes.
	Differential []Candidate `json:"differential"`
}

// maxExplanationAnswers caps the "why you match" list.
const maxExplanationAnswers = 3

// maxPullAwayAnswers caps the per-candidate differential annotations.
const maxPullAwayAnswers = 2

// Classify runs the full scoring algorithm over all recorded answers and
// assembles the terminal result.
//
// It is pure and idempotent: the same answers always yield the same
// result. Ties on the primary archetype break by fixed priority order
// (earliest-defined archetype wins). Medical flags are evaluated
// independently of scores and never change the archetype assignment.
// Malformed input fails with *consult.InvalidAnswerError.
func Classify(bank *questionbank.Bank, answers consult.History, demo consult.Demographics) (*Result, error) {
	if err := consult.ValidateAnswers(bank, answers); err != nil {
		return nil, err
	}

	sess := consult.Session{Answers: answers, Demographics: demo, Bank: bank}
	snap := confidence.Compute(sess)
	ranked := snap.Ranked()

	primary := ranked[0].ArchetypeID

	res := &Result{
		Primary:        primary,
		Tier:           snap.Tier,
		Confidence:     snap.Confidence,
		Distribution:   snap.Distribution,
		Flags:          answers.Flags(bank),
		QuestionsAsked: len(answers),
		Explanation:    topContributions(bank, answers, primary, maxExplanationAnswers),
	}

	for _, r := range ranked[1:3] {
		res.Differential = append(res.Differential, Candidate{
			ArchetypeID:  r.ArchetypeID,
			Probability:  r.Probability,
			PulledAwayBy: pullAway(bank, answers, primary, r.ArchetypeID, maxPullAwayAnswers),
		})
	}

	return res, nil
}
