package questionbank

// Phase is an ordered stage of questioning. Phases only move forward.
type Phase int

const (
	PhaseOil Phase = iota
	PhaseSensitivity
	PhaseDifferentiators
	PhaseDemographics
)

// AllPhases returns all phases in asking order.
func AllPhases() []Phase {
	return []Phase{PhaseOil, PhaseSensitivity, PhaseDifferentiators, PhaseDemographics}
}

// String returns the phase identifier used in serialized output.
func (p Phase) String() string {
	switch p {
	case PhaseOil:
		return "oil"
	case PhaseSensitivity:
		return "sensitivity"
	case PhaseDifferentiators:
		return "differentiators"
	case PhaseDemographics:
		return "demographics"
	default:
		return "unknown"
	}
}

// Next returns the following phase, or false if p is the last phase.
func (p Phase) Next() (Phase, bool) {
	if p >= PhaseDemographics {
		return p, false
	}
	return p + 1, true
}

// MedicalFlag is an advisory marker indicating a condition that warrants
// professional referral. Flags never influence archetype scoring.
type MedicalFlag string

const (
	FlagFungalAcnePattern MedicalFlag = "fungal-acne-pattern"
	FlagSevereCysticAcne  MedicalFlag = "severe-cystic-acne"
	FlagSuspectedRosacea  MedicalFlag = "suspected-rosacea"
	FlagEczemaDermatitis  MedicalFlag = "eczema-dermatitis"
	FlagSuddenOnsetChange MedicalFlag = "sudden-onset-change"
)

// DemoAttr records the demographic attribute an option sets when chosen.
// Demographic options carry no score deltas; their effect is applied later
// as scalar multipliers (see the confidence package).
type DemoAttr struct {
	Field string
	Value string
}

// Option is one selectable answer to a question.
type Option struct {
	ID    string
	Label string

	// Deltas maps archetype IDs to score contributions. Negative deltas
	// are allowed; totals are clipped at zero during normalization.
	Deltas map[string]float64

	// Flag, when non-empty, raises the named medical flag if this option
	// is chosen.
	Flag MedicalFlag

	// Demo, when non-zero, records a demographic attribute.
	Demo DemoAttr
}

// SkipRule names a prior (question, option) pair. A question carrying skip
// rules is omitted when any of its rules matches the answer history.
type SkipRule struct {
	QuestionID string
	OptionID   string
}

// Question is an immutable entry in the bank.
type Question struct {
	ID      string
	Phase   Phase
	Prompt  string
	Options []Option

	// SkipIfAny lists the answers that route the user away from this
	// question. Rules are pure functions of prior answers: the same
	// history always produces the same skip decision.
	SkipIfAny []SkipRule
}

// Option returns the option with the given ID, if present.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// ShouldSkip evaluates the question's skip rules against an answer history.
// chose reports whether a given (question, option) pair was answered.
func (q Question) ShouldSkip(chose func(questionID, optionID string) bool) bool {
	for _, r := range q.SkipIfAny {
		if chose(r.QuestionID, r.OptionID) {
			return true
		}
	}
	return false
}
