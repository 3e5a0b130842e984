package classify

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/confidence"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
)

var maxOilAnswers = consult.History{
	{QuestionID: "oil-midday", OptionID: "shiny-all-over"},
	{QuestionID: "oil-after-cleanse", OptionID: "already-oily"},
	{QuestionID: "oil-pores", OptionID: "large-everywhere"},
	{QuestionID: "oil-blotting", OptionID: "several-daily"},
	{QuestionID: "oil-flaking", OptionID: "never"},
	{QuestionID: "oil-moisturizer", OptionID: "unchanged"},
}

func TestClassify_Idempotent(t *testing.T) {
	bank := questionbank.Default()
	demo := consult.Demographics{Climate: "humid"}

	first, err := Classify(bank, maxOilAnswers, demo)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Classify(bank, maxOilAnswers, demo)
		if err != nil {
			t.Fatalf("Classify run %d: %v", i, err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestClassify_EmptyAnswers(t *testing.T) {
	res, err := Classify(questionbank.Default(), nil, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Tier != confidence.TierLow {
		t.Errorf("got tier %v, want low for an empty session", res.Tier)
	}
	if res.Confidence != 0 {
		t.Errorf("got confidence %v, want 0", res.Confidence)
	}
	if len(res.Flags) != 0 {
		t.Errorf("empty session raised flags: %v", res.Flags)
	}
	if res.QuestionsAsked != 0 {
		t.Errorf("got %d questions asked, want 0", res.QuestionsAsked)
	}
	// A uniform distribution still yields a primary, by priority order.
	if res.Primary != "balanced-glow" {
		t.Errorf("got primary %q, want balanced-glow", res.Primary)
	}
	if len(res.Explanation) != 0 {
		t.Errorf("nothing answered, yet explanation is %v", res.Explanation)
	}
}

func TestClassify_OilHeavySession(t *testing.T) {
	res, err := Classify(questionbank.Default(), maxOilAnswers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Primary != "oil-slick" {
		t.Errorf("got primary %q, want oil-slick", res.Primary)
	}
	if res.Tier != confidence.TierHigh {
		t.Errorf("got tier %v, want high", res.Tier)
	}
	if res.QuestionsAsked != len(maxOilAnswers) {
		t.Errorf("got %d questions asked, want %d", res.QuestionsAsked, len(maxOilAnswers))
	}
	if len(res.Explanation) != maxExplanationAnswers {
		t.Fatalf("got %d explanation entries, want %d", len(res.Explanation), maxExplanationAnswers)
	}
	for i := 1; i < len(res.Explanation); i++ {
		if res.Explanation[i].Contribution > res.Explanation[i-1].Contribution {
			t.Errorf("explanation not sorted: %+v", res.Explanation)
		}
	}
	for _, k := range res.Explanation {
		if k.Contribution != 3 {
			t.Errorf("top contribution should be a 3-point answer, got %+v", k)
		}
	}
}

func TestClassify_DifferentialHasTwoCandidates(t *testing.T) {
	res, err := Classify(questionbank.Default(), maxOilAnswers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(res.Differential) != 2 {
		t.Fatalf("got %d differential candidates, want 2", len(res.Differential))
	}
	if res.Differential[0].Probability < res.Differential[1].Probability {
		t.Errorf("differential out of order: %+v", res.Differential)
	}
	for _, c := range res.Differential {
		if c.ArchetypeID == res.Primary {
			t.Errorf("primary %q appears in its own differential", res.Primary)
		}
		if !archetype.Exists(c.ArchetypeID) {
			t.Errorf("unknown archetype %q in differential", c.ArchetypeID)
		}
		if len(c.PulledAwayBy) > maxPullAwayAnswers {
			t.Errorf("candidate %q has %d pull-away answers, cap is %d",
				c.ArchetypeID, len(c.PulledAwayBy), maxPullAwayAnswers)
		}
	}
}

func TestClassify_FlagsDoNotMoveScores(t *testing.T) {
	// Two banks identical except one option carries a medical flag; the
	// distribution must not change, only the flag list.
	build := func(flag questionbank.MedicalFlag) *questionbank.Bank {
		b, err := questionbank.New([]questionbank.Question{
			{ID: "q1", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
				{ID: "a", Label: "A", Deltas: map[string]float64{"rosy-flush": 2}, Flag: flag},
				{ID: "b", Label: "B", Deltas: map[string]float64{"oil-slick": 2}},
			}},
		})
		if err != nil {
			t.Fatalf("test bank: %v", err)
		}
		return b
	}

	answers := consult.History{{QuestionID: "q1", OptionID: "a"}}
	plain, err := Classify(build(""), answers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	flagged, err := Classify(build(questionbank.FlagSuspectedRosacea), answers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if diff := cmp.Diff(plain.Distribution, flagged.Distribution); diff != "" {
		t.Errorf("flag changed the distribution (-plain +flagged):\n%s", diff)
	}
	if plain.Primary != flagged.Primary {
		t.Errorf("flag changed the primary: %q vs %q", plain.Primary, flagged.Primary)
	}
	if len(plain.Flags) != 0 {
		t.Errorf("unflagged bank raised flags: %v", plain.Flags)
	}
	want := []questionbank.MedicalFlag{questionbank.FlagSuspectedRosacea}
	if !slices.Equal(flagged.Flags, want) {
		t.Errorf("got flags %v, want %v", flagged.Flags, want)
	}
}

func TestClassify_CollectsFlagsFromFullSession(t *testing.T) {
	answers := consult.History{
		{QuestionID: "sens-redness", OptionID: "constant-central"},
		{QuestionID: "diff-breakout-freq", OptionID: "constant"},
		{QuestionID: "diff-breakout-kind", OptionID: "widespread-cysts"},
	}
	res, err := Classify(questionbank.Default(), answers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	want := []questionbank.MedicalFlag{
		questionbank.FlagSevereCysticAcne,
		questionbank.FlagSuspectedRosacea,
	}
	if !slices.Equal(res.Flags, want) {
		t.Errorf("got flags %v, want %v", res.Flags, want)
	}
}

func TestClassify_RejectsInvalidAnswers(t *testing.T) {
	_, err := Classify(questionbank.Default(), consult.History{
		{QuestionID: "oil-midday", OptionID: "not-an-option"},
	}, consult.Demographics{})
	var invalid *consult.InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want *consult.InvalidAnswerError", err)
	}
}

func TestClassify_DemographicsShapeResult(t *testing.T) {
	// An arid climate boosts desert-dry enough to flip a close session.
	answers := consult.History{
		{QuestionID: "oil-midday", OptionID: "flat-tight"},
		{QuestionID: "oil-after-cleanse", OptionID: "comfortable"},
	}
	// flat-tight: desert-dry 3, barrier-breaker 2, mature-renewal 1;
	// comfortable: balanced-glow 3, mature-renewal 1.
	plain, err := Classify(questionbank.Default(), answers, consult.Demographics{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	arid, err := Classify(questionbank.Default(), answers, consult.Demographics{Climate: "arid"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if arid.Distribution["desert-dry"] <= plain.Distribution["desert-dry"] {
		t.Errorf("arid climate should raise desert-dry share: %v vs %v",
			arid.Distribution["desert-dry"], plain.Distribution["desert-dry"])
	}
	if arid.Primary != "desert-dry" {
		t.Errorf("got primary %q, want desert-dry under an arid climate", arid.Primary)
	}
}

func TestTopContributions_CapsAndSorts(t *testing.T) {
	bank := questionbank.Default()
	keys := topContributions(bank, maxOilAnswers, "oil-slick", 10)
	if len(keys) != len(maxOilAnswers) {
		t.Fatalf("got %d contributions, want %d (every answer scored oil-slick)", len(keys), len(maxOilAnswers))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Contribution > keys[i-1].Contribution {
			t.Errorf("contributions not descending: %+v", keys)
		}
	}

	capped := topContributions(bank, maxOilAnswers, "oil-slick", 2)
	if len(capped) != 2 {
		t.Errorf("got %d contributions with cap 2", len(capped))
	}
}

func TestPullAway_IgnoresSharedContributions(t *testing.T) {
	// An answer scoring both archetypes equally separates nothing.
	b, err := questionbank.New([]questionbank.Question{
		{ID: "q1", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "shared", Label: "Shared", Deltas: map[string]float64{
				"oil-slick": 2, "desert-dry": 2}},
			{ID: "oily-only", Label: "Oily only", Deltas: map[string]float64{"oil-slick": 3}},
		}},
		{ID: "q2", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "oily-only", Label: "Oily only", Deltas: map[string]float64{"oil-slick": 3}},
			{ID: "other", Label: "Other"},
		}},
	})
	if err != nil {
		t.Fatalf("test bank: %v", err)
	}
	answers := consult.History{
		{QuestionID: "q1", OptionID: "shared"},
		{QuestionID: "q2", OptionID: "oily-only"},
	}
	keys := pullAway(b, answers, "oil-slick", "desert-dry", 5)
	if len(keys) != 1 {
		t.Fatalf("got %d pull-away answers, want 1: %+v", len(keys), keys)
	}
	if keys[0].QuestionID != "q2" || keys[0].Contribution != 3 {
		t.Errorf("got %+v, want q2 with contribution 3", keys[0])
	}
}
