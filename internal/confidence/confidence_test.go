package confidence

import (
	"math"
	"testing"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
)

func testBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	b, err := questionbank.New([]questionbank.Question{
		{ID: "q1", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "oily", Label: "Oily", Deltas: map[string]float64{"oil-slick": 3}},
			{ID: "dry", Label: "Dry", Deltas: map[string]float64{"desert-dry": 3}},
		}},
		{ID: "q2", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "oily", Label: "Oily", Deltas: map[string]float64{"oil-slick": 1}},
			{ID: "dry", Label: "Dry", Deltas: map[string]float64{"desert-dry": 1}},
			{ID: "less-oily", Label: "Less oily", Deltas: map[string]float64{"oil-slick": -5, "desert-dry": 1}},
		}},
		{ID: "q3", Phase: questionbank.PhaseDifferentiators, Prompt: "?", Options: []questionbank.Option{
			{ID: "monthly", Label: "Monthly", Deltas: map[string]float64{"hormonal-cycler": 2}},
			{ID: "always", Label: "Always", Deltas: map[string]float64{"breakout-battler": 2}},
		}},
	})
	if err != nil {
		t.Fatalf("test bank: %v", err)
	}
	return b
}

func session(t *testing.T, answers ...consult.Answer) consult.Session {
	t.Helper()
	return consult.Session{Answers: answers, Bank: testBank(t)}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute_EmptyAnswersIsUniform(t *testing.T) {
	snap := Compute(session(t))

	uniform := 1.0 / float64(archetype.Count())
	for id, p := range snap.Distribution {
		if !approx(p, uniform) {
			t.Errorf("archetype %s: got %v, want uniform %v", id, p, uniform)
		}
	}
	if snap.Confidence != 0 {
		t.Errorf("got confidence %v, want 0 for a uniform distribution", snap.Confidence)
	}
	if snap.Tier != TierLow {
		t.Errorf("got tier %v, want low", snap.Tier)
	}
}

func TestCompute_DistributionSumsToOne(t *testing.T) {
	snap := Compute(session(t,
		consult.Answer{QuestionID: "q1", OptionID: "oily"},
		consult.Answer{QuestionID: "q3", OptionID: "monthly"},
	))
	sum := 0.0
	for _, p := range snap.Distribution {
		if p < 0 {
			t.Errorf("negative probability %v", p)
		}
		sum += p
	}
	if !approx(sum, 1) {
		t.Errorf("distribution sums to %v, want 1", sum)
	}
	if len(snap.Distribution) != archetype.Count() {
		t.Errorf("distribution covers %d archetypes, want %d", len(snap.Distribution), archetype.Count())
	}
}

func TestCompute_OrderIndependent(t *testing.T) {
	forward := Compute(session(t,
		consult.Answer{QuestionID: "q1", OptionID: "oily"},
		consult.Answer{QuestionID: "q2", OptionID: "dry"},
		consult.Answer{QuestionID: "q3", OptionID: "monthly"},
	))
	reversed := Compute(session(t,
		consult.Answer{QuestionID: "q3", OptionID: "monthly"},
		consult.Answer{QuestionID: "q2", OptionID: "dry"},
		consult.Answer{QuestionID: "q1", OptionID: "oily"},
	))
	for id, p := range forward.Distribution {
		if !approx(reversed.Distribution[id], p) {
			t.Errorf("archetype %s: %v forward vs %v reversed", id, p, reversed.Distribution[id])
		}
	}
	if forward.Leader != reversed.Leader || !approx(forward.Confidence, reversed.Confidence) {
		t.Errorf("order changed the outcome: %+v vs %+v", forward, reversed)
	}
}

func TestCompute_SingleAnswerIsDecisive(t *testing.T) {
	// Only one archetype holds score, so the lead over the runner-up is total.
	snap := Compute(session(t, consult.Answer{QuestionID: "q1", OptionID: "oily"}))

	if snap.Leader != "oil-slick" {
		t.Errorf("got leader %q, want oil-slick", snap.Leader)
	}
	if !approx(snap.Distribution["oil-slick"], 1) {
		t.Errorf("got %v for oil-slick, want 1", snap.Distribution["oil-slick"])
	}
	if snap.Confidence != 100 {
		t.Errorf("got confidence %v, want 100", snap.Confidence)
	}
	if snap.Tier != TierHigh {
		t.Errorf("got tier %v, want high", snap.Tier)
	}
}

func TestCompute_ConfidenceMeasuresLeadOverRunnerUp(t *testing.T) {
	// oil-slick 3 vs desert-dry 1 → p1 = 0.75, p2 = 0.25,
	// confidence = 100 × (0.75 − 0.25) / 0.75 = 66.67.
	snap := Compute(session(t,
		consult.Answer{QuestionID: "q1", OptionID: "oily"},
		consult.Answer{QuestionID: "q2", OptionID: "dry"},
	))
	want := 100 * (0.75 - 0.25) / 0.75
	if !approx(snap.Confidence, want) {
		t.Errorf("got confidence %v, want %v", snap.Confidence, want)
	}
	if snap.Tier != TierMedium {
		t.Errorf("got tier %v, want medium", snap.Tier)
	}
	if snap.Leader != "oil-slick" || snap.RunnerUp != "desert-dry" {
		t.Errorf("got leader %q runner-up %q", snap.Leader, snap.RunnerUp)
	}
}

func TestCompute_NegativeTotalsClipToZero(t *testing.T) {
	// oil-slick nets 3 − 5 = −2, which clips to 0 rather than dragging
	// the normalization negative.
	snap := Compute(session(t,
		consult.Answer{QuestionID: "q1", OptionID: "oily"},
		consult.Answer{QuestionID: "q2", OptionID: "less-oily"},
	))
	if snap.Distribution["oil-slick"] != 0 {
		t.Errorf("got %v for oil-slick, want 0 after clipping", snap.Distribution["oil-slick"])
	}
	if !approx(snap.Distribution["desert-dry"], 1) {
		t.Errorf("got %v for desert-dry, want 1", snap.Distribution["desert-dry"])
	}
}

func TestCompute_AllClippedFallsBackToUniform(t *testing.T) {
	b, err := questionbank.New([]questionbank.Question{
		{ID: "q1", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "a", Label: "A", Deltas: map[string]float64{"oil-slick": -2}},
			{ID: "b", Label: "B"},
		}},
	})
	if err != nil {
		t.Fatalf("test bank: %v", err)
	}
	snap := Compute(consult.Session{
		Answers: consult.History{{QuestionID: "q1", OptionID: "a"}},
		Bank:    b,
	})
	uniform := 1.0 / float64(archetype.Count())
	if !approx(snap.Distribution["oil-slick"], uniform) {
		t.Errorf("got %v, want uniform fallback %v", snap.Distribution["oil-slick"], uniform)
	}
}

func TestCompute_TieBreaksByPriorityOrder(t *testing.T) {
	// balanced-glow and desert-dry would tie; with no score at all,
	// everything ties, and priority order decides the leader.
	snap := Compute(session(t))
	if snap.Leader != "balanced-glow" {
		t.Errorf("got leader %q, want balanced-glow (first by priority)", snap.Leader)
	}
	if snap.RunnerUp != "desert-dry" {
		t.Errorf("got runner-up %q, want desert-dry (second by priority)", snap.RunnerUp)
	}
}

func TestCompute_ModifierChangesRelativeScores(t *testing.T) {
	// hormonal-cycler 2 vs breakout-battler 2 is a dead tie without
	// demographics; sex=female scales hormonal-cycler to 2.5.
	b, err := questionbank.New([]questionbank.Question{
		{ID: "q1", Phase: questionbank.PhaseOil, Prompt: "?", Options: []questionbank.Option{
			{ID: "both", Label: "Both", Deltas: map[string]float64{
				"hormonal-cycler": 2, "breakout-battler": 2}},
			{ID: "neither", Label: "Neither"},
		}},
	})
	if err != nil {
		t.Fatalf("test bank: %v", err)
	}
	answers := consult.History{{QuestionID: "q1", OptionID: "both"}}

	plain := Compute(consult.Session{Answers: answers, Bank: b})
	if !approx(plain.Distribution["hormonal-cycler"], plain.Distribution["breakout-battler"]) {
		t.Fatalf("expected a tie without demographics, got %v vs %v",
			plain.Distribution["hormonal-cycler"], plain.Distribution["breakout-battler"])
	}

	adjusted := Compute(consult.Session{
		Answers:      answers,
		Demographics: consult.Demographics{Sex: "female"},
		Bank:         b,
	})
	if adjusted.Distribution["hormonal-cycler"] <= adjusted.Distribution["breakout-battler"] {
		t.Errorf("female modifier should favor hormonal-cycler: %v vs %v",
			adjusted.Distribution["hormonal-cycler"], adjusted.Distribution["breakout-battler"])
	}
	if adjusted.Leader != "hormonal-cycler" {
		t.Errorf("got leader %q, want hormonal-cycler", adjusted.Leader)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{100, TierHigh},
		{85, TierHigh},
		{84.9, TierMedium},
		{60, TierMedium},
		{59.9, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		if got := TierFor(tt.confidence); got != tt.want {
			t.Errorf("TierFor(%v) = %v, want %v", tt.confidence, got, tt.want)
		}
	}
}

func TestSnapshot_RankedIsDeterministic(t *testing.T) {
	snap := Compute(session(t, consult.Answer{QuestionID: "q1", OptionID: "oily"}))
	first := snap.Ranked()
	for i := 0; i < 10; i++ {
		again := snap.Ranked()
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("rank %d differs across calls: %+v vs %+v", j, first[j], again[j])
			}
		}
	}
	if first[0].ArchetypeID != "oil-slick" {
		t.Errorf("got top rank %q, want oil-slick", first[0].ArchetypeID)
	}
}

func TestModifiers_TableIsCopied(t *testing.T) {
	m := Modifiers()
	if len(m) == 0 {
		t.Fatal("modifier table is empty")
	}
	m[0].Factor = -1
	if Modifiers()[0].Factor == -1 {
		t.Error("mutating the returned slice leaked into the table")
	}
}

func TestModifiers_ReferenceKnownArchetypes(t *testing.T) {
	for _, m := range Modifiers() {
		if !archetype.Exists(m.ArchetypeID) {
			t.Errorf("modifier %+v references unknown archetype", m)
		}
		if m.Factor <= 0 {
			t.Errorf("modifier %+v has non-positive factor", m)
		}
	}
}
