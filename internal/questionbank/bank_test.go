package questionbank

import (
	"errors"
	"strings"
	"testing"
)

func twoOptions() []Option {
	return []Option{
		{ID: "yes", Label: "Yes", Deltas: map[string]float64{"oil-slick": 1}},
		{ID: "no", Label: "No", Deltas: map[string]float64{"desert-dry": 1}},
	}
}

func TestNew_ValidBank(t *testing.T) {
	b, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Prompt: "?", Options: twoOptions()},
		{ID: "q2", Phase: PhaseSensitivity, Prompt: "?", Options: twoOptions()},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("got %d questions, want 2", b.Len())
	}
}

func TestNew_DuplicateQuestionID(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: twoOptions()},
		{ID: "q1", Phase: PhaseOil, Options: twoOptions()},
	})
	if err == nil || !strings.Contains(err.Error(), `duplicate question ID: "q1"`) {
		t.Errorf("got %v, want duplicate question ID error", err)
	}
}

func TestNew_TooFewOptions(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: []Option{{ID: "only", Label: "Only"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "fewer than 2 options") {
		t.Errorf("got %v, want fewer-than-2-options error", err)
	}
}

func TestNew_DuplicateOptionID(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: []Option{
			{ID: "a", Label: "A"},
			{ID: "a", Label: "Also A"},
		}},
	})
	if err == nil || !strings.Contains(err.Error(), `duplicate option ID "a"`) {
		t.Errorf("got %v, want duplicate option ID error", err)
	}
}

func TestNew_UnknownArchetypeDelta(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: []Option{
			{ID: "a", Label: "A", Deltas: map[string]float64{"no-such-archetype": 2}},
			{ID: "b", Label: "B"},
		}},
	})
	if err == nil || !strings.Contains(err.Error(), `unknown archetype "no-such-archetype"`) {
		t.Errorf("got %v, want unknown archetype error", err)
	}
}

func TestNew_SkipRuleMustReferenceEarlierQuestion(t *testing.T) {
	// q1 tries to skip based on q2, which is asked later.
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: twoOptions(),
			SkipIfAny: []SkipRule{{QuestionID: "q2", OptionID: "yes"}}},
		{ID: "q2", Phase: PhaseSensitivity, Options: twoOptions()},
	})
	if err == nil || !strings.Contains(err.Error(), "not asked earlier") {
		t.Errorf("got %v, want not-asked-earlier error", err)
	}
}

func TestNew_SkipRuleUnknownQuestion(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: twoOptions()},
		{ID: "q2", Phase: PhaseSensitivity, Options: twoOptions(),
			SkipIfAny: []SkipRule{{QuestionID: "ghost", OptionID: "yes"}}},
	})
	if err == nil || !strings.Contains(err.Error(), `unknown question "ghost"`) {
		t.Errorf("got %v, want unknown question error", err)
	}
}

func TestNew_SkipRuleUnknownOption(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: twoOptions()},
		{ID: "q2", Phase: PhaseSensitivity, Options: twoOptions(),
			SkipIfAny: []SkipRule{{QuestionID: "q1", OptionID: "maybe"}}},
	})
	if err == nil || !strings.Contains(err.Error(), `unknown option "maybe"`) {
		t.Errorf("got %v, want unknown option error", err)
	}
}

func TestNew_ReportsAllProblemsAtOnce(t *testing.T) {
	_, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Options: []Option{{ID: "only", Label: "Only"}}},
		{ID: "q1", Phase: PhaseOil, Options: twoOptions()},
	})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "fewer than 2 options") || !strings.Contains(msg, "duplicate question ID") {
		t.Errorf("error should list every problem, got: %v", err)
	}
}

func TestBank_QuestionLookup(t *testing.T) {
	b, err := New([]Question{
		{ID: "q1", Phase: PhaseOil, Prompt: "first", Options: twoOptions()},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	q, err := b.Question("q1")
	if err != nil {
		t.Fatalf("Question(q1): %v", err)
	}
	if q.Prompt != "first" {
		t.Errorf("got prompt %q, want %q", q.Prompt, "first")
	}

	_, err = b.Question("missing")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("got %v, want ErrQuestionNotFound", err)
	}
}

func TestBank_OrdersByPhase(t *testing.T) {
	// Defined out of phase order; All() must return phase order.
	b, err := New([]Question{
		{ID: "late", Phase: PhaseDemographics, Options: twoOptions()},
		{ID: "early", Phase: PhaseOil, Options: twoOptions()},
		{ID: "mid", Phase: PhaseDifferentiators, Options: twoOptions()},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := b.All()
	want := []string{"early", "mid", "late"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestQuestion_ShouldSkip(t *testing.T) {
	q := Question{
		ID: "q3",
		SkipIfAny: []SkipRule{
			{QuestionID: "q1", OptionID: "a"},
			{QuestionID: "q2", OptionID: "b"},
		},
	}

	chose := func(chosen ...[2]string) func(string, string) bool {
		return func(qid, oid string) bool {
			for _, c := range chosen {
				if c[0] == qid && c[1] == oid {
					return true
				}
			}
			return false
		}
	}

	if q.ShouldSkip(chose()) {
		t.Error("empty history should not skip")
	}
	if !q.ShouldSkip(chose([2]string{"q1", "a"})) {
		t.Error("matching first rule should skip")
	}
	if !q.ShouldSkip(chose([2]string{"q2", "b"})) {
		t.Error("matching any rule should skip")
	}
	if q.ShouldSkip(chose([2]string{"q1", "b"})) {
		t.Error("same question, different option should not skip")
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseOil, "oil"},
		{PhaseSensitivity, "sensitivity"},
		{PhaseDifferentiators, "differentiators"},
		{PhaseDemographics, "demographics"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPhase_Next(t *testing.T) {
	p := PhaseOil
	order := []Phase{PhaseSensitivity, PhaseDifferentiators, PhaseDemographics}
	for _, want := range order {
		next, ok := p.Next()
		if !ok || next != want {
			t.Fatalf("Next after %v: got %v/%v, want %v/true", p, next, ok, want)
		}
		p = next
	}
	if _, ok := p.Next(); ok {
		t.Error("demographics is the last phase, Next should report false")
	}
}
