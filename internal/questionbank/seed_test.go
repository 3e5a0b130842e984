package questionbank

import "testing"

func TestDefault_Structure(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	if b.Len() != 24 {
		t.Errorf("got %d questions, want 24", b.Len())
	}

	perPhase := map[Phase]int{
		PhaseOil:             6,
		PhaseSensitivity:     6,
		PhaseDifferentiators: 8,
		PhaseDemographics:    4,
	}
	for phase, want := range perPhase {
		if got := len(b.QuestionsInPhase(phase)); got != want {
			t.Errorf("phase %s: got %d questions, want %d", phase, got, want)
		}
	}
}

func TestDefault_DemographicOptionsCarryNoDeltas(t *testing.T) {
	for _, q := range Default().QuestionsInPhase(PhaseDemographics) {
		for _, o := range q.Options {
			if len(o.Deltas) != 0 {
				t.Errorf("demographic option %s/%s has score deltas", q.ID, o.ID)
			}
			if o.Demo == (DemoAttr{}) {
				t.Errorf("demographic option %s/%s records no attribute", q.ID, o.ID)
			}
		}
	}
}

func TestDefault_AllMedicalFlagsReachable(t *testing.T) {
	want := map[MedicalFlag]bool{
		FlagFungalAcnePattern: false,
		FlagSevereCysticAcne:  false,
		FlagSuspectedRosacea:  false,
		FlagEczemaDermatitis:  false,
		FlagSuddenOnsetChange: false,
	}
	for _, q := range Default().All() {
		for _, o := range q.Options {
			if o.Flag == "" {
				continue
			}
			if _, known := want[o.Flag]; !known {
				t.Errorf("option %s/%s raises undeclared flag %q", q.ID, o.ID, o.Flag)
				continue
			}
			want[o.Flag] = true
		}
	}
	for flag, seen := range want {
		if !seen {
			t.Errorf("flag %q is raised by no option", flag)
		}
	}
}

func TestDefault_EveryOptionLabelled(t *testing.T) {
	for _, q := range Default().All() {
		if q.Prompt == "" {
			t.Errorf("question %s has no prompt", q.ID)
		}
		for _, o := range q.Options {
			if o.Label == "" {
				t.Errorf("option %s/%s has no label", q.ID, o.ID)
			}
		}
	}
}
