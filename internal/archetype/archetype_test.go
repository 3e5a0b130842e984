package archetype

import "testing"

func TestSeedCount(t *testing.T) {
	if Count() != 12 {
		t.Errorf("expected 12 archetypes, got %d", Count())
	}
	if len(All()) != Count() {
		t.Errorf("All() length %d != Count() %d", len(All()), Count())
	}
}

func TestGet(t *testing.T) {
	a, err := Get("hormonal-cycler")
	if err != nil {
		t.Fatalf("Get(hormonal-cycler): %v", err)
	}
	if a.Name != "Hormonal Cycler" {
		t.Errorf("unexpected name %q", a.Name)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown archetype")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}

func TestPriorityRankIsDefinitionOrder(t *testing.T) {
	all := All()
	for i, a := range all {
		if got := PriorityRank(a.ID); got != i {
			t.Errorf("PriorityRank(%q) = %d, want %d", a.ID, got, i)
		}
	}
	if got := PriorityRank("unknown"); got != len(all) {
		t.Errorf("PriorityRank(unknown) = %d, want %d", got, len(all))
	}
}

func TestProfilesCoverAllDimensions(t *testing.T) {
	for _, a := range All() {
		for _, d := range AllDimensions() {
			r, ok := a.Profile[d]
			if !ok {
				t.Errorf("archetype %q missing dimension %q", a.ID, d)
				continue
			}
			if r.Lo < 0 || r.Hi > 10 || r.Lo > r.Hi {
				t.Errorf("archetype %q dimension %q has invalid range %+v", a.ID, d, r)
			}
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Lo: 2, Hi: 5}
	for _, tt := range []struct {
		v    float64
		want bool
	}{
		{1.9, false}, {2, true}, {3.5, true}, {5, true}, {5.1, false},
	} {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
