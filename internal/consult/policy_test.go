package consult

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if p.StopConfidence != 85 {
		t.Errorf("got stop confidence %v, want 85", p.StopConfidence)
	}
	if p.MinQuestions != 6 {
		t.Errorf("got min questions %d, want 6", p.MinQuestions)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default policy should validate: %v", err)
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		ok     bool
	}{
		{"valid", Policy{StopConfidence: 85, MinQuestions: 6}, true},
		{"confidence over 100", Policy{StopConfidence: 101, MinQuestions: 6}, false},
		{"negative confidence", Policy{StopConfidence: -1, MinQuestions: 6}, false},
		{"zero min questions", Policy{StopConfidence: 85, MinQuestions: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.ok && err != nil {
				t.Errorf("got %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("got nil, want error")
			}
		})
	}
}

func TestLoadPolicy_Defaults(t *testing.T) {
	t.Setenv("DERMATYPE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DERMATYPE_STOP_CONFIDENCE", "")
	t.Setenv("DERMATYPE_MIN_QUESTIONS", "")

	p, err := LoadPolicy()
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if p != DefaultPolicy() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadPolicy_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "policy:\n  stop_confidence: 90\n  min_questions: 8\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DERMATYPE_CONFIG", path)
	t.Setenv("DERMATYPE_STOP_CONFIDENCE", "")
	t.Setenv("DERMATYPE_MIN_QUESTIONS", "")

	p, err := LoadPolicy()
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if p.StopConfidence != 90 || p.MinQuestions != 8 {
		t.Errorf("got %+v, want 90/8", p)
	}
}

func TestLoadPolicy_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("policy:\n  stop_confidence: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DERMATYPE_CONFIG", path)
	t.Setenv("DERMATYPE_STOP_CONFIDENCE", "70")
	t.Setenv("DERMATYPE_MIN_QUESTIONS", "3")

	p, err := LoadPolicy()
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if p.StopConfidence != 70 || p.MinQuestions != 3 {
		t.Errorf("got %+v, want 70/3", p)
	}
}

func TestLoadPolicy_RejectsBadValues(t *testing.T) {
	t.Setenv("DERMATYPE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DERMATYPE_STOP_CONFIDENCE", "not-a-number")
	t.Setenv("DERMATYPE_MIN_QUESTIONS", "")

	if _, err := LoadPolicy(); err == nil {
		t.Error("got nil, want parse error")
	}

	t.Setenv("DERMATYPE_STOP_CONFIDENCE", "150")
	if _, err := LoadPolicy(); err == nil {
		t.Error("got nil, want validation error for out-of-range confidence")
	}
}
