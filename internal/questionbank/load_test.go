package questionbank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validBankJSON = `{
  "format_version": "v1.0.0",
  "questions": [
    {
      "id": "shine",
      "phase": "oil",
      "prompt": "How shiny is your skin by noon?",
      "options": [
        {"id": "very", "label": "Very", "deltas": {"oil-slick": 3}},
        {"id": "not", "label": "Not at all", "deltas": {"desert-dry": 2}}
      ]
    },
    {
      "id": "redness",
      "phase": "sensitivity",
      "prompt": "Do you flush easily?",
      "skip_if_any": [{"question_id": "shine", "option_id": "very"}],
      "options": [
        {"id": "yes", "label": "Yes", "deltas": {"rosy-flush": 3}, "medical_flag": "suspected-rosacea"},
        {"id": "no", "label": "No"}
      ]
    },
    {
      "id": "age",
      "phase": "demographics",
      "prompt": "Your age bracket?",
      "options": [
        {"id": "teen", "label": "Under 18", "demographic": {"field": "age", "value": "teen"}},
        {"id": "adult", "label": "18+", "demographic": {"field": "age", "value": "adult"}}
      ]
    }
  ]
}`

func TestLoad_ValidBank(t *testing.T) {
	b, err := Load([]byte(validBankJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("got %d questions, want 3", b.Len())
	}

	q, err := b.Question("redness")
	if err != nil {
		t.Fatalf("Question(redness): %v", err)
	}
	if q.Phase != PhaseSensitivity {
		t.Errorf("got phase %v, want sensitivity", q.Phase)
	}
	if len(q.SkipIfAny) != 1 || q.SkipIfAny[0].QuestionID != "shine" {
		t.Errorf("skip rules not loaded: %+v", q.SkipIfAny)
	}
	o, ok := q.Option("yes")
	if !ok {
		t.Fatal("option yes missing")
	}
	if o.Flag != FlagSuspectedRosacea {
		t.Errorf("got flag %q, want suspected-rosacea", o.Flag)
	}

	age, err := b.Question("age")
	if err != nil {
		t.Fatalf("Question(age): %v", err)
	}
	teen, _ := age.Option("teen")
	if teen.Demo != (DemoAttr{Field: "age", Value: "teen"}) {
		t.Errorf("got demographic %+v", teen.Demo)
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("got %v, want invalid JSON error", err)
	}
}

func TestLoad_SchemaRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"no format version", `{"questions": []}`},
		{"no questions", `{"format_version": "v1.0.0"}`},
		{"empty questions", `{"format_version": "v1.0.0", "questions": []}`},
		{"question without prompt", `{"format_version": "v1.0.0", "questions": [
			{"id": "q", "phase": "oil", "options": [
				{"id": "a", "label": "A"}, {"id": "b", "label": "B"}]}]}`},
		{"single option", `{"format_version": "v1.0.0", "questions": [
			{"id": "q", "phase": "oil", "prompt": "?", "options": [
				{"id": "a", "label": "A"}]}]}`},
		{"bad phase", `{"format_version": "v1.0.0", "questions": [
			{"id": "q", "phase": "lunar", "prompt": "?", "options": [
				{"id": "a", "label": "A"}, {"id": "b", "label": "B"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.json)); err == nil {
				t.Error("got nil, want schema validation error")
			}
		})
	}
}

func TestLoad_RejectsWrongMajorVersion(t *testing.T) {
	bad := strings.Replace(validBankJSON, `"v1.0.0"`, `"v2.0.0"`, 1)
	_, err := Load([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "unsupported bank format") {
		t.Errorf("got %v, want unsupported format error", err)
	}
}

func TestLoad_AcceptsNewerMinorVersion(t *testing.T) {
	newer := strings.Replace(validBankJSON, `"v1.0.0"`, `"v1.3.0"`, 1)
	if _, err := Load([]byte(newer)); err != nil {
		t.Errorf("minor version bump should load: %v", err)
	}
}

func TestLoad_RejectsInvalidVersionString(t *testing.T) {
	bad := strings.Replace(validBankJSON, `"v1.0.0"`, `"1.0"`, 1)
	_, err := Load([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "invalid format_version") {
		t.Errorf("got %v, want invalid format_version error", err)
	}
}

func TestLoad_StructuralValidationStillRuns(t *testing.T) {
	// Schema-valid but structurally broken: delta names a made-up archetype.
	bad := strings.Replace(validBankJSON, `"oil-slick": 3`, `"made-up": 3`, 1)
	_, err := Load([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), `unknown archetype "made-up"`) {
		t.Errorf("got %v, want unknown archetype error", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(validBankJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("got %d questions, want 3", b.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("got nil for a missing file, want error")
	}
}
