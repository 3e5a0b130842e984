package questionbank

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

// FormatVersion is the bank file format this build writes and reads.
// Files with a different major version are rejected.
const FormatVersion = "v1.0.0"

// bankFile is the on-disk JSON shape of a custom question bank.
type bankFile struct {
	FormatVersion string         `json:"format_version"`
	Questions     []questionFile `json:"questions"`
}

type questionFile struct {
	ID        string       `json:"id"`
	Phase     string       `json:"phase"`
	Prompt    string       `json:"prompt"`
	SkipIfAny []skipFile   `json:"skip_if_any,omitempty"`
	Options   []optionFile `json:"options"`
}

type skipFile struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

type optionFile struct {
	ID          string             `json:"id"`
	Label       string             `json:"label"`
	Deltas      map[string]float64 `json:"deltas,omitempty"`
	MedicalFlag string             `json:"medical_flag,omitempty"`
	Demographic *demoFile          `json:"demographic,omitempty"`
}

type demoFile struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Load parses and validates a custom question bank from raw JSON.
func Load(raw []byte) (*Bank, error) {
	if err := validateBankJSON(raw); err != nil {
		return nil, err
	}

	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}

	if !semver.IsValid(f.FormatVersion) {
		return nil, fmt.Errorf("invalid format_version %q", f.FormatVersion)
	}
	if semver.Major(f.FormatVersion) != semver.Major(FormatVersion) {
		return nil, fmt.Errorf("unsupported bank format %s, this build reads %s",
			f.FormatVersion, semver.Major(FormatVersion))
	}

	questions := make([]Question, 0, len(f.Questions))
	for _, qf := range f.Questions {
		phase, err := parsePhase(qf.Phase)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", qf.ID, err)
		}
		q := Question{
			ID:     qf.ID,
			Phase:  phase,
			Prompt: qf.Prompt,
		}
		for _, r := range qf.SkipIfAny {
			q.SkipIfAny = append(q.SkipIfAny, SkipRule{
				QuestionID: r.QuestionID,
				OptionID:   r.OptionID,
			})
		}
		for _, of := range qf.Options {
			o := Option{
				ID:     of.ID,
				Label:  of.Label,
				Deltas: of.Deltas,
				Flag:   MedicalFlag(of.MedicalFlag),
			}
			if of.Demographic != nil {
				o.Demo = DemoAttr{Field: of.Demographic.Field, Value: of.Demographic.Value}
			}
			q.Options = append(q.Options, o)
		}
		questions = append(questions, q)
	}

	return New(questions)
}

// LoadFile reads a custom question bank from disk.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

func parsePhase(s string) (Phase, error) {
	for _, p := range AllPhases() {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}
