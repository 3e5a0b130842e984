package consult

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Policy holds the tuning knobs of the questioning engine. These are policy
// constants, not structural invariants, so they load from configuration.
type Policy struct {
	// StopConfidence is the confidence (0–100) at which the router may
	// stop asking questions early.
	StopConfidence float64 `yaml:"stop_confidence"`

	// MinQuestions is the floor of questions that must be asked before an
	// early stop, so one lucky answer cannot end the consultation.
	MinQuestions int `yaml:"min_questions"`
}

// DefaultPolicy returns the standard engine policy.
func DefaultPolicy() Policy {
	return Policy{
		StopConfidence: 85,
		MinQuestions:   6,
	}
}

// Validate checks the policy for usable values.
func (p Policy) Validate() error {
	if p.StopConfidence < 0 || p.StopConfidence > 100 {
		return fmt.Errorf("stop_confidence must be in 0–100, got %v", p.StopConfidence)
	}
	if p.MinQuestions < 1 {
		return fmt.Errorf("min_questions must be at least 1, got %d", p.MinQuestions)
	}
	return nil
}

// configFile is the on-disk YAML shape.
type configFile struct {
	Policy Policy `yaml:"policy"`
}

// LoadPolicy resolves the policy in priority order: defaults, then the YAML
// config file (DERMATYPE_CONFIG or $XDG_CONFIG_HOME/dermatype/config.yaml),
// then DERMATYPE_STOP_CONFIDENCE / DERMATYPE_MIN_QUESTIONS env vars.
func LoadPolicy() (Policy, error) {
	p := DefaultPolicy()

	path, err := configPath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			var cf configFile
			if err := yaml.Unmarshal(data, &cf); err != nil {
				return Policy{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if cf.Policy.StopConfidence != 0 {
				p.StopConfidence = cf.Policy.StopConfidence
			}
			if cf.Policy.MinQuestions != 0 {
				p.MinQuestions = cf.Policy.MinQuestions
			}
		}
	}

	if v := os.Getenv("DERMATYPE_STOP_CONFIDENCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Policy{}, fmt.Errorf("DERMATYPE_STOP_CONFIDENCE: %w", err)
		}
		p.StopConfidence = f
	}
	if v := os.Getenv("DERMATYPE_MIN_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Policy{}, fmt.Errorf("DERMATYPE_MIN_QUESTIONS: %w", err)
		}
		p.MinQuestions = n
	}

	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// configPath resolves the config file location:
// 1. DERMATYPE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/dermatype/config.yaml
// 3. ~/.config/dermatype/config.yaml
func configPath() (string, error) {
	if p := os.Getenv("DERMATYPE_CONFIG"); p != "" {
		return p, nil
	}
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "dermatype", "config.yaml"), nil
}
