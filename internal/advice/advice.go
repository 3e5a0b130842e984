// Package advice turns a finished classification into personalized
// skincare guidance using a language model.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/classify"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/llm"
)

// Advice is the generated guidance for one consultation.
type Advice struct {
	Summary            string   `json:"summary"`
	MorningRoutine     []string `json:"morning_routine"`
	EveningRoutine     []string `json:"evening_routine"`
	IngredientCautions []string `json:"ingredient_cautions"`
}

// Render formats the advice for plain-text display.
func (a *Advice) Render() string {
	var b strings.Builder
	b.WriteString(a.Summary)
	b.WriteString("\n\nMorning routine:\n")
	for i, step := range a.MorningRoutine {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	b.WriteString("\nEvening routine:\n")
	for i, step := range a.EveningRoutine {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	if len(a.IngredientCautions) > 0 {
		b.WriteString("\nApproach with care:\n")
		for _, c := range a.IngredientCautions {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}
	return b.String()
}

// Config tunes advice generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.4,
	}
}

// Service generates advice from classification results.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advice service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces advice for a classification result. It blocks until
// the model responds or ctx is done.
func (s *Service) Generate(ctx context.Context, result *classify.Result, demo consult.Demographics) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "advice")

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(result, demo)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var a Advice
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	return &a, nil
}

const adviceSystemPrompt = `You are a knowledgeable, cautious skincare advisor. You give practical routine suggestions based on a skin profile assessment. You are not a doctor and never diagnose; when medical flags are present you recommend seeing a dermatologist for those concerns.`

func buildAdviceUserMessage(result *classify.Result, demo consult.Demographics) string {
	var b strings.Builder

	primary, _ := archetype.Get(result.Primary)
	fmt.Fprintf(&b, "Skin profile: %s\n", primary.Name)
	fmt.Fprintf(&b, "Profile description: %s\n", primary.Summary)
	fmt.Fprintf(&b, "Assessment confidence: %.0f/100 (%s)\n", result.Confidence, result.Tier)

	if len(result.Differential) > 0 {
		b.WriteString("\nAlso considered:\n")
		for _, c := range result.Differential {
			if alt, err := archetype.Get(c.ArchetypeID); err == nil {
				fmt.Fprintf(&b, "- %s (%.0f%% of score)\n", alt.Name, c.Probability*100)
			}
		}
	}

	if !demo.IsZero() {
		b.WriteString("\nAbout the person:\n")
		if demo.Age != "" {
			fmt.Fprintf(&b, "- Age group: %s\n", demo.Age)
		}
		if demo.Sex != "" {
			fmt.Fprintf(&b, "- Sex: %s\n", demo.Sex)
		}
		if demo.Climate != "" {
			fmt.Fprintf(&b, "- Climate: %s\n", demo.Climate)
		}
		if demo.Sun != "" {
			fmt.Fprintf(&b, "- Sun exposure: %s\n", demo.Sun)
		}
	}

	if len(result.Flags) > 0 {
		b.WriteString("\nMedical flags raised during the assessment:\n")
		for _, f := range result.Flags {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	b.WriteString(`
Instructions:
Create skincare guidance for this profile:
1. Write a 2-4 sentence summary of what this skin profile means day to day.
2. Suggest a morning routine of 3-5 ordered steps with product types, not brands.
3. Suggest an evening routine of 3-5 ordered steps with product types, not brands.
4. List 2-4 ingredient cautions: ingredients or habits this profile should be careful with, each with a short reason.
If medical flags are present, the summary must advise seeing a dermatologist about them. Keep every entry concise and plain-spoken.`)

	return b.String()
}
