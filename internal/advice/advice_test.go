package advice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dermatype/internal/classify"
	"github.com/abhisek/dermatype/internal/confidence"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/llm"
	"github.com/abhisek/dermatype/internal/questionbank"
)

func sampleResult() *classify.Result {
	return &classify.Result{
		Primary:    "oil-slick",
		Tier:       confidence.TierHigh,
		Confidence: 88.2,
		Flags:      []questionbank.MedicalFlag{questionbank.FlagSuspectedRosacea},
		Differential: []classify.Candidate{
			{ArchetypeID: "breakout-battler", Probability: 0.1},
		},
	}
}

const cannedAdvice = `{
	"summary": "Your skin produces excess oil all over. See a dermatologist about the persistent redness.",
	"morning_routine": ["Gel cleanser", "Light moisturizer", "SPF 30+"],
	"evening_routine": ["Gel cleanser", "BHA a few nights a week", "Light moisturizer"],
	"ingredient_cautions": ["Heavy occlusive creams: can worsen congestion"]
}`

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(cannedAdvice)})
	svc := NewService(mock, DefaultConfig())

	a, err := svc.Generate(context.Background(), sampleResult(), consult.Demographics{Climate: "humid"})
	require.NoError(t, err)
	assert.Contains(t, a.Summary, "excess oil")
	assert.Len(t, a.MorningRoutine, 3)
	assert.Len(t, a.EveningRoutine, 3)

	// The prompt must carry the profile and context to the model.
	require.Len(t, mock.Calls, 1)
	sent := mock.Calls[0].Messages[0].Content
	assert.Contains(t, sent, "Oil Slick")
	assert.Contains(t, sent, "Climate: humid")
	assert.Contains(t, sent, "suspected-rosacea")
	assert.Same(t, AdviceSchema, mock.Calls[0].Schema)
}

func TestService_GenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), sampleResult(), consult.Demographics{})
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
}

func TestService_GenerateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"just a string"`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), sampleResult(), consult.Demographics{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse advice response")
}

func TestAdvice_Render(t *testing.T) {
	a := &Advice{
		Summary:            "Oily all over.",
		MorningRoutine:     []string{"Cleanse", "Moisturize"},
		EveningRoutine:     []string{"Cleanse"},
		IngredientCautions: []string{"Heavy oils"},
	}
	out := a.Render()
	for _, want := range []string{"Oily all over.", "1. Cleanse", "Morning routine:", "Approach with care:", "- Heavy oils"} {
		assert.Contains(t, out, want)
	}
}
