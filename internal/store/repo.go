package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/dermatype/internal/classify"
	"github.com/abhisek/dermatype/internal/consult"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Consultation is one saved consultation: the answers given, the
// classification they produced, and any generated advice.
type Consultation struct {
	ID           string
	CreatedAt    time.Time
	Answers      consult.History
	Demographics consult.Demographics
	Result       *classify.Result
	Advice       string
}

// ConsultationSummary is the listing view of a saved consultation.
type ConsultationSummary struct {
	ID             string
	CreatedAt      time.Time
	Primary        string
	Tier           string
	Confidence     float64
	QuestionsAsked int
}

// ConsultationRepo manages saved consultations.
type ConsultationRepo interface {
	// Save stores a consultation. The record's ID must be set.
	Save(ctx context.Context, c *Consultation) error

	// Get returns a consultation by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Consultation, error)

	// List returns summaries, newest first, up to limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]ConsultationSummary, error)

	// SetAdvice attaches generated advice to a stored consultation, or
	// returns ErrNotFound.
	SetAdvice(ctx context.Context, id, advice string) error

	// Delete removes one consultation, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every consultation and returns the count.
	DeleteAll(ctx context.Context) (int, error)
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
